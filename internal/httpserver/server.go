// Package httpserver exposes normalization and evaluation over a JSON HTTP API.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/orchestrator"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultRunTimeout     = 60 * time.Second
)

// Config holds server settings.
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRequestSize  int
	RunTimeout      time.Duration
	DefaultLanguage string
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Port:            DefaultPort,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		MaxRequestSize:  DefaultMaxRequestSize,
		RunTimeout:      DefaultRunTimeout,
		DefaultLanguage: domain.DefaultLanguage,
	}
}

// ScorerSet builds a fresh set of scorers. Scorers accumulate state, so
// every evaluation request gets its own.
type ScorerSet func() ([]ports.Scorer, error)

// NormalizeRequest is the body of POST /normalize.
type NormalizeRequest struct {
	Text string `json:"text"`
}

// NormalizeResponse is the reply of POST /normalize.
type NormalizeResponse struct {
	Normalized string `json:"normalized"`
}

// EvaluateResponse is the reply of POST /evaluate.
type EvaluateResponse struct {
	Results []domain.Result `json:"results"`
	Report  domain.Report   `json:"report"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Stage     string `json:"stage,omitempty"`
	Start     *int   `json:"start,omitempty"`
	End       *int   `json:"end,omitempty"`
}

// Server serves the normalization API.
type Server struct {
	config     Config
	normalizer ports.Normalizer
	factory    ports.TransliteratorFactory
	scorers    ScorerSet
	logger     ports.Logger
	server     *fasthttp.Server
}

// New creates a Server.
func New(config Config, normalizer ports.Normalizer, factory ports.TransliteratorFactory, scorers ScorerSet, logger ports.Logger) (*Server, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if factory == nil {
		return nil, errors.New("transliterator factory is required")
	}
	if scorers == nil {
		return nil, errors.New("scorer set is required")
	}
	if config.RunTimeout <= 0 {
		config.RunTimeout = DefaultRunTimeout
	}
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = domain.DefaultLanguage
	}

	s := &Server{
		config:     config,
		normalizer: normalizer,
		factory:    factory,
		scorers:    scorers,
		logger:     ports.OrNop(logger),
	}
	s.server = &fasthttp.Server{
		Handler:               s.Handler,
		ReadTimeout:           config.ReadTimeout,
		WriteTimeout:          config.WriteTimeout,
		MaxRequestBodySize:    config.MaxRequestSize,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
	return s, nil
}

// ListenAndServe serves on the configured port until Shutdown is called.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("Server listening", "address", addr)
	return s.server.ListenAndServe(addr)
}

// Serve serves on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

// Handler is the main fasthttp request handler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()
	requestID := uuid.NewString()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("X-Request-Id", requestID)

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealth(ctx)
	case "/normalize":
		s.handleNormalize(ctx, requestID)
	case "/evaluate":
		s.handleEvaluate(ctx, requestID)
	default:
		writeJSONError(ctx, fasthttp.StatusNotFound, ErrorResponse{Error: "Not found", RequestID: requestID})
	}

	s.logger.Info("Request processed",
		"request_id", requestID,
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(startTime),
	)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSONResponse(ctx, fasthttp.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleNormalize(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsPost() {
		writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed", RequestID: requestID})
		return
	}

	var req NormalizeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeJSONError(ctx, fasthttp.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error(), RequestID: requestID})
		return
	}

	normalized, err := s.normalizer.Normalize(req.Text)
	if err != nil {
		s.writeProcessingError(ctx, requestID, err)
		return
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, NormalizeResponse{Normalized: normalized})
}

func (s *Server) handleEvaluate(ctx *fasthttp.RequestCtx, requestID string) {
	if !ctx.IsPost() {
		writeJSONError(ctx, fasthttp.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed", RequestID: requestID})
		return
	}

	var records []domain.Record
	if err := json.Unmarshal(ctx.PostBody(), &records); err != nil {
		writeJSONError(ctx, fasthttp.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error(), RequestID: requestID})
		return
	}

	scorers, err := s.scorers()
	if err != nil {
		writeJSONError(ctx, fasthttp.StatusInternalServerError, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}
	runner, err := orchestrator.New(s.normalizer, s.factory, scorers,
		orchestrator.WithDefaultLanguage(s.config.DefaultLanguage),
		orchestrator.WithLogger(s.logger),
	)
	if err != nil {
		writeJSONError(ctx, fasthttp.StatusInternalServerError, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	c, cancel := context.WithTimeout(context.Background(), s.config.RunTimeout)
	defer cancel()

	report, results, err := runner.Run(c, records)
	if err != nil {
		s.writeProcessingError(ctx, requestID, err)
		return
	}
	writeJSONResponse(ctx, fasthttp.StatusOK, EvaluateResponse{Results: results, Report: report})
}

// writeProcessingError maps a normalization failure to 422 with its span and
// any other failure to 502, since it comes from a collaborator.
func (s *Server) writeProcessingError(ctx *fasthttp.RequestCtx, requestID string, err error) {
	var nerr *domain.NormalizationError
	if errors.As(err, &nerr) {
		start, end := nerr.Span.Start, nerr.Span.End
		writeJSONError(ctx, fasthttp.StatusUnprocessableEntity, ErrorResponse{
			Error:     err.Error(),
			RequestID: requestID,
			Stage:     nerr.Stage,
			Start:     &start,
			End:       &end,
		})
		return
	}
	s.logger.Error("Request failed", "request_id", requestID, "error", err)
	writeJSONError(ctx, fasthttp.StatusBadGateway, ErrorResponse{Error: err.Error(), RequestID: requestID})
}

// writeJSONResponse writes a JSON response
func writeJSONResponse(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"failed to encode response"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// writeJSONError writes a JSON error response
func writeJSONError(ctx *fasthttp.RequestCtx, status int, resp ErrorResponse) {
	writeJSONResponse(ctx, status, resp)
}
