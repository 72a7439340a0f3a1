// Package transliterator provides transliteration engines: a remote engine
// reached over HTTP, an identity engine, and a per-language engine pool.
package transliterator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// Default HTTP engine settings.
const (
	DefaultBeamWidth = 10
	DefaultTimeout   = 30 * time.Second
)

// HTTPConfig configures engines that call a remote transliteration service.
type HTTPConfig struct {
	Endpoint  string
	Timeout   time.Duration
	BeamWidth int
}

// Validate checks if the configuration is valid.
func (c HTTPConfig) Validate() error {
	if c.Endpoint == "" {
		return errors.New("transliteration endpoint is required")
	}
	if c.Timeout <= 0 {
		return errors.New("transliteration timeout must be greater than 0")
	}
	if c.BeamWidth <= 0 {
		return errors.New("beam width must be greater than 0")
	}
	return nil
}

type request struct {
	Text      string `json:"text"`
	Lang      string `json:"lang"`
	BeamWidth int    `json:"beam_width"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}

// HTTPFactory builds HTTPEngines sharing one fasthttp client.
type HTTPFactory struct {
	config HTTPConfig
	client *fasthttp.Client
	logger ports.Logger
}

// NewHTTPFactory creates a factory. A nil client selects a default fasthttp.Client.
func NewHTTPFactory(config HTTPConfig, client *fasthttp.Client, logger ports.Logger) (*HTTPFactory, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = &fasthttp.Client{
			Name:                "textnorm",
			MaxConnsPerHost:     16,
			ReadTimeout:         config.Timeout,
			WriteTimeout:        config.Timeout,
			MaxIdleConnDuration: 30 * time.Second,
		}
	}
	return &HTTPFactory{config: config, client: client, logger: ports.OrNop(logger)}, nil
}

// New returns an engine bound to lang.
func (f *HTTPFactory) New(lang string) (ports.Transliterator, error) {
	if lang == "" {
		return nil, errors.New("language code is required")
	}
	f.logger.Debug("Created transliteration engine", "language", lang, "beam_width", f.config.BeamWidth)
	return &HTTPEngine{lang: lang, factory: f}, nil
}

// HTTPEngine transliterates text into one language through the remote service.
type HTTPEngine struct {
	lang    string
	factory *HTTPFactory
}

// Language returns the engine language code.
func (e *HTTPEngine) Language() string {
	return e.lang
}

// Transliterate posts text to the service. The service answers either with a
// string or with an object keyed by language code.
func (e *HTTPEngine) Transliterate(ctx context.Context, text string) (domain.Transliteration, error) {
	cfg := e.factory.config
	body, err := json.Marshal(request{Text: text, Lang: e.lang, BeamWidth: cfg.BeamWidth})
	if err != nil {
		return domain.Transliteration{}, fmt.Errorf("encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(cfg.Endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	timeout := cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := e.factory.client.DoTimeout(req, resp, timeout); err != nil {
		return domain.Transliteration{}, fmt.Errorf("%w: %s: %v", domain.ErrTransliterate, e.lang, err)
	}

	var out response
	decodeErr := json.Unmarshal(resp.Body(), &out)
	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		return domain.Transliteration{}, fmt.Errorf("%w: %s: status %d: %s", domain.ErrTransliterate, e.lang, status, out.Error)
	}
	if decodeErr != nil {
		return domain.Transliteration{}, fmt.Errorf("%w: %s: decode response: %v", domain.ErrTransliterate, e.lang, decodeErr)
	}
	return DecodeResult(out.Result)
}

// DecodeResult turns a raw "result" value into a Transliteration.
func DecodeResult(raw json.RawMessage) (domain.Transliteration, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return domain.Transliteration{}, fmt.Errorf("%w: missing result", domain.ErrUnsupportedShape)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return domain.TextResult(text), nil
	}
	var keyed map[string]string
	if err := json.Unmarshal(raw, &keyed); err == nil && keyed != nil {
		return domain.ByLanguageResult(keyed), nil
	}
	return domain.Transliteration{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedShape, string(raw))
}
