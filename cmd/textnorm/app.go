package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalization/internal/adapters/transliterator"
	"github.com/baditaflorin/go_text_normalization/internal/config"
	"github.com/baditaflorin/go_text_normalization/internal/core/pipeline"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// app carries what every command needs: validated configuration and a logger.
type app struct {
	cfg    *config.Config
	logger ports.Logger
}

// flagOverrides maps command-line flags onto configuration fields.
var flagOverrides = map[string]func(cfg *config.Config, value string){
	"input":    func(cfg *config.Config, v string) { cfg.Run.Input = v },
	"output":   func(cfg *config.Config, v string) { cfg.Run.Output = v },
	"lang":     func(cfg *config.Config, v string) { cfg.Run.DefaultLanguage = v },
	"mode":     func(cfg *config.Config, v string) { cfg.Transliteration.Mode = v },
	"endpoint": func(cfg *config.Config, v string) { cfg.Transliteration.Endpoint = v },
}

func loadApp(cmd *cobra.Command) (*app, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	overridden := false
	for name, apply := range flagOverrides {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		apply(cfg, flag.Value.String())
		overridden = true
	}
	if overridden {
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid flags: %w", err)
		}
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: log}, nil
}

// newLogger builds the logger described by cfg. An empty file logs to stderr.
func newLogger(cfg config.LogConfig) (ports.Logger, error) {
	level, err := logger.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stderr
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	log, err := logger.NewFromOptions(logger.Options{Output: output, JSON: cfg.JSON, Level: level})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func (a *app) pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	opts = append([]pipeline.Option{
		pipeline.WithLogger(a.logger),
		pipeline.WithCanonicalization(a.cfg.Normalization.UnicodeNFC),
	}, opts...)
	return pipeline.New(opts...)
}

// engines returns the configured engine factory behind a per-language pool.
func (a *app) engines() (*transliterator.Pool, error) {
	tc := a.cfg.Transliteration

	var factory ports.TransliteratorFactory
	switch tc.Mode {
	case "http":
		client := &fasthttp.Client{
			Name:         "textnorm",
			ReadTimeout:  tc.Timeout,
			WriteTimeout: tc.Timeout,
		}
		f, err := transliterator.NewHTTPFactory(transliterator.HTTPConfig{
			Endpoint:  tc.Endpoint,
			Timeout:   tc.Timeout,
			BeamWidth: tc.BeamWidth,
		}, client, a.logger)
		if err != nil {
			return nil, err
		}
		factory = f
	default:
		factory = transliterator.IdentityFactory{}
	}

	return transliterator.NewPool(factory, tc.CacheSize, a.logger)
}
