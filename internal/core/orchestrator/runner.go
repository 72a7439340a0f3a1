// Package orchestrator drives records through normalization, transliteration
// and scoring, strictly in input order.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// Config holds runner options.
type Config struct {
	DefaultLanguage string
	Logger          ports.Logger
	Recorder        ports.Recorder
}

// Option configures a Runner.
type Option func(*Config)

// WithDefaultLanguage sets the language used for records without one.
func WithDefaultLanguage(lang string) Option {
	return func(cfg *Config) {
		cfg.DefaultLanguage = lang
	}
}

// WithLogger sets the runner logger.
func WithLogger(logger ports.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithRecorder sets a monitoring recorder.
func WithRecorder(rec ports.Recorder) Option {
	return func(cfg *Config) {
		cfg.Recorder = rec
	}
}

// Runner processes evaluation records sequentially. Scorers accumulate state
// across records, so a Runner must not be shared between concurrent runs.
type Runner struct {
	normalizer  ports.Normalizer
	factory     ports.TransliteratorFactory
	scorers     []ports.Scorer
	defaultLang string
	logger      ports.Logger
	recorder    ports.Recorder
}

// New creates a Runner.
func New(normalizer ports.Normalizer, factory ports.TransliteratorFactory, scorers []ports.Scorer, opts ...Option) (*Runner, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if factory == nil {
		return nil, errors.New("transliterator factory is required")
	}

	cfg := Config{DefaultLanguage: domain.DefaultLanguage}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DefaultLanguage == "" {
		return nil, errors.New("default language must not be empty")
	}

	return &Runner{
		normalizer:  normalizer,
		factory:     factory,
		scorers:     scorers,
		defaultLang: cfg.DefaultLanguage,
		logger:      ports.OrNop(cfg.Logger),
		recorder:    cfg.Recorder,
	}, nil
}

// Run processes records in order. Each record is normalized, transliterated
// with the engine for its language, appended to the results and forwarded to
// every scorer before the next record starts. Any failure aborts the run and
// no results are returned.
func (r *Runner) Run(ctx context.Context, records []domain.Record) (domain.Report, []domain.Result, error) {
	start := time.Now()
	report := domain.Report{RunID: uuid.NewString()}

	r.logger.Info("Starting evaluation run",
		"run_id", report.RunID,
		"records", len(records),
		"default_language", r.defaultLang,
	)

	engines := make(map[string]ports.Transliterator)
	results := make([]domain.Result, 0, len(records))

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			r.logger.Error("Run cancelled", "run_id", report.RunID, "record", i, "error", err)
			return domain.Report{}, nil, err
		}

		lang := rec.LanguageOr(r.defaultLang)
		generated, err := r.process(ctx, engines, rec.Input, lang)
		if err != nil {
			if r.recorder != nil {
				r.recorder.RecordFailed(lang)
			}
			r.logger.Error("Record failed", "run_id", report.RunID, "record", i, "language", lang, "error", err)
			return domain.Report{}, nil, fmt.Errorf("record %d: %w", i, err)
		}

		results = append(results, domain.Result{
			Input:           rec.Input,
			GeneratedOutput: generated,
			ExpectedOutput:  rec.ExpectedOutput,
		})
		for _, s := range r.scorers {
			s.Add(generated, rec.ExpectedOutput)
		}
		if r.recorder != nil {
			r.recorder.RecordProcessed(lang)
		}

		r.logger.Debug("Processed record",
			"record", i,
			"language", lang,
			"generated", generated,
		)
	}

	report.Records = len(results)
	for _, s := range r.scorers {
		score := s.Compute()
		report.Scores = append(report.Scores, score)
		if r.recorder != nil {
			r.recorder.ScoreComputed(score)
		}
	}
	report.Duration = time.Since(start)

	r.logger.Info("Finished evaluation run",
		"run_id", report.RunID,
		"records", report.Records,
		"duration", report.Duration,
	)
	return report, results, nil
}

func (r *Runner) process(ctx context.Context, engines map[string]ports.Transliterator, input, lang string) (string, error) {
	normalized, err := r.normalizer.Normalize(input)
	if err != nil {
		return "", err
	}

	engine, ok := engines[lang]
	if !ok {
		engine, err = r.factory.New(lang)
		if err != nil {
			return "", fmt.Errorf("create transliterator for %q: %w", lang, err)
		}
		engines[lang] = engine
	}

	out, err := engine.Transliterate(ctx, normalized)
	if err != nil {
		return "", err
	}
	return out.Resolve(lang), nil
}
