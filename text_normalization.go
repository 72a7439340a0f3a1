// Package textnormalization rewrites dates, currency amounts and measurement
// units written in shorthand into spelled-out English words, so that the text
// can be handed to a transliteration model.
//
// The rewriting runs as a fixed sequence of stages: dates first, then
// currency, then units. Each stage only sees the output of the previous one.
//
//	tn, err := textnormalization.New()
//	if err != nil {
//		return err
//	}
//	out, err := tn.Normalize("$100 for 5kg on 25/12/2023")
//	// out == "one hundred dollars for five kilograms on twenty-five December twenty twenty-three"
package textnormalization

import (
	"sync"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_text_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/core/pipeline"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// Stage is one text-in, text-out rewriting step.
type Stage = ports.Stage

// NormalizationError reports the stage and byte span of a match that could
// not be rewritten, such as month 13 in a date.
type NormalizationError = domain.NormalizationError

// Config holds configuration options for a TextNormalizer.
type Config struct {
	// Stages replaces the default date, currency, unit sequence when set.
	Stages []Stage
	// Canonicalize applies Unicode NFC before the first stage. Off by default.
	Canonicalize bool
	// Logger for tracing normalization steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the normalizer.
type Option func(*Config)

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithUnicodeCanonicalization enables or disables the NFC pre-pass.
func WithUnicodeCanonicalization(enable bool) Option {
	return func(cfg *Config) {
		cfg.Canonicalize = enable
	}
}

// WithStages replaces the default stages. Stages run in the given order.
func WithStages(stages ...Stage) Option {
	return func(cfg *Config) {
		cfg.Stages = append([]Stage{}, stages...)
	}
}

// TextNormalizer is safe for concurrent use.
type TextNormalizer struct {
	pipeline  *pipeline.Pipeline
	logger    ports.Logger
	ownLogger bool
}

// New creates a TextNormalizer with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*TextNormalizer, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	var log ports.Logger
	if cfg.Logger != nil {
		log = logger.FromExisting(cfg.Logger)
	} else {
		var err error
		log, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
	}

	pipelineOpts := []pipeline.Option{
		pipeline.WithLogger(log),
		pipeline.WithCanonicalization(cfg.Canonicalize),
	}
	if cfg.Stages != nil {
		pipelineOpts = append(pipelineOpts, pipeline.WithStages(cfg.Stages...))
	}

	p, err := pipeline.New(pipelineOpts...)
	if err != nil {
		return nil, err
	}
	return &TextNormalizer{pipeline: p, logger: log, ownLogger: cfg.Logger == nil}, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *TextNormalizer {
	tn, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return tn
}

// Normalize rewrites every recognized date, currency amount and unit in text.
// Text without recognized shorthand is returned unchanged.
func (tn *TextNormalizer) Normalize(text string) (string, error) {
	return tn.pipeline.Normalize(text)
}

// MustNormalize is like Normalize but panics on error.
func (tn *TextNormalizer) MustNormalize(text string) string {
	out, err := tn.Normalize(text)
	if err != nil {
		panic(err)
	}
	return out
}

// Stages returns the stage names in application order.
func (tn *TextNormalizer) Stages() []string {
	return tn.pipeline.StageNames()
}

// Close releases the default logger. A logger passed with WithLogger stays open.
func (tn *TextNormalizer) Close() error {
	if !tn.ownLogger {
		return nil
	}
	return tn.logger.Close()
}

var defaultNormalizer = sync.OnceValue(func() *TextNormalizer {
	return MustNew()
})

// NormalizeDefault normalizes text with a shared default TextNormalizer.
func NormalizeDefault(text string) (string, error) {
	return defaultNormalizer().Normalize(text)
}
