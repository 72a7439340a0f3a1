// Package pipeline composes normalization stages into a single text transformer.
//
// The default composition is unit(currency(date(text))). The order is part of
// the contract: later stages see text already rewritten by earlier ones.
package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_text_normalization/internal/core/currency"
	"github.com/baditaflorin/go_text_normalization/internal/core/date"
	"github.com/baditaflorin/go_text_normalization/internal/core/unit"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// StageObserver is notified after each stage that changed the text.
type StageObserver func(stage string)

// Config holds pipeline options.
type Config struct {
	Stages       []ports.Stage
	Canonicalize bool
	Logger       ports.Logger
	Observer     StageObserver
}

// Option configures a Pipeline.
type Option func(*Config)

// WithStages replaces the default stages. Stages run in the given order.
func WithStages(stages ...ports.Stage) Option {
	return func(cfg *Config) {
		cfg.Stages = append([]ports.Stage{}, stages...)
	}
}

// WithCanonicalization toggles NFC canonicalization of the input before the
// first stage. It is off by default: NFC decomposes composition exclusions
// such as U+0958, so enabling it changes text no stage matched.
func WithCanonicalization(enable bool) Option {
	return func(cfg *Config) {
		cfg.Canonicalize = enable
	}
}

// WithLogger sets the logger used by the pipeline and its default stages.
func WithLogger(logger ports.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithObserver registers a callback for stages that rewrote the text.
func WithObserver(fn StageObserver) Option {
	return func(cfg *Config) {
		cfg.Observer = fn
	}
}

// Pipeline threads a text value through an ordered list of stages.
type Pipeline struct {
	stages       []ports.Stage
	canonicalize bool
	logger       ports.Logger
	observer     StageObserver
}

// DefaultStages returns the date, currency and unit stages, in that order.
func DefaultStages(logger ports.Logger) ([]ports.Stage, error) {
	cur, err := currency.NewNormalizer(logger, nil)
	if err != nil {
		return nil, fmt.Errorf("currency stage: %w", err)
	}
	un, err := unit.NewNormalizer(logger, nil)
	if err != nil {
		return nil, fmt.Errorf("unit stage: %w", err)
	}
	return []ports.Stage{date.NewNormalizer(logger), cur, un}, nil
}

// New creates a Pipeline. Without WithStages it uses DefaultStages.
func New(opts ...Option) (*Pipeline, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Logger = ports.OrNop(cfg.Logger)

	if cfg.Stages == nil {
		stages, err := DefaultStages(cfg.Logger)
		if err != nil {
			return nil, err
		}
		cfg.Stages = append([]ports.Stage{}, stages...)
	}
	if len(cfg.Stages) == 0 {
		return nil, errors.New("pipeline needs at least one stage")
	}
	for i, s := range cfg.Stages {
		if s == nil {
			return nil, fmt.Errorf("pipeline stage %d is nil", i)
		}
	}

	return &Pipeline{
		stages:       cfg.Stages,
		canonicalize: cfg.Canonicalize,
		logger:       cfg.Logger,
		observer:     cfg.Observer,
	}, nil
}

// StageNames returns the stage names in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Normalize runs every stage over text and returns the final value.
// The first stage error aborts the run; it is returned unchanged.
func (p *Pipeline) Normalize(text string) (string, error) {
	if p.canonicalize {
		text = norm.NFC.String(text)
	}

	for _, s := range p.stages {
		out, err := s.Normalize(text)
		if err != nil {
			return "", err
		}
		if out != text && p.observer != nil {
			p.observer(s.Name())
		}
		text = out
	}

	p.logger.Debug("Normalized text", "normalized", text)
	return text, nil
}
