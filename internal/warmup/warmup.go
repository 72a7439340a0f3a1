// Package warmup prepares a run before the first record: it builds the
// transliteration engines of the expected languages and exercises the
// normalizers once on representative text.
package warmup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Languages whose engines are built ahead of the run
	Languages []string
	// Number of normalization passes over the sample text
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Iterations:     10,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	factory     ports.TransliteratorFactory
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: ports.OrNop(logger),
		config: config,
	}
}

// RegisterFactory sets the factory whose engines are built during warmup.
// Only a caching factory keeps the built engines for the run.
func (wm *Manager) RegisterFactory(factory ports.TransliteratorFactory) {
	wm.factory = factory
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp builds the engines of every configured language, then runs the
// normalizers. An engine that cannot be built fails the warmup; normalizer
// passes stop quietly when the time budget runs out.
func (wm *Manager) WarmUp(ctx context.Context) error {
	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"languages", len(wm.config.Languages),
		"normalizers", len(wm.normalizers),
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	if err := wm.warmUpEngines(ctx); err != nil {
		return err
	}
	wm.warmUpNormalizers(ctx)

	wm.logger.Info("Warmup completed", "duration", time.Since(startTime))
	return nil
}

func (wm *Manager) warmUpEngines(ctx context.Context) error {
	if wm.factory == nil || len(wm.config.Languages) == 0 {
		return nil
	}
	for _, lang := range wm.config.Languages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("warmup interrupted: %w", err)
		}
		if _, err := wm.factory.New(lang); err != nil {
			return fmt.Errorf("warm up engine %q: %w", lang, err)
		}
		wm.logger.Debug("Engine warmed up", "language", lang)
	}
	return nil
}

func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	sampleText := GenerateSampleText(wm.config.SampleTextSize)
	for j := 0; j < wm.config.Iterations; j++ {
		select {
		case <-ctx.Done():
			wm.logger.Debug("Normalizer warmup stopped", "iterations", j)
			return
		default:
		}
		for _, normalizer := range wm.normalizers {
			if _, err := normalizer.Normalize(sampleText); err != nil {
				wm.logger.Warn("Normalizer failed on warmup text", "error", err)
				return
			}
		}
	}
}

// GenerateSampleText creates text of at most size bytes that exercises every
// normalization stage.
func GenerateSampleText(size int) string {
	fragments := []string{
		"the meeting on 25/12/2023", "moved from 2024-01-15", "to 16-01-2024",
		"or March 3, 2025", "costs $100", "or ₹2500", "and 5000 ₩",
		"for 5kg", "of 250mg", "at 25°C", "over 42km", "plain words follow",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fragments[i%len(fragments)])
	}

	result := sb.String()
	if len(result) <= size {
		return result
	}
	// cut on a space so no pattern is split in half
	if cut := strings.LastIndexByte(result[:size], ' '); cut > 0 {
		return result[:cut]
	}
	return ""
}
