package scoring

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// LengthName is the score name reported by LengthSimilarity.
const LengthName = "length_similarity"

// LengthConfig holds configuration for the word-length similarity scorer.
type LengthConfig struct {
	Threshold    float64
	MaxDiffRatio float64
}

// DefaultLengthConfig returns a default configuration.
func DefaultLengthConfig() LengthConfig {
	return LengthConfig{
		Threshold:    0.7,
		MaxDiffRatio: 0.3,
	}
}

// Validate checks if the configuration is valid.
func (c LengthConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.MaxDiffRatio <= 0 {
		return errors.New("maxDiffRatio must be greater than 0")
	}
	return nil
}

// LengthSimilarity compares the word counts of each prediction against its
// reference:
//
//	score = 1.0 - min(1.0, abs(refLen - predLen) / (refLen * maxDiffRatio))
//
// The aggregate is the mean score; a pair passes when its score reaches the threshold.
type LengthSimilarity struct {
	config  LengthConfig
	logger  ports.Logger
	sum     float64
	passed  int
	samples int
}

// NewLengthSimilarity creates a word-length similarity accumulator.
func NewLengthSimilarity(config LengthConfig, logger ports.Logger) (*LengthSimilarity, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &LengthSimilarity{config: config, logger: ports.OrNop(logger)}, nil
}

// Name returns the score name.
func (ls *LengthSimilarity) Name() string {
	return LengthName
}

// Add records one prediction/reference pair. A reference with zero words scores 0.
func (ls *LengthSimilarity) Add(prediction, reference string) {
	score := ls.pairScore(prediction, reference)
	ls.sum += score
	if score >= ls.config.Threshold {
		ls.passed++
	}
	ls.samples++
}

func (ls *LengthSimilarity) pairScore(prediction, reference string) float64 {
	refLen := len(strings.Fields(fold(reference)))
	predLen := len(strings.Fields(fold(prediction)))

	if refLen == 0 {
		ls.logger.Debug("Reference text has zero words", "reference", reference)
		return 0
	}

	diff := math.Abs(float64(refLen - predLen))
	diffRatio := diff / (float64(refLen) * ls.config.MaxDiffRatio)
	if diffRatio > 1.0 {
		diffRatio = 1.0
	}

	score := 1.0 - diffRatio
	ls.logger.Debug("Computed length similarity",
		"reference_length", refLen,
		"predicted_length", predLen,
		"score", score,
	)
	return score
}

// Compute returns the mean pair score.
func (ls *LengthSimilarity) Compute() domain.Score {
	var mean, passRate float64
	if ls.samples > 0 {
		mean = ls.sum / float64(ls.samples)
		passRate = float64(ls.passed) / float64(ls.samples)
	}
	return domain.Score{
		Name:    LengthName,
		Value:   mean,
		Samples: ls.samples,
		Details: map[string]interface{}{
			"threshold": ls.config.Threshold,
			"passed":    ls.passed,
			"pass_rate": passRate,
		},
	}
}

// fold lower-cases text and replaces punctuation with spaces so that
// punctuation does not affect word splitting.
func fold(text string) string {
	text = strings.ToLower(text)
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsPunct(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
