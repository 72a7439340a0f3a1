// Package scoring provides corpus-level accumulators comparing generated text
// with reference text: word error rate, character n-gram F-score and word
// length similarity.
package scoring

import (
	"github.com/baditaflorin/go_text_normalization/internal/ports"
)

// DefaultScorers returns the WER and chrF accumulators followed by the length
// similarity accumulator.
func DefaultScorers(logger ports.Logger) ([]ports.Scorer, error) {
	chrf, err := NewCHRF()
	if err != nil {
		return nil, err
	}
	length, err := NewLengthSimilarity(DefaultLengthConfig(), logger)
	if err != nil {
		return nil, err
	}
	return []ports.Scorer{NewWER(), chrf, length}, nil
}
