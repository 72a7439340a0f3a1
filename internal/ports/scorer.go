package ports

import "github.com/baditaflorin/go_text_normalization/internal/core/domain"

// Scorer accumulates prediction/reference pairs and computes an aggregate score.
type Scorer interface {
	Name() string
	Add(prediction, reference string)
	Compute() domain.Score
}
