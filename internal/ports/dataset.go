package ports

import (
	"context"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

// RecordSource loads the records of an evaluation run.
type RecordSource interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// ResultSink persists the results of a completed run.
type ResultSink interface {
	Write(ctx context.Context, results []domain.Result) error
}

// Recorder receives run events for monitoring.
type Recorder interface {
	RecordProcessed(lang string)
	RecordFailed(lang string)
	StageRewrote(stage string)
	ScoreComputed(score domain.Score)
}
