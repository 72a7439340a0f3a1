// Package metrics exposes run events as Prometheus metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

const namespace = "textnorm"

// Recorder implements ports.Recorder on a dedicated Prometheus registry.
type Recorder struct {
	registry  *prometheus.Registry
	processed *prometheus.CounterVec
	failed    *prometheus.CounterVec
	rewrites  *prometheus.CounterVec
	scores    *prometheus.GaugeVec
}

// NewRecorder registers the run metrics on a new registry.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_processed_total",
			Help:      "Records normalized, transliterated and scored.",
		}, []string{"language"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_failed_total",
			Help:      "Records that aborted a run.",
		}, []string{"language"}),
		rewrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_rewrites_total",
			Help:      "Texts changed by a normalization stage.",
		}, []string{"stage"}),
		scores: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Aggregate score of the last completed run.",
		}, []string{"name"}),
	}

	for _, c := range []prometheus.Collector{r.processed, r.failed, r.rewrites, r.scores} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return r, nil
}

// Registry returns the registry holding the run metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordProcessed counts a completed record.
func (r *Recorder) RecordProcessed(lang string) {
	r.processed.WithLabelValues(lang).Inc()
}

// RecordFailed counts a failed record.
func (r *Recorder) RecordFailed(lang string) {
	r.failed.WithLabelValues(lang).Inc()
}

// StageRewrote counts a text changed by stage.
func (r *Recorder) StageRewrote(stage string) {
	r.rewrites.WithLabelValues(stage).Inc()
}

// ScoreComputed stores an aggregate score.
func (r *Recorder) ScoreComputed(score domain.Score) {
	r.scores.WithLabelValues(score.Name).Set(score.Value)
}

// WriteTextfile writes the metrics in the text exposition format, for
// collection by the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
