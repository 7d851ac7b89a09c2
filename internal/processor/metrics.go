package processor

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/quality"
)

// Metrics exposes the pipeline's soft-failure categories as prometheus
// counters, labeled by content type.
type Metrics struct {
	extracted  *prometheus.CounterVec
	duplicates *prometheus.CounterVec
	lowQuality *prometheus.CounterVec
	invalid    *prometheus.CounterVec
	output     *prometheus.CounterVec
}

// NewMetrics creates and registers the processor counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		extracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extractor_records_extracted_total",
			Help: "Candidate records produced by pattern extraction.",
		}, []string{"content_type"}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extractor_duplicates_removed_total",
			Help: "Records dropped by content-hash deduplication.",
		}, []string{"content_type"}),
		lowQuality: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extractor_low_quality_filtered_total",
			Help: "Records below the quality threshold.",
		}, []string{"content_type"}),
		invalid: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extractor_invalid_dropped_total",
			Help: "Records dropped by final validation.",
		}, []string{"content_type"}),
		output: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "extractor_records_output_total",
			Help: "Validated records emitted to collaborators.",
		}, []string{"content_type"}),
	}
	reg.MustRegister(m.extracted, m.duplicates, m.lowQuality, m.invalid, m.output)
	return m
}

// RecordsExtracted counts candidate records for a content type.
func (m *Metrics) RecordsExtracted(contentType domain.ContentType, n int) {
	m.extracted.WithLabelValues(string(contentType)).Add(float64(n))
}

// PipelineStats records one pipeline run's counts.
func (m *Metrics) PipelineStats(contentType domain.ContentType, stats quality.Stats) {
	label := string(contentType)
	m.duplicates.WithLabelValues(label).Add(float64(stats.Duplicates))
	m.lowQuality.WithLabelValues(label).Add(float64(stats.LowQuality))
	m.invalid.WithLabelValues(label).Add(float64(stats.Invalid))
	m.output.WithLabelValues(label).Add(float64(stats.Output))
}
