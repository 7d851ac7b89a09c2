package quality

import (
	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

// DefaultMinQuality is the quality threshold applied when none is
// configured.
const DefaultMinQuality = 0.5

// Stats counts the soft-failure categories of one pipeline run. They are
// reported as counts, never per-record detail.
type Stats struct {
	Input      int `json:"input"`
	Duplicates int `json:"duplicates"`
	LowQuality int `json:"low_quality"`
	Invalid    int `json:"invalid"`
	Output     int `json:"output"`
}

// Pipeline composes deduplication, quality filtering, and final
// validation over one in-memory batch of records.
type Pipeline struct {
	dedup     *Deduplicator
	scorer    *Scorer
	validator *Validator
	minScore  float64
	logger    logging.Logger
}

// NewPipeline wires the pipeline. minScore <= 0 selects the default
// threshold.
func NewPipeline(dedup *Deduplicator, scorer *Scorer, validator *Validator, minScore float64, logger logging.Logger) *Pipeline {
	if minScore <= 0 {
		minScore = DefaultMinQuality
	}
	return &Pipeline{
		dedup:     dedup,
		scorer:    scorer,
		validator: validator,
		minScore:  minScore,
		logger:    logger,
	}
}

// Process runs dedupe, then quality filtering (attaching quality_score),
// then final validation dropping invalid records. A malformed record
// never aborts the batch; the unit of failure isolation is the record.
func (p *Pipeline) Process(records []domain.Record, contentType domain.ContentType) ([]domain.Record, Stats) {
	stats := Stats{Input: len(records)}

	deduped := p.dedup.Dedupe(records)
	stats.Duplicates = len(records) - len(deduped)

	scored := p.filterByQuality(deduped, contentType)
	stats.LowQuality = len(deduped) - len(scored)

	valid := make([]domain.Record, 0, len(scored))
	for _, record := range scored {
		ok, errs := p.validator.Validate(record, contentType)
		if !ok {
			p.logger.Warn("invalid record filtered out", "errors", errs)
			continue
		}
		valid = append(valid, record)
	}
	stats.Invalid = len(scored) - len(valid)
	stats.Output = len(valid)

	p.logger.Info("batch processed",
		"content_type", string(contentType),
		"input", stats.Input,
		"duplicates", stats.Duplicates,
		"low_quality", stats.LowQuality,
		"invalid", stats.Invalid,
		"output", stats.Output,
	)
	return valid, stats
}

// filterByQuality scores each record, stores the score on the record,
// and keeps only those at or above the threshold.
func (p *Pipeline) filterByQuality(records []domain.Record, contentType domain.ContentType) []domain.Record {
	kept := make([]domain.Record, 0, len(records))
	for _, record := range records {
		score := p.scorer.Score(record, contentType)
		record[domain.FieldQualityScore] = score
		if score >= p.minScore {
			kept = append(kept, record)
		} else {
			p.logger.Debug("filtered out low quality record", "quality_score", score)
		}
	}
	return kept
}

// MinScore returns the configured quality threshold.
func (p *Pipeline) MinScore() float64 {
	return p.minScore
}
