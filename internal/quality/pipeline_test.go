package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

func newTestPipeline(minScore float64) *Pipeline {
	logger := logging.NewNop()
	validator := NewValidator()
	return NewPipeline(
		NewDeduplicator(logger),
		NewScorer(validator, logger),
		validator,
		minScore,
		logger,
	)
}

func goodSchemeRecord() domain.Record {
	return domain.Record{
		domain.FieldSchemeName:    "Pradhan Mantri Krishi Sinchayee Yojana",
		domain.FieldContent:       "Rainwater harvesting and irrigation subsidy for watershed conservation",
		domain.FieldEligibility:   "All farmers with land records",
		domain.FieldSubsidyInfo:   "Rs. 50,000",
		domain.FieldDeadline:      "31/03/2024",
		domain.FieldContact:       "1800-180-1551",
		domain.FieldExtractedDate: domain.Now(),
	}
}

func TestPipelineProcess(t *testing.T) {
	p := newTestPipeline(0)

	records := []domain.Record{
		goodSchemeRecord(),
		goodSchemeRecord(), // duplicate
		{
			// fails validation: required content missing
			domain.FieldSchemeName:    "Jal Shakti Abhiyan",
			domain.FieldSubsidyInfo:   "Rs. 25,000",
			domain.FieldExtractedDate: domain.Now(),
		},
	}

	processed, stats := p.Process(records, domain.TypeGovernmentScheme)

	require.Len(t, processed, 1)
	assert.Equal(t, 3, stats.Input)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 0, stats.LowQuality)
	assert.Equal(t, 1, stats.Invalid)
	assert.Equal(t, 1, stats.Output)

	score, ok := processed[0].GetFloat(domain.FieldQualityScore)
	require.True(t, ok)
	assert.GreaterOrEqual(t, score, DefaultMinQuality)
}

func TestPipelineQualityThreshold(t *testing.T) {
	p := newTestPipeline(0.99)

	_, stats := p.Process([]domain.Record{goodSchemeRecord()}, domain.TypeGovernmentScheme)
	assert.Equal(t, 1, stats.LowQuality)
	assert.Equal(t, 0, stats.Output)
}

func TestPipelineDefaultThreshold(t *testing.T) {
	assert.InDelta(t, DefaultMinQuality, newTestPipeline(0).MinScore(), 1e-9)
	assert.InDelta(t, 0.8, newTestPipeline(0.8).MinScore(), 1e-9)
}

func TestPipelineEmptyInput(t *testing.T) {
	p := newTestPipeline(0)

	processed, stats := p.Process(nil, domain.TypeWeatherData)
	assert.Empty(t, processed)
	assert.Equal(t, Stats{}, stats)
}
