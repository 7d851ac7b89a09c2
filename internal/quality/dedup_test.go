package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	d := NewDeduplicator(logging.NewNop())

	records := []domain.Record{
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "irrigation subsidy", "marker": "first"},
		{domain.FieldSchemeName: "Jal Shakti", domain.FieldContent: "conservation drive"},
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "irrigation subsidy", "marker": "second"},
	}

	unique := d.Dedupe(records)
	require.Len(t, unique, 2)
	assert.Equal(t, "first", unique[0].GetString("marker"))
	assert.Equal(t, "Jal Shakti", unique[1].GetString(domain.FieldSchemeName))
}

func TestDedupeCanonicalizesKeyFields(t *testing.T) {
	d := NewDeduplicator(logging.NewNop())

	records := []domain.Record{
		{domain.FieldSchemeName: "  PMKSY  ", domain.FieldContent: "Irrigation Subsidy"},
		{domain.FieldSchemeName: "pmksy", domain.FieldContent: "irrigation subsidy"},
	}

	assert.Len(t, d.Dedupe(records), 1)
}

func TestDedupeNonKeyFieldsIgnored(t *testing.T) {
	d := NewDeduplicator(logging.NewNop())

	records := []domain.Record{
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "text", domain.FieldExtractedDate: "2024-01-01"},
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "text", domain.FieldExtractedDate: "2024-06-01"},
	}

	assert.Len(t, d.Dedupe(records), 1)
}

func TestDedupeKeylessRecordsAlwaysKept(t *testing.T) {
	d := NewDeduplicator(logging.NewNop())

	records := []domain.Record{
		{domain.FieldRainfallMM: 10.0, domain.FieldExtractedDate: "2024-01-01"},
		{domain.FieldRainfallMM: 10.0, domain.FieldExtractedDate: "2024-01-01"},
	}

	assert.Len(t, d.Dedupe(records), 2)
}

func TestDedupeIdempotent(t *testing.T) {
	d := NewDeduplicator(logging.NewNop())

	records := []domain.Record{
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "a"},
		{domain.FieldSchemeName: "PMKSY", domain.FieldContent: "a"},
		{domain.FieldSchemeName: "Other", domain.FieldContent: "b"},
	}

	once := d.Dedupe(records)
	twice := d.Dedupe(once)
	assert.Equal(t, once, twice)
}

func TestContentHash(t *testing.T) {
	a, ok := ContentHash(domain.Record{domain.FieldSchemeName: "PMKSY"})
	require.True(t, ok)
	b, ok := ContentHash(domain.Record{domain.FieldSchemeName: " pmksy "})
	require.True(t, ok)
	assert.Equal(t, a, b)

	c, ok := ContentHash(domain.Record{domain.FieldSchemeName: "Jal Shakti"})
	require.True(t, ok)
	assert.NotEqual(t, a, c)

	_, ok = ContentHash(domain.Record{domain.FieldRainfallMM: 10.0})
	assert.False(t, ok)
}
