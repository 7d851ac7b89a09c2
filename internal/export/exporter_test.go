package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/quality"
)

func testRecords() []domain.Record {
	return []domain.Record{
		{
			domain.FieldSchemeName:   "PMKSY",
			domain.FieldContent:      "irrigation subsidy",
			domain.FieldQualityScore: 0.85,
		},
		{
			domain.FieldSchemeName: "Jal Shakti Abhiyan",
			domain.FieldContent:    "conservation drive",
			"key_features":         []string{"drip", "sprinkler"},
		},
	}
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, "jalsetu", logging.NewNop())

	path, err := e.ExportJSON(testRecords(), domain.TypeGovernmentScheme)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "jalsetu_government_scheme.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []domain.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "PMKSY", decoded[0].GetString(domain.FieldSchemeName))
}

func TestExportCSV(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, "jalsetu", logging.NewNop())

	path, err := e.ExportCSV(testRecords(), domain.TypeGovernmentScheme)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Header is the sorted union of field names.
	assert.Equal(t, []string{"content", "key_features", "quality_score", "scheme_name"}, rows[0])
	// Missing fields are empty cells; nested values are JSON-encoded.
	assert.Equal(t, "", rows[1][1])
	assert.Equal(t, `["drip","sprinkler"]`, rows[2][1])
	assert.Equal(t, "0.85", rows[1][2])
}

func TestExportSummary(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir, "jalsetu", logging.NewNop())

	stats := quality.Stats{Input: 5, Duplicates: 1, Invalid: 1, Output: 3}
	path, err := e.ExportSummary(domain.TypeCostData, stats)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "cost_data", summary.DataType)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, stats, summary.Stats)
	assert.NotEmpty(t, summary.CreationDate)
}
