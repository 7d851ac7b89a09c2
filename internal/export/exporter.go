// Package export writes processed record batches to consolidated JSON
// and CSV files for downstream consumers. Field encoding and quoting
// live here, not in the core pipeline.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/quality"
)

const outputDirPerm = 0o755

// Exporter writes batches under a fixed output directory with a
// configurable file prefix: <prefix>_<type>.json / .csv.
type Exporter struct {
	outputDir string
	prefix    string
	logger    logging.Logger
}

// NewExporter creates an exporter rooted at outputDir.
func NewExporter(outputDir, prefix string, logger logging.Logger) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		prefix:    prefix,
		logger:    logger,
	}
}

// ExportJSON writes the batch as a UTF-8 JSON array of objects and
// returns the file path.
func (e *Exporter) ExportJSON(records []domain.Record, contentType domain.ContentType) (string, error) {
	if err := os.MkdirAll(e.outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}

	path := e.filePath(contentType, "json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write json export: %w", err)
	}

	e.logger.Info("exported records", "format", "json", "path", path, "records", len(records))
	return path, nil
}

// ExportCSV writes the batch as a flattened CSV with a header row. The
// columns are the union of all field names in stable sorted order;
// nested values are JSON-encoded into their cell.
func (e *Exporter) ExportCSV(records []domain.Record, contentType domain.ContentType) (string, error) {
	if err := os.MkdirAll(e.outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := e.filePath(contentType, "csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := columnOrder(records)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := make([]string, len(header))
		for i, field := range header {
			row[i] = cellValue(record[field])
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv export: %w", err)
	}

	e.logger.Info("exported records", "format", "csv", "path", path, "records", len(records))
	return path, nil
}

// Summary describes one exported batch.
type Summary struct {
	DataType     string        `json:"data_type"`
	TotalRecords int           `json:"total_records"`
	Stats        quality.Stats `json:"stats"`
	CreationDate string        `json:"creation_date"`
}

// ExportSummary writes the batch summary JSON next to the data files.
func (e *Exporter) ExportSummary(contentType domain.ContentType, stats quality.Stats) (string, error) {
	if err := os.MkdirAll(e.outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	summary := Summary{
		DataType:     string(contentType),
		TotalRecords: stats.Output,
		Stats:        stats,
		CreationDate: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	path := filepath.Join(e.outputDir, fmt.Sprintf("%s_%s_summary.json", e.prefix, contentType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}

func (e *Exporter) filePath(contentType domain.ContentType, ext string) string {
	return filepath.Join(e.outputDir, fmt.Sprintf("%s_%s.%s", e.prefix, contentType, ext))
}

func columnOrder(records []domain.Record) []string {
	set := make(map[string]struct{})
	for _, record := range records {
		for field := range record {
			set[field] = struct{}{}
		}
	}
	columns := make([]string, 0, len(set))
	for field := range set {
		columns = append(columns, field)
	}
	sort.Strings(columns)
	return columns
}

func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}
