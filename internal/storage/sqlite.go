// Package storage persists processed records to SQLite so batch runs
// can be audited and re-exported without reprocessing.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/quality"
)

const schema = `
CREATE TABLE IF NOT EXISTS processed_records (
	id            TEXT PRIMARY KEY,
	batch_id      TEXT NOT NULL,
	data_type     TEXT NOT NULL,
	quality_score REAL NOT NULL,
	content_hash  TEXT NOT NULL,
	payload       TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_processed_records_batch ON processed_records (batch_id);
CREATE INDEX IF NOT EXISTS idx_processed_records_type  ON processed_records (data_type);
`

// StoredRecord is one persisted row.
type StoredRecord struct {
	ID           string  `db:"id"`
	BatchID      string  `db:"batch_id"`
	DataType     string  `db:"data_type"`
	QualityScore float64 `db:"quality_score"`
	ContentHash  string  `db:"content_hash"`
	Payload      string  `db:"payload"`
	CreatedAt    string  `db:"created_at"`
}

// Record unmarshals the row payload back into a record.
func (s *StoredRecord) Record() (domain.Record, error) {
	var record domain.Record
	if err := json.Unmarshal([]byte(s.Payload), &record); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return record, nil
}

// Store wraps the SQLite connection for processed records.
type Store struct {
	db     *sqlx.DB
	logger logging.Logger
}

// NewStore opens (and creates if needed) the database at path. Use
// ":memory:" for an ephemeral store.
func NewStore(path string, logger logging.Logger) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// SaveBatch persists one content type's processed records under a fresh
// batch id and returns it. Records are inserted in a single transaction.
func (s *Store) SaveBatch(ctx context.Context, contentType domain.ContentType, records []domain.Record) (string, error) {
	batchID := uuid.NewString()
	createdAt := domain.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO processed_records (id, batch_id, data_type, quality_score, content_hash, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return "", fmt.Errorf("marshal record: %w", err)
		}
		score, _ := record.GetFloat(domain.FieldQualityScore)
		if _, err := tx.ExecContext(ctx, insert,
			uuid.NewString(),
			batchID,
			string(contentType),
			score,
			hashHex(record),
			string(payload),
			createdAt,
		); err != nil {
			return "", fmt.Errorf("insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit batch: %w", err)
	}

	s.logger.Info("batch saved",
		"batch_id", batchID,
		"data_type", string(contentType),
		"records", len(records),
	)
	return batchID, nil
}

// GetBatch returns all rows saved under a batch id, insertion order.
func (s *Store) GetBatch(ctx context.Context, batchID string) ([]StoredRecord, error) {
	var rows []StoredRecord
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, batch_id, data_type, quality_score, content_hash, payload, created_at
		 FROM processed_records WHERE batch_id = ? ORDER BY rowid`, batchID)
	if err != nil {
		return nil, fmt.Errorf("select batch: %w", err)
	}
	return rows, nil
}

// CountByType returns the stored row count per data type.
func (s *Store) CountByType(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		DataType string `db:"data_type"`
		Count    int    `db:"count"`
	}{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT data_type, COUNT(*) AS count FROM processed_records GROUP BY data_type`)
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.DataType] = row.Count
	}
	return counts, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// hashHex renders the record's content hash as 32 hex characters.
// Records without any dedup key content hash to the empty string.
func hashHex(record domain.Record) string {
	h, ok := quality.ContentHash(record)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
