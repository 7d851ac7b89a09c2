package quality

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

// dedupKeyFields are concatenated, in this order, to build the content
// hash key. Records contributing nothing to any of them are treated as
// always unique.
var dedupKeyFields = []string{
	domain.FieldSchemeName,
	domain.FieldContent,
	domain.FieldSourceText,
	domain.FieldMaterial,
	domain.FieldTitle,
}

// Deduplicator eliminates records with identical content hashes,
// preserving order and keeping the first occurrence.
type Deduplicator struct {
	logger logging.Logger
}

// NewDeduplicator creates a deduplicator.
func NewDeduplicator(logger logging.Logger) *Deduplicator {
	return &Deduplicator{logger: logger}
}

// Dedupe returns the input sequence with duplicates removed,
// first-occurrence-wins. It is idempotent.
func (d *Deduplicator) Dedupe(records []domain.Record) []domain.Record {
	if len(records) == 0 {
		return records
	}

	seen := make(map[xxh3.Uint128]struct{}, len(records))
	unique := make([]domain.Record, 0, len(records))

	for _, record := range records {
		hash, hasKey := ContentHash(record)
		if !hasKey {
			unique = append(unique, record)
			continue
		}
		if _, dup := seen[hash]; dup {
			d.logger.Debug("removed duplicate record",
				"scheme_name", record.GetString(domain.FieldSchemeName),
				"title", record.GetString(domain.FieldTitle),
			)
			continue
		}
		seen[hash] = struct{}{}
		unique = append(unique, record)
	}

	if removed := len(records) - len(unique); removed > 0 {
		d.logger.Info("removed duplicate records", "removed", removed, "kept", len(unique))
	}
	return unique
}

// ContentHash computes the 128-bit content hash over the canonicalized
// (trimmed, lower-cased) key fields. The second return is false when the
// record contributes no key content, in which case no hash is assigned.
func ContentHash(record domain.Record) (xxh3.Uint128, bool) {
	var sb strings.Builder
	hasKey := false
	for _, field := range dedupKeyFields {
		v, ok := record[field]
		if !ok || domain.IsEmptyValue(v) {
			continue
		}
		sb.WriteString(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
		hasKey = true
	}
	if !hasKey {
		return xxh3.Uint128{}, false
	}
	return xxh3.Hash128([]byte(sb.String())), true
}
