package extractor

import (
	"strconv"
	"strings"

	"github.com/jalsetu/extractor/internal/domain"
)

// extractCosts pulls pricing lines. A price whose captured text fails
// float parsing is kept verbatim under price_text instead of being lost.
func (e *PatternExtractor) extractCosts(text string) []domain.Record {
	var records []domain.Record

	for _, line := range strings.Split(text, "\n") {
		if runeLen(strings.TrimSpace(line)) < minLineLen {
			continue
		}

		record := domain.Record{}

		if m := priceRe.FindStringSubmatch(line); m != nil {
			raw := m[1]
			if f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
				record[domain.FieldPrice] = f
			} else {
				record[domain.FieldPriceText] = raw
			}
		}
		if v, ok := firstGroup(unitRe, line); ok {
			record[domain.FieldUnit] = v
		}
		if v, ok := firstGroup(materialRe, line); ok {
			record[domain.FieldMaterial] = v
		}
		if v, ok := firstGroup(supplierRe, line); ok {
			record[domain.FieldSupplier] = v
		}

		record[domain.FieldSourceText] = line
		record[domain.FieldExtractedDate] = domain.Now()

		if len(record) > minPopulatedFields {
			records = append(records, record)
		}
	}

	return records
}
