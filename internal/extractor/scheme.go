package extractor

import (
	"strings"

	"github.com/jalsetu/extractor/internal/domain"
)

// extractSchemes pulls government scheme records out of section-like
// segments. Each pattern is applied independently; a missing match is
// simply an absent field, never an error.
func (e *PatternExtractor) extractSchemes(text string) []domain.Record {
	var records []domain.Record

	for _, segment := range splitSegments(text) {
		if runeLen(strings.TrimSpace(segment)) < minSchemeSegmentLen {
			continue
		}

		record := domain.Record{}

		if name, ok := extractSchemeName(segment); ok {
			record[domain.FieldSchemeName] = name
		}
		if v, ok := firstGroup(eligibilityRe, segment); ok {
			record[domain.FieldEligibility] = v
		}
		// Subsidy is a bare match set: every mention is kept, joined.
		if matches := subsidyRe.FindAllString(segment, -1); len(matches) > 0 {
			record[domain.FieldSubsidyInfo] = strings.Join(matches, ", ")
		}
		if v, ok := firstGroup(deadlineRe, segment); ok {
			record[domain.FieldDeadline] = v
		}
		if v, ok := firstGroup(contactRe, segment); ok {
			record[domain.FieldContact] = v
		}

		content, truncated := truncateRunes(segment, schemeContentLimit)
		if truncated {
			content += "..."
		}
		record[domain.FieldContent] = content
		record[domain.FieldExtractedDate] = domain.Now()

		if len(record) > minPopulatedFields {
			records = append(records, record)
		}
	}

	return records
}

// extractSchemeName resolves the scheme name: a labeled "keyword: value"
// capture wins, else the full line holding the first scheme keyword.
func extractSchemeName(segment string) (string, bool) {
	if name, ok := firstGroup(schemeLabelRe, segment); ok {
		return name, true
	}
	if line := strings.TrimSpace(schemeLineRe.FindString(segment)); line != "" {
		return line, true
	}
	return "", false
}
