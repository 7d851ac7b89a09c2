package extractor

import (
	"strings"

	"github.com/jalsetu/extractor/internal/domain"
)

// extractTechnical pulls technical guideline excerpts from section-like
// segments and classifies each into a resource type by keyword priority:
// specification-like wins over procedure-like wins over regulation-like.
func (e *PatternExtractor) extractTechnical(text string) []domain.Record {
	var records []domain.Record

	for _, segment := range splitSegments(text) {
		if runeLen(strings.TrimSpace(segment)) < minTechnicalSegmentLen {
			continue
		}

		record := domain.Record{}

		if title := firstLine(segment); title != "" && runeLen(title) < maxTitleLen {
			record[domain.FieldTitle] = title
		}
		record[domain.FieldType] = classifyResourceType(segment)

		content, truncated := truncateRunes(segment, technicalContentLimit)
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

func classifyResourceType(segment string) string {
	lower := strings.ToLower(segment)
	switch {
	case containsAny(lower, specificationKeywords):
		return domain.ResourceTypeSpecification
	case containsAny(lower, procedureKeywords):
		return domain.ResourceTypeProcedure
	case containsAny(lower, regulationKeywords):
		return domain.ResourceTypeRegulation
	default:
		return domain.ResourceTypeGeneral
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
