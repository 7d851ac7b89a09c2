package extractor

import (
	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

// Minimum segment/line lengths before extraction is attempted, and
// content truncation limits, in runes.
const (
	minSchemeSegmentLen    = 50
	minTechnicalSegmentLen = 100
	minLineLen             = 10
	maxTitleLen            = 100
	schemeContentLimit     = 500
	technicalContentLimit  = 1000
	generalContentLimit    = 1000
)

// A record is emitted only when it holds more than this many fields.
// Every candidate carries content/source_text plus extracted_date, so the
// threshold rejects segments where nothing beyond boilerplate matched.
const minPopulatedFields = 2

// PatternExtractor applies the per-category pattern dictionaries to raw
// text and produces candidate records. Extraction is a pure function of
// its input; repeated invocations on identical text yield identical
// field sets.
type PatternExtractor struct {
	logger logging.Logger
}

// NewPatternExtractor creates a pattern extractor.
func NewPatternExtractor(logger logging.Logger) *PatternExtractor {
	return &PatternExtractor{logger: logger}
}

// Extract produces candidate records from text for the given content
// category. Unknown categories fall back to the general extraction.
func (e *PatternExtractor) Extract(text string, contentType domain.ContentType) []domain.Record {
	var records []domain.Record
	switch contentType {
	case domain.TypeGovernmentScheme:
		records = e.extractSchemes(text)
	case domain.TypeWeatherData:
		records = e.extractWeather(text)
	case domain.TypeCostData:
		records = e.extractCosts(text)
	case domain.TypeTechnicalResource:
		records = e.extractTechnical(text)
	default:
		records = e.extractGeneral(text)
	}

	e.logger.Debug("extraction complete",
		"content_type", string(contentType),
		"records", len(records),
	)
	return records
}

// extractGeneral emits a single content-only record for text that fits no
// structured category.
func (e *PatternExtractor) extractGeneral(text string) []domain.Record {
	content, _ := truncateRunes(text, generalContentLimit)
	return []domain.Record{{
		domain.FieldContent:       content,
		domain.FieldType:          domain.ResourceTypeGeneral,
		domain.FieldExtractedDate: domain.Now(),
	}}
}
