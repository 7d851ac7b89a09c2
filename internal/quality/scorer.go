package quality

import (
	"math"
	"strings"
	"time"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

// Freshness step thresholds in days and their scores.
const (
	freshnessDay     = 1
	freshnessWeek    = 7
	freshnessMonth   = 30
	freshnessQuarter = 90

	freshnessScoreDay     = 1.0
	freshnessScoreWeek    = 0.9
	freshnessScoreMonth   = 0.7
	freshnessScoreQuarter = 0.5
	freshnessScoreStale   = 0.3
	freshnessScoreUnknown = 0.5
)

// Completeness and structure sub-score shares.
const (
	requiredShare = 0.7
	optionalShare = 0.3

	namingScoreClean = 0.4
	namingScoreDirty = 0.2
	typedFieldsScore = 0.3
	nestedValueScore = 0.3

	accuracyErrorPenalty = 0.1
	accuracyFloor        = 0.2
)

// Scorer computes the weighted 5-factor quality score for a record. It
// is pure: the caller conventionally stores the result back onto the
// record under quality_score.
type Scorer struct {
	weights   Weights
	validator *Validator
	logger    logging.Logger
}

// NewScorer creates a scorer with the default weight table.
func NewScorer(validator *Validator, logger logging.Logger) *Scorer {
	s, err := NewScorerWithWeights(validator, DefaultWeights(), logger)
	if err != nil {
		// Default weights always satisfy the sum-to-one invariant.
		panic(err)
	}
	return s
}

// NewScorerWithWeights creates a scorer with a custom weight table,
// enforcing the sum-to-one invariant at construction.
func NewScorerWithWeights(validator *Validator, weights Weights, logger logging.Logger) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{
		weights:   weights,
		validator: validator,
		logger:    logger,
	}, nil
}

// Score returns the record's quality in [0, 1], rounded to 3 decimals.
func (s *Scorer) Score(record domain.Record, contentType domain.ContentType) float64 {
	total := s.scoreCompleteness(record, contentType)*s.weights.Completeness +
		s.scoreAccuracy(record, contentType)*s.weights.Accuracy +
		s.scoreFreshness(record)*s.weights.Freshness +
		s.scoreRelevance(record, contentType)*s.weights.Relevance +
		s.scoreStructure(record)*s.weights.Structure

	return math.Round(total*1000) / 1000
}

// scoreCompleteness weighs required fields at 70% and the per-type
// optional checklist at 30%.
func (s *Scorer) scoreCompleteness(record domain.Record, contentType domain.ContentType) float64 {
	required := requiredFields[contentType]
	optional := optionalFields[contentType]

	return presentFraction(record, required)*requiredShare +
		presentFraction(record, optional)*optionalShare
}

func presentFraction(record domain.Record, fields []string) float64 {
	present := 0
	for _, field := range fields {
		if record.Has(field) {
			present++
		}
	}
	return float64(present) / math.Max(float64(len(fields)), 1)
}

// scoreAccuracy is 1.0 for a record with no validation errors, otherwise
// penalized per error with a fixed floor.
func (s *Scorer) scoreAccuracy(record domain.Record, contentType domain.ContentType) float64 {
	valid, errs := s.validator.Validate(record, contentType)
	if valid {
		return 1.0
	}
	return math.Max(1.0-float64(len(errs))*accuracyErrorPenalty, accuracyFloor)
}

// scoreFreshness is a step function of the extracted_date age. Missing
// or unparsable dates score neutral.
func (s *Scorer) scoreFreshness(record domain.Record) float64 {
	if _, ok := record[domain.FieldExtractedDate]; !ok {
		return freshnessScoreUnknown
	}
	extracted, err := domain.ParseTimestamp(record.GetString(domain.FieldExtractedDate))
	if err != nil {
		return freshnessScoreUnknown
	}

	daysOld := int(time.Since(extracted).Hours() / 24)
	switch {
	case daysOld <= freshnessDay:
		return freshnessScoreDay
	case daysOld <= freshnessWeek:
		return freshnessScoreWeek
	case daysOld <= freshnessMonth:
		return freshnessScoreMonth
	case daysOld <= freshnessQuarter:
		return freshnessScoreQuarter
	default:
		return freshnessScoreStale
	}
}

// scoreRelevance counts type-specific domain keywords in the record's
// text fields, normalized by the keyword list size.
func (s *Scorer) scoreRelevance(record domain.Record, contentType domain.ContentType) float64 {
	keywords := relevanceKeywords[contentType]
	if len(keywords) == 0 {
		return 0
	}

	text := strings.ToLower(record.GetString(domain.FieldContent) + " " + record.GetString(domain.FieldSourceText))

	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return math.Min(float64(matches)/float64(len(keywords)), 1.0)
}

// scoreStructure rewards clean field naming, suffix-consistent value
// types, and the presence of nested values.
func (s *Scorer) scoreStructure(record domain.Record) float64 {
	score := namingScoreClean
	for field := range record {
		if field == "" || field != strings.TrimSpace(field) {
			score = namingScoreDirty
			break
		}
	}

	if consistentFieldTypes(record) {
		score += typedFieldsScore
	}

	for _, v := range record {
		if isNestedValue(v) {
			score += nestedValueScore
			break
		}
	}

	return math.Min(score, 1.0)
}

// consistentFieldTypes checks the suffix conventions: *_date fields hold
// strings, *_mm/*_c/*_percent fields hold numbers.
func consistentFieldTypes(record domain.Record) bool {
	for field, v := range record {
		if strings.HasSuffix(field, "_date") {
			if _, ok := v.(string); !ok {
				return false
			}
			continue
		}
		if strings.HasSuffix(field, "_mm") || strings.HasSuffix(field, "_c") || strings.HasSuffix(field, "_percent") {
			if _, ok := domain.ToFloat(v); !ok {
				return false
			}
		}
	}
	return true
}

func isNestedValue(v any) bool {
	switch v.(type) {
	case []any, []string, map[string]any:
		return true
	default:
		return false
	}
}
