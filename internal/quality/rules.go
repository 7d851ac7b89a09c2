// Package quality implements the data-quality pipeline: per-type record
// validation, 5-factor quality scoring, content-hash deduplication, and
// their composition into a processing pipeline.
package quality

import (
	"fmt"
	"math"

	"github.com/jalsetu/extractor/internal/domain"
)

// requiredFields lists the fields a record must carry, per content type,
// to be minimally valid. Loaded once and read-only for the process
// lifetime.
var requiredFields = map[domain.ContentType][]string{
	domain.TypeGovernmentScheme:  {domain.FieldSchemeName, domain.FieldContent},
	domain.TypeWeatherData:       {domain.FieldSourceText},
	domain.TypeCostData:          {domain.FieldSourceText},
	domain.TypeTechnicalResource: {domain.FieldContent},
}

// optionalFields is the per-type checklist feeding the optional share of
// the completeness sub-score.
var optionalFields = map[domain.ContentType][]string{
	domain.TypeGovernmentScheme: {
		domain.FieldEligibility, domain.FieldSubsidyInfo, domain.FieldDeadline,
		domain.FieldContact, "key_features",
	},
	domain.TypeWeatherData: {
		domain.FieldRainfallMM, domain.FieldTemperatureC, domain.FieldHumidityPct,
		"location", domain.FieldDate,
	},
	domain.TypeCostData: {
		domain.FieldPrice, domain.FieldUnit, domain.FieldMaterial, domain.FieldSupplier,
	},
	domain.TypeTechnicalResource: {
		domain.FieldTitle, domain.FieldType, "key_points",
	},
}

// relevanceKeywords are the per-type domain terms behind the relevance
// sub-score.
var relevanceKeywords = map[domain.ContentType][]string{
	domain.TypeGovernmentScheme: {
		"rainwater", "harvesting", "water", "conservation", "irrigation", "watershed",
	},
	domain.TypeWeatherData: {
		"rainfall", "precipitation", "monsoon", "weather", "climate",
	},
	domain.TypeCostData: {
		"tank", "pipe", "filter", "pump", "storage", "installation",
	},
	domain.TypeTechnicalResource: {
		"guideline", "specification", "standard", "procedure", "technical",
	},
}

// Weights holds the five quality factor weights. They must sum to 1.0.
type Weights struct {
	Completeness float64 `yaml:"completeness"`
	Accuracy     float64 `yaml:"accuracy"`
	Freshness    float64 `yaml:"freshness"`
	Relevance    float64 `yaml:"relevance"`
	Structure    float64 `yaml:"structure"`
}

// DefaultWeights returns the fixed production weight table.
func DefaultWeights() Weights {
	return Weights{
		Completeness: 0.3,
		Accuracy:     0.25,
		Freshness:    0.2,
		Relevance:    0.15,
		Structure:    0.1,
	}
}

const weightSumTolerance = 1e-9

// Validate checks the sum-to-one invariant.
func (w Weights) Validate() error {
	sum := w.Completeness + w.Accuracy + w.Freshness + w.Relevance + w.Structure
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("quality weights must sum to 1.0, got %v", sum)
	}
	return nil
}
