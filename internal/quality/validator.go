package quality

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jalsetu/extractor/internal/domain"
)

// Validation limits.
const (
	schemeNameMinLen    = 5
	schemeNameMaxLen    = 200
	materialMinLen      = 2
	materialMaxLen      = 100
	technicalContentMin = 50
	rainfallMax         = 10000
	temperatureMin      = -50
	temperatureMax      = 60
	humidityMax         = 100
	priceMax            = 10000000
)

// subsidyValueRe requires a digit or currency marker in subsidy text.
var subsidyValueRe = regexp.MustCompile(`(?i)(\d+|rs\.?|₹)`)

// dateShapeRes are the accepted deadline shapes, tried in order: numeric
// day-first, numeric year-first, "D Mon YYYY", "Mon D, YYYY". The first
// match wins; day-first vs month-first is deliberately not disambiguated.
var dateShapeRes = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`),
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{2,4}`),
	regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2},?\s+\d{2,4}`),
}

// Validator applies per-type structural and range rules to records.
// Validation never panics; malformed input yields error strings to
// report, and the caller decides whether to drop the record.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a record against the rules for its content type and
// returns whether it is valid together with every accumulated error.
func (v *Validator) Validate(record domain.Record, contentType domain.ContentType) (bool, []string) {
	var errs []string

	for _, field := range requiredFields[contentType] {
		if !record.Has(field) {
			errs = append(errs, "Missing required field: "+field)
		}
	}

	switch contentType {
	case domain.TypeGovernmentScheme:
		errs = append(errs, v.validateScheme(record)...)
	case domain.TypeWeatherData:
		errs = append(errs, v.validateWeather(record)...)
	case domain.TypeCostData:
		errs = append(errs, v.validateCost(record)...)
	case domain.TypeTechnicalResource:
		errs = append(errs, v.validateTechnical(record)...)
	}

	errs = append(errs, v.validateGeneral(record)...)

	return len(errs) == 0, errs
}

func (v *Validator) validateScheme(record domain.Record) []string {
	var errs []string

	if _, ok := record[domain.FieldSchemeName]; ok {
		name := record.GetString(domain.FieldSchemeName)
		if n := utf8.RuneCountInString(name); n < schemeNameMinLen || n > schemeNameMaxLen {
			errs = append(errs, "Scheme name length should be between 5-200 characters")
		}
	}

	if _, ok := record[domain.FieldSubsidyInfo]; ok {
		if !subsidyValueRe.MatchString(record.GetString(domain.FieldSubsidyInfo)) {
			errs = append(errs, "Subsidy information should contain numerical values")
		}
	}

	if _, ok := record[domain.FieldDeadline]; ok {
		if !matchesDateShape(record.GetString(domain.FieldDeadline)) {
			errs = append(errs, "Invalid deadline format")
		}
	}

	return errs
}

func (v *Validator) validateWeather(record domain.Record) []string {
	var errs []string

	if _, ok := record[domain.FieldRainfallMM]; ok {
		if rainfall, parsed := record.GetFloat(domain.FieldRainfallMM); !parsed {
			errs = append(errs, "Invalid rainfall value format")
		} else if rainfall < 0 || rainfall > rainfallMax {
			errs = append(errs, "Rainfall value out of reasonable range (0-10000mm)")
		}
	}

	if _, ok := record[domain.FieldTemperatureC]; ok {
		if temp, parsed := record.GetFloat(domain.FieldTemperatureC); !parsed {
			errs = append(errs, "Invalid temperature value format")
		} else if temp < temperatureMin || temp > temperatureMax {
			errs = append(errs, "Temperature value out of reasonable range (-50 to 60°C)")
		}
	}

	if _, ok := record[domain.FieldHumidityPct]; ok {
		if humidity, parsed := record.GetFloat(domain.FieldHumidityPct); !parsed {
			errs = append(errs, "Invalid humidity value format")
		} else if humidity < 0 || humidity > humidityMax {
			errs = append(errs, "Humidity value should be between 0-100%")
		}
	}

	return errs
}

func (v *Validator) validateCost(record domain.Record) []string {
	var errs []string

	if _, ok := record[domain.FieldPrice]; ok {
		if price, parsed := record.GetFloat(domain.FieldPrice); !parsed {
			errs = append(errs, "Invalid price value format")
		} else {
			if price < 0 {
				errs = append(errs, "Price cannot be negative")
			}
			if price > priceMax {
				errs = append(errs, "Price value seems unreasonably high")
			}
		}
	}

	if _, ok := record[domain.FieldMaterial]; ok {
		material := record.GetString(domain.FieldMaterial)
		if n := utf8.RuneCountInString(material); n < materialMinLen || n > materialMaxLen {
			errs = append(errs, "Material name length should be between 2-100 characters")
		}
	}

	return errs
}

func (v *Validator) validateTechnical(record domain.Record) []string {
	var errs []string

	if _, ok := record[domain.FieldContent]; ok {
		if utf8.RuneCountInString(record.GetString(domain.FieldContent)) < technicalContentMin {
			errs = append(errs, "Technical resource content too short (minimum 50 characters)")
		}
	}

	if _, ok := record[domain.FieldType]; ok {
		resourceType := record.GetString(domain.FieldType)
		valid := false
		for _, t := range domain.ValidResourceTypes {
			if resourceType == t {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, fmt.Sprintf("Invalid resource type. Must be one of: %v", domain.ValidResourceTypes))
		}
	}

	return errs
}

// validateGeneral applies the rules common to every content type.
func (v *Validator) validateGeneral(record domain.Record) []string {
	var errs []string

	if _, ok := record[domain.FieldExtractedDate]; ok {
		if _, err := domain.ParseTimestamp(record.GetString(domain.FieldExtractedDate)); err != nil {
			errs = append(errs, "Invalid extracted_date format")
		}
	}

	// Sorted so the error list is deterministic.
	fields := make([]string, 0, len(record))
	for field := range record {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if s, ok := record[field].(string); ok && strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("Field '%s' contains only whitespace", field))
		}
	}

	return errs
}

func matchesDateShape(s string) bool {
	for _, re := range dateShapeRes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
