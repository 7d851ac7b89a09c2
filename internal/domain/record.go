// Package domain defines the data model shared by the extraction and
// data-quality components: records, content types, and timestamp handling.
package domain

import (
	"strconv"
	"strings"
	"time"
)

// Well-known record field names.
const (
	FieldSchemeName    = "scheme_name"
	FieldEligibility   = "eligibility"
	FieldSubsidyInfo   = "subsidy_info"
	FieldDeadline      = "deadline"
	FieldContact       = "contact"
	FieldContent       = "content"
	FieldSourceText    = "source_text"
	FieldRainfallMM    = "rainfall_mm"
	FieldTemperatureC  = "temperature_c"
	FieldHumidityPct   = "humidity_percent"
	FieldDate          = "date"
	FieldPrice         = "price"
	FieldPriceText     = "price_text"
	FieldUnit          = "unit"
	FieldMaterial      = "material"
	FieldSupplier      = "supplier"
	FieldTitle         = "title"
	FieldType          = "type"
	FieldExtractedDate = "extracted_date"
	FieldQualityScore  = "quality_score"
)

// Record is one extracted candidate fact: a mapping from field name to a
// string, number, or nested list/mapping. Records have no identity beyond
// their content; equality is content-hash equality.
type Record map[string]any

// GetString returns the field value if it is a string, else "".
func (r Record) GetString(field string) string {
	if v, ok := r[field].(string); ok {
		return v
	}
	return ""
}

// GetFloat returns the field value coerced to a float64. Numeric strings
// are parsed; the second return reports whether coercion succeeded.
func (r Record) GetFloat(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// Has reports whether the field is present with a non-empty value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && !IsEmptyValue(v)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsEmptyValue reports whether a field value counts as empty: nil, an
// empty or whitespace-only string, or an empty slice/map. Numbers are
// never empty; a 0 mm rainfall reading is a real value.
func IsEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

// ToFloat coerces a record value to float64. Strings are parsed after
// trimming; all common integer and float widths are accepted.
func ToFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Timestamp layouts accepted by ParseTimestamp, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" is treated
// as a UTC offset; timestamps without an offset are accepted as-is.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Now returns the current UTC time formatted the way records carry
// extracted_date.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
