package domain

// ContentType is the closed category a raw text segment is classified
// into. It determines which pattern dictionary, required-field set, and
// relevance keyword list apply.
type ContentType string

// ContentType constants.
const (
	TypeGovernmentScheme  ContentType = "government_scheme"
	TypeWeatherData       ContentType = "weather_data"
	TypeCostData          ContentType = "cost_data"
	TypeTechnicalResource ContentType = "technical_resource"
	TypeGeneral           ContentType = "general"
)

// AllContentTypes lists the enumeration in classification priority order,
// general last.
var AllContentTypes = []ContentType{
	TypeGovernmentScheme,
	TypeWeatherData,
	TypeCostData,
	TypeTechnicalResource,
	TypeGeneral,
}

// contentTypeAliases maps the historical names used by the file formats
// (plural forms, "cost_information") onto the canonical enumeration.
var contentTypeAliases = map[string]ContentType{
	"government_scheme":   TypeGovernmentScheme,
	"government_schemes":  TypeGovernmentScheme,
	"weather_data":        TypeWeatherData,
	"cost_data":           TypeCostData,
	"cost_information":    TypeCostData,
	"technical_resource":  TypeTechnicalResource,
	"technical_resources": TypeTechnicalResource,
	"general":             TypeGeneral,
}

// NormalizeContentType resolves a content type name, including historical
// aliases, to its canonical value. Unknown names resolve to TypeGeneral.
func NormalizeContentType(name string) ContentType {
	if ct, ok := contentTypeAliases[name]; ok {
		return ct
	}
	return TypeGeneral
}

// IsKnownContentType reports whether name resolves to a member of the
// enumeration, aliases included.
func IsKnownContentType(name string) bool {
	_, ok := contentTypeAliases[name]
	return ok
}

// Resource type values allowed in a technical_resource record's "type"
// field.
const (
	ResourceTypeSpecification = "technical_specification"
	ResourceTypeProcedure     = "procedure"
	ResourceTypeRegulation    = "regulation"
	ResourceTypeGeneral       = "general"
)

// ValidResourceTypes is the closed set for the technical "type" field.
var ValidResourceTypes = []string{
	ResourceTypeSpecification,
	ResourceTypeProcedure,
	ResourceTypeRegulation,
	ResourceTypeGeneral,
}
