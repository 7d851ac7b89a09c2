package extractor

import "github.com/jalsetu/extractor/internal/domain"

// Classification keyword sets. A category is chosen when at least
// minKeywordMatches distinct keywords from its set appear in the text;
// categories are tested in the fixed order of categoryOrder and the first
// hit wins, regardless of match counts in later categories.
const minKeywordMatches = 2

var categoryOrder = []domain.ContentType{
	domain.TypeGovernmentScheme,
	domain.TypeWeatherData,
	domain.TypeCostData,
	domain.TypeTechnicalResource,
}

var categoryKeywords = map[domain.ContentType][]string{
	domain.TypeGovernmentScheme: {
		"scheme", "yojana", "subsidy", "grant", "eligibility", "application",
	},
	domain.TypeWeatherData: {
		"rainfall", "temperature", "weather", "precipitation", "humidity", "forecast",
	},
	domain.TypeCostData: {
		"price", "cost", "rate", "amount", "rs", "₹", "supplier", "vendor",
	},
	domain.TypeTechnicalResource: {
		"guideline", "specification", "standard", "procedure", "technical", "regulation",
	},
}
