package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern dictionaries, one per content category. All patterns are
// case-insensitive and carry a single capturing group unless they are
// bare match sets (subsidy). Compiled once at package init and treated as
// read-only for the process lifetime.
var (
	// Government scheme patterns. Scheme names are resolved in two
	// steps: a labeled "keyword: value" capture first, falling back to
	// the full line containing the first scheme keyword, so headings
	// like "Pradhan Mantri Krishi Sinchayee Yojana (PMKSY)" are kept
	// whole.
	schemeLabelRe = regexp.MustCompile(`(?i)(?:scheme|yojana|program|programme)\s*[:\-]\s*([^\n\r]+)`)
	schemeLineRe  = regexp.MustCompile(`(?im)^[^\n\r]*(?:scheme|yojana|program|programme)[^\n\r]*$`)
	eligibilityRe = regexp.MustCompile(`(?i)(?:eligibility|eligible|criteria)[\s:]*([^\n\r]+)`)
	subsidyRe     = regexp.MustCompile(`(?i)(?:subsidy|grant|financial|amount|rs\.?\s*\d+(?:,\d+)*(?:\.\d+)?|₹\s*\d+(?:,\d+)*(?:\.\d+)?)`)
	deadlineRe    = regexp.MustCompile(`(?i)(?:deadline|last date|apply by)[\s:]*([^\n\r]+)`)
	contactRe     = regexp.MustCompile(`(?i)(?:contact|phone|email|address)[\s:]*([^\n\r]+)`)

	// Weather patterns: the numeric capture requires an explicit unit.
	rainfallRe    = regexp.MustCompile(`(?i)(?:rainfall|precipitation|rain)[\s:]*(\d+(?:\.\d+)?)\s*(?:mm|millimeter)`)
	temperatureRe = regexp.MustCompile(`(?i)(?:temperature|temp)[\s:]*(\d+(?:\.\d+)?)\s*(?:°c|celsius|degree)`)
	humidityRe    = regexp.MustCompile(`(?i)(?:humidity|moisture)[\s:]*(\d+(?:\.\d+)?)\s*(?:%|percent)`)
	weatherDateRe = regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2})`)

	// Cost patterns.
	priceRe    = regexp.MustCompile(`(?i)(?:rs\.?\s*|₹\s*|price\s*|cost\s*)(\d+(?:,\d+)*(?:\.\d+)?)`)
	unitRe     = regexp.MustCompile(`(?i)(?:per|/)\s*([a-zA-Z\s]+)`)
	materialRe = regexp.MustCompile(`(?i)(?:material|item|product)[\s:]*([^\n\r]+)`)
	supplierRe = regexp.MustCompile(`(?i)(?:supplier|vendor|company)[\s:]*([^\n\r]+)`)

	blankLineRe = regexp.MustCompile(`\n\s*\n`)
)

// Technical resource type keyword sets, tested in priority order.
var (
	specificationKeywords = []string{"specification", "requirement", "standard", "guideline"}
	procedureKeywords     = []string{"procedure", "process", "step", "method"}
	regulationKeywords    = []string{"regulation", "law", "act", "rule"}
)

// splitSegments breaks text into section-like segments at blank-line
// boundaries and at a "." immediately followed (after optional
// whitespace) by an uppercase letter. RE2 has no lookahead, so the
// sentence boundary is found by scanning.
func splitSegments(text string) []string {
	var segments []string
	for _, para := range blankLineRe.Split(text, -1) {
		segments = append(segments, splitSentences(para)...)
	}
	return segments
}

func splitSentences(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '.' {
			continue
		}
		j := i + 1
		for j < len(s) && isSpaceByte(s[j]) {
			j++
		}
		if j < len(s) && s[j] >= 'A' && s[j] <= 'Z' {
			out = append(out, s[start:i])
			start = j
			i = j - 1
		}
	}
	out = append(out, s[start:])
	return out
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// truncateRunes cuts s to at most n runes, reporting whether it was cut.
func truncateRunes(s string, n int) (string, bool) {
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:n]), true
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
