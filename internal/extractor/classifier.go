// Package extractor turns raw crawled text into structured candidate
// records: content-type classification followed by pattern-based field
// extraction.
package extractor

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

// ContentClassifier picks a content category for raw text by counting
// distinct category keywords in a single Aho-Corasick pass.
type ContentClassifier struct {
	matcher  *ahocorasick.Matcher
	keywords []keywordRef
	logger   logging.Logger
}

type keywordRef struct {
	category domain.ContentType
	keyword  string
}

// NewContentClassifier builds the keyword automaton from the fixed
// category tables.
func NewContentClassifier(logger logging.Logger) *ContentClassifier {
	refs := make([]keywordRef, 0, 32)
	patterns := make([]string, 0, 32)
	for _, category := range categoryOrder {
		for _, kw := range categoryKeywords[category] {
			refs = append(refs, keywordRef{category: category, keyword: kw})
			patterns = append(patterns, kw)
		}
	}
	return &ContentClassifier{
		matcher:  ahocorasick.NewStringMatcher(patterns),
		keywords: refs,
		logger:   logger,
	}
}

// Classify returns the content category for the text. It is a total
// function: any input maps to one of the five categories. Safe for
// concurrent use; one classifier is shared by all workers and requests.
//
// Matching is case-insensitive substring matching; punctuation is kept so
// the "₹" and "rs" keywords survive. Ties between categories are broken
// by declaration order only, never by match count.
func (c *ContentClassifier) Classify(text string) domain.ContentType {
	hits := c.matcher.MatchThreadSafe([]byte(strings.ToLower(text)))

	counts := make(map[domain.ContentType]int, len(categoryOrder))
	for _, idx := range hits {
		if idx < 0 || idx >= len(c.keywords) {
			continue
		}
		counts[c.keywords[idx].category]++
	}

	for _, category := range categoryOrder {
		if counts[category] >= minKeywordMatches {
			c.logger.Debug("content classified",
				"content_type", string(category),
				"keyword_matches", counts[category],
			)
			return category
		}
	}

	c.logger.Debug("content classified", "content_type", string(domain.TypeGeneral))
	return domain.TypeGeneral
}
