package extract

import (
	"regexp"
	"strings"
)

// Extractor defines a minimal interface for article extraction strategies.
// Implementations must be deterministic and free of side effects.
type Extractor interface {
	// Extract converts one decoded document into its articles.
	Extract(doc string) Articles
}

// RuleExtractor scans raw markup for heading spans with regular
// expressions and renders text with the HTML tokenizer.
type RuleExtractor struct {
	rules    Rules
	heading  *regexp.Regexp
	keyword  *regexp.Regexp
	entities *strings.Replacer
}

// NewRuleExtractor compiles rules once so the extractor can be reused across
// documents.
func NewRuleExtractor(rules Rules) *RuleExtractor {
	rules = rules.withDefaults()
	return &RuleExtractor{
		rules:    rules,
		heading:  headingPattern(rules.HeadingClass, rules.Keyword),
		keyword:  keywordPattern(rules.Keyword),
		entities: entityReplacer(rules.Entities),
	}
}

func (e *RuleExtractor) Extract(doc string) Articles {
	return e.extract(doc)
}

// Rules returns the effective rules after defaults were applied.
func (e *RuleExtractor) Rules() Rules { return e.rules }

// headingPattern matches a span carrying class followed by the keyword,
// e.g. <span class="rvts9">Стаття 1.
func headingPattern(class, keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<span\b[^>]*\bclass\s*=\s*["']?[^"'>]*\b` +
		regexp.QuoteMeta(class) + `\b[^>]*>\s*` + regexp.QuoteMeta(keyword))
}
