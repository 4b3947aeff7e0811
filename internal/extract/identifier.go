package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	identifierPattern = regexp.MustCompile(`^[0-9]+(-[0-9]+)?$`)
	spacedHyphen      = regexp.MustCompile(` *- *`)
)

// NormalizeIdentifier derives the article number from plain heading text
// such as "Стаття 130-1. Назва". It reports false when the heading has no
// keyword or the number is not of the form N or N-M (for example "130а").
func NormalizeIdentifier(heading string, rules Rules) (string, bool) {
	rules = rules.withDefaults()
	return normalizeIdentifier(heading, keywordPattern(rules.Keyword))
}

func keywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
}

func normalizeIdentifier(heading string, keyword *regexp.Regexp) (string, bool) {
	loc := keyword.FindStringIndex(heading)
	if loc == nil {
		return "", false
	}
	rest := heading[loc[1]:]
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		rest = rest[:dot]
	}

	var b strings.Builder
	for _, r := range rest {
		switch {
		case unicode.IsLetter(r):
			// "130а" and the like are rejected outright
			return "", false
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	id := spacedHyphen.ReplaceAllString(b.String(), "-")
	id = strings.ReplaceAll(id, " ", "")
	if !identifierPattern.MatchString(id) {
		return "", false
	}
	return id, true
}
