package extract

import (
	"regexp"
	"strings"
)

// closingMarker ends the block that holds a heading.
var closingMarker = regexp.MustCompile(`(?i)</\s*(?:span|p)\s*>`)

// Extract segments a legal code document into articles keyed by article
// number. It never fails: input without recognizable headings yields an
// empty set, and malformed headings are skipped.
func Extract(doc string, rules Rules) Articles {
	return NewRuleExtractor(rules).Extract(doc)
}

// heading is an accepted article heading within a document.
type heading struct {
	start    int // offset of the heading marker
	blockEnd int // offset just past the heading's closing marker
	id       string
	// the heading block ended before the period after the number
	noPeriod bool
}

func (e *RuleExtractor) extract(doc string) Articles {
	var out Articles
	var accepted []heading
	for _, loc := range e.heading.FindAllStringIndex(doc, -1) {
		start := loc[0]
		end := closingMarker.FindStringIndex(doc[start:])
		if end == nil {
			continue
		}
		blockEnd := start + end[1]
		title := toPlainText(doc[start:blockEnd], e.rules.Bullet, e.entities)
		id, ok := normalizeIdentifier(title, e.keyword)
		if !ok {
			continue
		}
		accepted = append(accepted, heading{start: start, blockEnd: blockEnd, id: id, noPeriod: !strings.Contains(title, ".")})
	}

	for i, h := range accepted {
		limit := len(doc)
		if i+1 < len(accepted) {
			limit = accepted[i+1].start
		}
		var body string
		if h.blockEnd <= limit {
			body = toPlainText(doc[h.blockEnd:limit], e.rules.Bullet, e.entities)
		}
		if h.noPeriod {
			body = strings.TrimSpace(strings.TrimPrefix(body, "."))
		}
		out.set(h.id, assemble(e.rules.Keyword, h.id, body))
	}
	return out
}

func assemble(keyword, id, body string) string {
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteByte(' ')
	b.WriteString(id)
	b.WriteByte('.')
	if body != "" {
		b.WriteByte('\n')
		b.WriteString(body)
	}
	return b.String()
}
