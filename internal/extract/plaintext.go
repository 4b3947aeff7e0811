package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// blockClosers are end tags that terminate a line of text.
var blockClosers = map[string]bool{
	"p":          true,
	"div":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"tr":         true,
	"table":      true,
	"blockquote": true,
	"br":         true,
}

var manyNewlines = regexp.MustCompile(`\n{3,}`)

// PlainText converts a fragment of export markup into plain text using the
// entity table and bullet prefix from rules.
func PlainText(fragment string, rules Rules) string {
	rules = rules.withDefaults()
	return toPlainText(fragment, rules.Bullet, entityReplacer(rules.Entities))
}

// toPlainText walks the fragment with the HTML tokenizer. Text tokens are
// copied raw so that only the fixed entity table is decoded afterwards.
func toPlainText(fragment, bullet string, entities *strings.Replacer) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a strings.Reader can produce
			return normalizeText(entities.Replace(b.String()))
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "br":
				b.WriteByte('\n')
			case "li":
				b.WriteString(bullet)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if blockClosers[string(name)] {
				b.WriteByte('\n')
			}
		}
		// comments and doctypes are dropped
	}
}

// normalizeText unifies line endings, trims every line, keeps at most one
// blank line between paragraphs and trims the result.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = manyNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
