package extract

import "strings"

// Defaults used by the zakon.rada.gov.ua HTML exports.
const (
	DefaultHeadingClass = "rvts9"
	DefaultKeyword      = "Стаття"
	DefaultBullet       = "• "
)

// DefaultEntities is the fixed entity table applied by PlainText. Entities
// outside this table are left as-is.
var DefaultEntities = map[string]string{
	"&nbsp;":   " ",
	"&#160;":   " ",
	"&amp;":    "&",
	"&#38;":    "&",
	"&lt;":     "<",
	"&#60;":    "<",
	"&gt;":     ">",
	"&#62;":    ">",
	"&quot;":   `"`,
	"&#34;":    `"`,
	"&#39;":    "'",
	"&apos;":   "'",
	"&laquo;":  "«",
	"&#171;":   "«",
	"&raquo;":  "»",
	"&#187;":   "»",
	"&mdash;":  "—",
	"&#8212;":  "—",
	"&ndash;":  "–",
	"&#8211;":  "–",
	"&hellip;": "…",
	"&#8230;":  "…",
	"&lsquo;":  "‘",
	"&rsquo;":  "’",
	"&#8217;":  "’",
	"&ldquo;":  "“",
	"&rdquo;":  "”",
	"&bdquo;":  "„",
	"&sect;":   "§",
	"&#167;":   "§",
	"&numero;": "№",
	"&#8470;":  "№",
}

// Rules holds every knob of the extraction. Nothing in this package reads
// package-level state during extraction; callers pass Rules explicitly.
type Rules struct {
	// HeadingClass is the inline style class marking article heading spans.
	HeadingClass string
	// Keyword is the literal word that starts every article heading.
	Keyword string
	// Entities maps entity text (including '&' and ';') to its replacement.
	Entities map[string]string
	// Bullet replaces opening list-item tags.
	Bullet string
}

// DefaultRules returns the rules for the standard legal-code export format.
func DefaultRules() Rules {
	return Rules{
		HeadingClass: DefaultHeadingClass,
		Keyword:      DefaultKeyword,
		Entities:     DefaultEntities,
		Bullet:       DefaultBullet,
	}
}

// withDefaults fills zero-valued fields so a partially populated Rules
// behaves like DefaultRules for the missing parts.
func (r Rules) withDefaults() Rules {
	if strings.TrimSpace(r.HeadingClass) == "" {
		r.HeadingClass = DefaultHeadingClass
	}
	if strings.TrimSpace(r.Keyword) == "" {
		r.Keyword = DefaultKeyword
	}
	if r.Entities == nil {
		r.Entities = DefaultEntities
	}
	if r.Bullet == "" {
		r.Bullet = DefaultBullet
	}
	return r
}

// entityReplacer builds a single-pass replacer so that decoded output is
// never decoded twice ("&amp;lt;" yields "&lt;").
func entityReplacer(table map[string]string) *strings.Replacer {
	pairs := make([]string, 0, len(table)*2)
	for k, v := range table {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...)
}
