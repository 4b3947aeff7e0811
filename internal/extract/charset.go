package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultFallbackCharset is used for exports that are not UTF-8 and carry no
// BOM or <meta charset>.
const DefaultFallbackCharset = "windows-1251"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeDocument converts raw export bytes to a UTF-8 document string.
// Valid UTF-8 is returned unchanged apart from a leading BOM. Otherwise the
// encoding is sniffed from the markup, falling back to the named charset.
func DecodeDocument(raw []byte, fallback string) (string, error) {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, utf8BOM)), nil
	}

	enc, name, certain := charset.DetermineEncoding(raw, "")
	// windows-1252 without certainty is the sniffer's "don't know" answer
	// unless the markup declared it
	if !certain && name == "windows-1252" && !declaresCharset(raw, name) {
		label := strings.TrimSpace(fallback)
		if label == "" {
			label = DefaultFallbackCharset
		}
		fb, err := htmlindex.Get(label)
		if err != nil {
			return "", fmt.Errorf("fallback charset %q: %w", label, err)
		}
		enc = fb
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// metaCharset finds charset declarations in <meta charset> and
// <meta http-equiv content> forms.
var metaCharset = regexp.MustCompile(`(?i)<meta\b[^>]*\bcharset\s*=\s*["']?\s*([a-z0-9_.:-]+)`)

// prescanLimit matches the byte window browsers and the sniffer inspect.
const prescanLimit = 1024

// declaresCharset reports whether a meta tag near the top of raw names an
// encoding whose canonical name is name.
func declaresCharset(raw []byte, name string) bool {
	if len(raw) > prescanLimit {
		raw = raw[:prescanLimit]
	}
	for _, m := range metaCharset.FindAllSubmatch(raw, -1) {
		if _, canonical := charset.Lookup(string(m[1])); canonical == name {
			return true
		}
	}
	return false
}
