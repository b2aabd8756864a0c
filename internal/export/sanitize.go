// Package export renders a checklist session for human consumption: a PDF
// document, a plain-text table, and the filename convention for exported
// files.
package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation that the core PDF fonts cannot encode, mapped to ASCII
// equivalents before accent stripping.
var asciiReplacer = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	" ", " ",
)

// asciiFold decomposes characters and drops combining marks, turning
// e.g. "é" into "e".
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// ASCIISafe reduces a string to plain ASCII: curly punctuation is replaced,
// accents are stripped, any remaining non-ASCII runes are dropped, and runs
// of whitespace collapse to single spaces. Used for the core-font PDF path,
// which cannot encode anything outside Latin-1.
func ASCIISafe(s string) string {
	if s == "" {
		return ""
	}

	s = asciiReplacer.Replace(s)

	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
