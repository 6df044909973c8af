// Package textutil holds small string-formatting helpers shared by templates
// and exporters.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ToASCII transliterates s to ASCII where possible: runes are NFKD-decomposed
// and anything still outside ASCII (combining marks, untranslatable symbols)
// is dropped. "café" becomes "cafe", "日本語" becomes "".
func ToASCII(s string) string {
	// Transformers are stateful, so build a fresh chain per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CommaSeparatedList renders items for prose: "", "a", "a and b",
// "a, b and c".
func CommaSeparatedList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

var (
	acronymBoundary = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	caseBoundary    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelCaseToHyphenated converts camelCase or PascalCase identifiers to
// lower hyphenated form, keeping acronym runs together:
// "parseHTTPResponse" becomes "parse-http-response".
func CamelCaseToHyphenated(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}-${2}")
	s = caseBoundary.ReplaceAllString(s, "${1}-${2}")
	return strings.ToLower(s)
}
