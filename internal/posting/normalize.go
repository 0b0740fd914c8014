package posting

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctRegexp matches the punctuation and separator characters that are
// folded to spaces during normalization.
var punctRegexp = regexp.MustCompile(`["'«»()\[\]{}.,;:!?/\\|—–\-+_=]+`)

// whitespaceRegexp matches one or more whitespace characters.
var whitespaceRegexp = regexp.MustCompile(`\s+`)

// Normalize canonicalizes free-text input:
// 1. NFC-normalize so composed and decomposed «ё» agree
// 2. Lowercase
// 3. Fold «ё» to «е»
// 4. Collapse punctuation/separator runs to single spaces
// 5. Collapse whitespace and trim
//
// The same function backs catalog free-text filtering and fuzzy-match
// query normalization, so both paths agree on what equal text means.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ё", "е")
	s = punctRegexp.ReplaceAllString(s, " ")
	s = whitespaceRegexp.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
