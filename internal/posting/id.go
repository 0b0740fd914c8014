package posting

import (
	"fmt"
	"regexp"
	"strings"
)

// slugRegexp matches runs of characters that are not allowed in an ID.
var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// maxSlugLen bounds the base slug before any uniqueness suffix.
const maxSlugLen = 48

// SlugID derives an identifier base from free text: lowercased, non
// [a-z0-9] runs replaced with "-", trimmed, capped at 48 chars. Falls
// back to "post" when nothing survives.
func SlugID(seed string) string {
	s := strings.ToLower(seed)
	s = slugRegexp.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
		s = strings.TrimRight(s, "-")
	}
	if s == "" {
		return "post"
	}
	return s
}

// UniqueID appends a numeric suffix ("-2", "-3", ...) to base until taken
// reports the candidate is free.
func UniqueID(base string, taken func(string) bool) string {
	id := base
	for k := 2; taken(id); k++ {
		id = fmt.Sprintf("%s-%d", base, k)
	}
	return id
}
