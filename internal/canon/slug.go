package canon

import (
	"regexp"
	"strconv"
	"strings"
)

var rePunct = regexp.MustCompile(`[^A-Za-z0-9\s]`)

// Slug turns a display name into a lowercase, hyphen separated token
// suitable for element identifiers and anchors. Punctuation is dropped,
// so "Allan's Place" becomes "allans-place".
func Slug(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	s = rePunct.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
	return strings.Join(strings.Fields(s), "-")
}

// Anchor is the element id used for a property card. The id keeps it
// unique when two properties share a name.
func Anchor(id int, name string) string {
	base := "property-" + strconv.Itoa(id)
	if slug := Slug(name); slug != "" {
		return base + "-" + slug
	}
	return base
}
