package slugutil

import (
	"regexp"
	"strings"
)

var strippedCharsRegex = regexp.MustCompile(`[*+~.()/'"?!:@]`)
var separatorRunRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a display name into the URL-safe identifier the rendered site
// has always used. Existing hyperlinks depend on this exact format, so the
// rules are frozen: lowercase, drop a fixed punctuation set, collapse every
// remaining run of non-alphanumerics into a single hyphen.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strippedCharsRegex.ReplaceAllString(s, "")
	s = separatorRunRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
