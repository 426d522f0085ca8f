package derpi

import "strings"

// Slugify escapes a free-text name the way Derpibooru does before it is
// substituted into a slug-keyed path. Spaces pass through untouched; the
// transport percent-encodes them.
//
// Only the first occurrence of each special character is replaced. That
// matches the reference behavior this client is compatible with, even though
// names carrying a repeated special character end up half-escaped.
func Slugify(name string) string {
	name = strings.Replace(name, "-", "-dash-", 1)
	name = strings.Replace(name, "/", "-fwslash-", 1)
	name = strings.Replace(name, "\\", "-bwslash-", 1)
	name = strings.Replace(name, ":", "-colon-", 1)
	name = strings.Replace(name, ".", "-dot-", 1)
	name = strings.Replace(name, "+", "-plus", 1)
	return name
}
