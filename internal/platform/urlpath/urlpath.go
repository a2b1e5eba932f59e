// Package urlpath joins base URLs and relative paths.
package urlpath

import "strings"

// Join concatenates base and rel with exactly one "/" between them, whatever
// slashes either side already carries.
func Join(base, rel string) string {
	switch {
	case strings.HasSuffix(base, "/") && strings.HasPrefix(rel, "/"):
		return base + rel[1:]
	case strings.HasSuffix(base, "/") || strings.HasPrefix(rel, "/"):
		return base + rel
	default:
		return base + "/" + rel
	}
}
