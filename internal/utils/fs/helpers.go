package fs

import (
	"path/filepath"
	"strings"
)

// HasMatch reports whether fileName matches any glob, ignoring case.
func HasMatch(fileName string, globs []string) bool {
	lower := strings.ToLower(fileName)
	for _, g := range globs {
		if ok, _ := filepath.Match(strings.ToLower(g), lower); ok {
			return true
		}
	}

	// No matches
	return false
}
