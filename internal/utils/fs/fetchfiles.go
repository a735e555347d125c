// Package fs finds the image files named on the command line.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"pngopt/internal/domain/consts"
	"pngopt/internal/domain/errconsts"
	"pngopt/internal/utils/logging"
)

// CollectFiles returns the files to process.
//
// Explicit paths are kept as given. pattern has the form "dir/glob1|glob2";
// only supported image files match. A pattern naming only a directory
// ("gfx/") matches every supported image under it, recursively.
func CollectFiles(explicit []string, pattern string, recursive bool) ([]string, error) {
	files := append([]string(nil), explicit...)
	if pattern == "" {
		return files, nil
	}

	dir, name := filepath.Split(pattern)
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = consts.SupportedExtGlob
		recursive = true
	}
	globs := splitGlobs(name)
	supported := splitGlobs(consts.SupportedExtGlob)

	// Reject malformed globs up front
	for _, g := range globs {
		if _, err := filepath.Match(g, ""); err != nil {
			return nil, fmt.Errorf(errconsts.FilePatternBad, pattern, err)
		}
	}

	logging.D(2, "Collecting files in %q matching %v (recursive: %t)", dir, globs, recursive)

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && HasMatch(e.Name(), globs) && HasMatch(e.Name(), supported) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
		return files, nil
	}

	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && HasMatch(d.Name(), globs) && HasMatch(d.Name(), supported) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func splitGlobs(s string) []string {
	var out []string
	for _, g := range strings.Split(s, "|") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
