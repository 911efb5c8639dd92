// Package globwalk resolves a glob pattern under a base directory into
// a sorted list of file paths. Matching is always case-insensitive,
// mirroring how SID filenames and extensions appear in mixed case
// across the HVSC.
package globwalk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Walk returns every file under basePath whose name matches pattern,
// sorted by filename. When recursive is false, only basePath's
// immediate children are considered; when true, the whole subtree is.
func Walk(basePath, pattern string, recursive bool) ([]string, error) {
	lowerPattern := strings.ToLower(pattern)

	var matches []string
	fsys := os.DirFS(basePath)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		name := filepath.Base(path)
		ok, matchErr := doublestar.Match(lowerPattern, strings.ToLower(name))
		if matchErr != nil {
			return matchErr
		}
		if ok {
			matches = append(matches, filepath.Join(basePath, path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return filepath.Base(matches[i]) < filepath.Base(matches[j])
	})
	return matches, nil
}
