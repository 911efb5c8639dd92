// Package hvsc locates the root of a High Voltage SID Collection tree
// from any path inside or near it.
package hvsc

import (
	"os"
	"path/filepath"
)

// FindRoot walks up from filename looking for the marker file
// DOCUMENTS/STIL.txt that identifies an HVSC root, trying three
// layouts in order: STIL.txt directly beside the starting directory
// (whose parent is then the root), a C64Music/DOCUMENTS/STIL.txt
// layout under the starting directory, and finally an ancestor walk
// looking for DOCUMENTS/STIL.txt. It returns "", false when none are
// found.
func FindRoot(filename string) (string, bool) {
	dir := filename
	if info, err := os.Stat(filename); err == nil && !info.IsDir() {
		dir = filepath.Dir(filename)
	}

	if exists(filepath.Join(dir, "STIL.txt")) {
		return filepath.Dir(dir), true
	}

	c64Music := filepath.Join(dir, "C64Music")
	if exists(filepath.Join(c64Music, "DOCUMENTS", "STIL.txt")) {
		return c64Music, true
	}

	for {
		if exists(filepath.Join(dir, "DOCUMENTS", "STIL.txt")) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
