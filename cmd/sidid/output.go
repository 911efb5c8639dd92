package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/c64music/sidid/internal/hvsc"
	"github.com/c64music/sidid/pkg/core/driver"
	"github.com/c64music/sidid/pkg/core/signature"
)

const defaultFilenameColWidth = 56

type matchedFile struct {
	filename string
	matches  []signature.Match
}

// printResults renders one line per matched signature per file, in
// input order, following main.rs's column layout.
func printResults(cfg *config, files []string, results []driver.Result, signatures signature.Set) {
	var kept []matchedFile
	for _, r := range results {
		empty := len(r.Matches) == 0
		show := (empty && (cfg.onlyListUnidentified || cfg.listUnidentified)) ||
			(!empty && !cfg.onlyListUnidentified)
		if show {
			kept = append(kept, matchedFile{filename: r.Path, matches: r.Matches})
		}
	}

	stripLen := filenameStripLength(cfg.basePath, files)
	width := filenameWidth(cfg.truncateFilenames, kept, stripLen)

	identifiedFiles := 0
	identifiedPlayers := 0

	for _, fm := range kept {
		name := fm.filename
		if len(name) > stripLen {
			name = name[stripLen:]
		}
		name = strings.ReplaceAll(name, "\\", "/")
		if cfg.truncateFilenames && len(name) > width {
			name = name[:width]
		}

		if len(fm.matches) == 0 {
			fmt.Printf("%-*s >> UNIDENTIFIED <<\n", width, name)
			continue
		}

		identifiedFiles++
		identifiedPlayers += len(fm.matches)

		for i, m := range fm.matches {
			label := m.Name
			if cfg.displayHexOffset {
				offsets := make([]string, len(m.Offsets))
				for j, o := range m.Offsets {
					offsets[j] = fmt.Sprintf("$%04X", o)
				}
				label = m.Name + " " + strings.Join(offsets, " ")
			}
			if i == 0 {
				fmt.Printf("%-*s %s\n", width, name, label)
			} else {
				fmt.Printf("%-*s %s\n", width, "", label)
			}
		}
	}

	if identifiedFiles > 0 {
		printOccurrenceStatistics(signatures, kept)
	}

	unidentified := len(results) - identifiedFiles
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("Identified players    %9d\n", identifiedPlayers)
	fmt.Printf("Identified files      %9d\n", identifiedFiles)
	fmt.Printf("Unidentified files    %9d\n", unidentified)
	fmt.Printf("Total files processed %9d\n", len(results))
}

func filenameStripLength(basePath string, files []string) int {
	if len(files) > 0 {
		if root, ok := hvsc.FindRoot(files[0]); ok {
			return len(root) + 1
		}
	}
	if basePath == "." {
		return 2
	}
	return 0
}

func filenameWidth(truncate bool, kept []matchedFile, stripLen int) int {
	if !truncate {
		longest := 0
		for _, k := range kept {
			if l := len(k.filename); l > longest {
				longest = l
			}
		}
		if longest > 0 {
			w := longest - stripLen
			if w < defaultFilenameColWidth {
				w = defaultFilenameColWidth
			}
			return w
		}
	}
	return defaultFilenameColWidth
}

// printOccurrenceStatistics prints one line per distinct run of
// consecutively same-named signatures that matched at least once,
// in config-file order, mirroring main.rs's output_occurrence_statistics.
func printOccurrenceStatistics(signatures signature.Set, kept []matchedFile) {
	fmt.Println()
	fmt.Println("Detected players          Count")
	fmt.Println("-------------------------------")

	occurrence := map[string]int{}
	for _, fm := range kept {
		for _, m := range fm.matches {
			occurrence[m.Name]++
		}
	}

	previousName := ""
	for _, sig := range signatures {
		if sig.Name == previousName {
			continue
		}
		previousName = sig.Name
		if count, ok := occurrence[sig.Name]; ok {
			fmt.Printf("%-24s %6d\n", sig.Name, count)
		}
	}
}

func printElapsedTime(start time.Time) {
	elapsed := time.Since(start)
	ms := elapsed.Milliseconds()
	totalSeconds := ms / 1000
	seconds := totalSeconds % 60
	minutes := totalSeconds / 60 % 60
	hours := totalSeconds / 60 / 60
	fmt.Fprintf(os.Stderr, "\nTotal time: %02d:%02d:%02d (+%d milliseconds)\n", hours, minutes, seconds, ms%1000)
}
