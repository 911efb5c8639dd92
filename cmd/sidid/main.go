// Command sidid identifies the C64 music player routine embedded in
// SID/PRG music files by matching their payload bytes against a
// configurable signature database.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/c64music/sidid/internal/globwalk"
	"github.com/c64music/sidid/internal/locate"
	"github.com/c64music/sidid/internal/textfile"
	"github.com/c64music/sidid/pkg/core/config"
	"github.com/c64music/sidid/pkg/core/driver"
	"github.com/c64music/sidid/pkg/core/signature"
)

func main() {
	if len(os.Args) <= 1 {
		printUsage()
		return
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	switch {
	case cfg.verifySignatures:
		return runVerify(cfg)
	case cfg.showPlayerInfo:
		return runPlayerInfo(cfg)
	case cfg.convertFormat != "":
		return runConvert(cfg)
	default:
		return runScan(cfg)
	}
}

func resolveConfigPath(cfg *config) (string, error) {
	return locate.ConfigPath(cfg.configFile, cfg.configFileGiven, config.DefaultConfigFileName)
}

func loadSignatures(cfg *config) (signature.Set, string, error) {
	path, err := resolveConfigPath(cfg)
	if err != nil {
		return nil, "", err
	}
	fmt.Printf("Using config file: %s\n\n", path)

	lines, err := textfile.ReadLines(path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading file: %s", path)
	}
	signatures, err := config.ReadConfigLines(lines, cfg.playerName)
	if err != nil {
		return nil, "", err
	}
	if len(signatures) == 0 {
		if cfg.playerName != "" {
			return nil, "", fmt.Errorf("no signature found with name: %s", cfg.playerName)
		}
		return nil, "", fmt.Errorf("no signature defined")
	}
	return signatures, path, nil
}

func runScan(cfg *config) error {
	if cfg.scanHVSC {
		fmt.Fprintf(os.Stderr, "Scanning HVSC location: %s\n", cfg.basePath)
	}
	fmt.Fprintln(os.Stderr, "Processing...")

	start := time.Now()

	signatures, _, err := loadSignatures(cfg)
	if err != nil {
		return err
	}

	if cfg.filename == "" {
		fmt.Fprintln(os.Stderr, "No file(s) found.")
		return nil
	}
	files, err := globwalk.Walk(cfg.basePath, cfg.filename, cfg.recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No file(s) found.")
		return nil
	}

	results, err := driver.Scan(files, signatures, cfg.scanForMultiple, cfg.threads)
	if err != nil {
		return err
	}

	printResults(cfg, files, results, signatures)
	printElapsedTime(start)
	return nil
}

func runVerify(cfg *config) error {
	configPath, err := resolveConfigPath(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Verify config file: %s\n\n", configPath)

	configLines, err := textfile.ReadLines(configPath)
	if err != nil {
		return fmt.Errorf("error reading file: %s", configPath)
	}
	signatures, err := config.ReadConfigLines(configLines, "")
	if err != nil {
		return err
	}

	issuesFound := false
	for _, issue := range config.ValidateConfigLines(configLines) {
		fmt.Fprintln(os.Stderr, issue)
		issuesFound = true
	}

	infoPath, err := locate.InfoPath(configPath)
	if err == nil {
		fmt.Printf("\nVerify info file: %s\n\n", infoPath)
		infoLines, err := textfile.ReadLines(infoPath)
		if err != nil {
			return fmt.Errorf("error reading file: %s", infoPath)
		}
		for _, issue := range config.ValidateInfoLines(infoLines, signatures) {
			fmt.Fprintln(os.Stderr, issue)
			issuesFound = true
		}
	}

	if issuesFound {
		fmt.Fprintln(os.Stderr, "\nIssues found.")
	} else {
		fmt.Println("\nNo issues found.")
	}
	return nil
}

func runPlayerInfo(cfg *config) error {
	configPath, err := resolveConfigPath(cfg)
	if err != nil {
		return err
	}
	infoPath, err := locate.InfoPath(configPath)
	if err != nil {
		return err
	}
	fmt.Printf("Using info file: %s\n\n", infoPath)

	lines, err := textfile.ReadLines(infoPath)
	if err != nil {
		return fmt.Errorf("error reading file: %s", infoPath)
	}
	blocks, err := config.ReadInfoLines(lines)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return fmt.Errorf("no info sections defined")
	}

	block, ok := config.FindInfo(blocks, cfg.playerName)
	if !ok {
		return fmt.Errorf("no info found for player: %s", cfg.playerName)
	}
	for _, line := range block.Lines {
		fmt.Println(line)
	}
	return nil
}

func runConvert(cfg *config) error {
	if err := verifyQuiet(cfg); err != nil {
		return fmt.Errorf("issues found in config file")
	}

	newFormat := cfg.convertFormat == "n"
	form := "old"
	if newFormat {
		form = "new"
	}
	fmt.Fprintf(os.Stderr, "\nWriting signatures in %s format.\n", form)

	configPath, err := resolveConfigPath(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Writing config file to: %s\n", configPath)

	lines, err := textfile.ReadLines(configPath)
	if err != nil {
		return fmt.Errorf("error reading file: %s", configPath)
	}
	signatures, err := config.ReadConfigLines(lines, "")
	if err != nil {
		return err
	}

	output := config.ConvertToText(signatures, newFormat)
	if err := os.WriteFile(configPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Done!")
	return nil
}

// verifyQuiet reports whether the config file has any validation
// issues, without printing them; used to gate -wn/-wo.
func verifyQuiet(cfg *config) error {
	configPath, err := resolveConfigPath(cfg)
	if err != nil {
		return err
	}
	lines, err := textfile.ReadLines(configPath)
	if err != nil {
		return fmt.Errorf("error reading file: %s", configPath)
	}
	if issues := config.ValidateConfigLines(lines); len(issues) > 0 {
		return fmt.Errorf("%d issue(s) found", len(issues))
	}
	return nil
}

func printUsage() {
	fmt.Println("sidid [options] <glob_pattern>")
	fmt.Println()
	fmt.Println("  -cN       set the maximum CPU threads to be used [Default is all]")
	fmt.Println("  -fPATH    set the config file path")
	fmt.Println("  -h        scan the HVSC collection (uses the HVSC environment variable)")
	fmt.Println("  -m        report all matching signatures, not just the first")
	fmt.Println("  -n        show info for the player given with -p")
	fmt.Println("  -o        list only unidentified files")
	fmt.Println("  -pNAME    restrict scanning to one signature name")
	fmt.Println("  -s        recurse into subdirectories")
	fmt.Println("  -t        truncate displayed filenames")
	fmt.Println("  -u        also list unidentified files")
	fmt.Println("  -v        validate config and info files")
	fmt.Println("  -wn / -wo convert config file to new/old format")
	fmt.Println("  -x        display match offsets in hex")
}
