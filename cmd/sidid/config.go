package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// config holds every CLI setting, parsed from single-letter flags
// joined to their argument without whitespace (-c4, -fsidid.cfg).
type config struct {
	threads              int
	displayHexOffset     bool
	listUnidentified     bool
	onlyListUnidentified bool
	recursive            bool
	scanForMultiple      bool
	scanHVSC             bool
	showPlayerInfo       bool
	truncateFilenames    bool
	verifySignatures     bool
	playerName           string
	playerNameGiven      bool
	configFile           string
	configFileGiven      bool
	basePath             string
	filename             string
	convertFormat        string
}

// parseArgs builds a config from args (excluding the program name),
// mirroring config.rs's single pass over env::args().
func parseArgs(args []string) (*config, error) {
	maxThreads := runtime.NumCPU()
	cfg := &config{threads: maxThreads}

	for _, arg := range args {
		if len(arg) <= 1 || arg[0] != '-' {
			continue
		}
		letter := arg[1:2]
		value := arg[2:]
		switch letter {
		case "c":
			n, err := parsePositiveInt("Max threads", value)
			if err != nil {
				return nil, err
			}
			cfg.threads = n
		case "f":
			cfg.configFile = value
			cfg.configFileGiven = true
		case "h":
			cfg.scanHVSC = true
		case "m":
			cfg.scanForMultiple = true
		case "n":
			cfg.showPlayerInfo = true
		case "o":
			cfg.onlyListUnidentified = true
		case "p":
			cfg.playerName = value
			cfg.playerNameGiven = true
		case "t":
			cfg.truncateFilenames = true
		case "s":
			cfg.recursive = true
		case "u":
			cfg.listUnidentified = true
		case "v":
			cfg.verifySignatures = true
		case "w":
			if value == "" {
				return nil, fmt.Errorf("output format should be specified with -wo for old format or -wn for new format")
			}
			cfg.convertFormat = value
		case "x":
			cfg.displayHexOffset = true
		default:
			return nil, fmt.Errorf("unknown option: %s", arg)
		}
	}

	if cfg.threads > maxThreads {
		cfg.threads = maxThreads
	}

	cfg.basePath, cfg.filename = filenameAndBasePath(args)

	if cfg.scanHVSC {
		if err := applyHVSCConfig(cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.configFileGiven {
		if env, ok := os.LookupEnv("SIDIDCFG"); ok {
			cfg.configFile, cfg.configFileGiven = env, true
		}
	}

	if cfg.showPlayerInfo {
		if cfg.playerName == "" {
			return nil, fmt.Errorf("player info can only be used when -p option is provided with a player name")
		}
	} else if cfg.playerNameGiven && cfg.playerName == "" {
		return nil, fmt.Errorf("player name cannot be empty")
	}

	if err := validateFileFormat(cfg.convertFormat); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parsePositiveInt(argName, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", argName)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be higher than 0", argName)
	}
	return n, nil
}

func validateFileFormat(format string) error {
	if format == "" {
		return nil
	}
	if format != "o" && format != "n" {
		return fmt.Errorf("output format should be specified with -wo for old format or -wn for new format")
	}
	return nil
}

func applyHVSCConfig(cfg *config) error {
	root, ok := os.LookupEnv("HVSC")
	if !ok {
		return fmt.Errorf("HVSC environment variable not found")
	}
	cfg.recursive = true
	cfg.basePath = root
	if cfg.filename == "" {
		cfg.filename = "*.sid"
	}
	return nil
}

// filenameAndBasePath takes the last argument and splits it
// into a directory and a glob pattern, the way the Rust CLI's
// split_file_path does. An argument list ending in a flag (or empty)
// yields ("", "").
func filenameAndBasePath(args []string) (string, string) {
	if len(args) == 0 {
		return "", ""
	}
	last := strings.TrimSpace(args[len(args)-1])
	if strings.HasPrefix(last, "-") {
		return "", ""
	}
	return splitFilePath(last)
}

func splitFilePath(filename string) (basePath, pattern string) {
	unix := strings.ReplaceAll(filename, "\\", "/")
	index := strings.LastIndex(unix, "/")
	if index < 0 {
		return ".", filename
	}
	switch {
	case index == 0:
		return filename[:1], filename[1:]
	case index > 1 && strings.HasPrefix(unix, "./"):
		return filename[2:index], filename[index+1:]
	default:
		return filename[:index], filename[index+1:]
	}
}
