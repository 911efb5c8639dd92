// Package locate resolves a configuration or info file path, falling
// back to the directory the running executable lives in.
package locate

import (
	"fmt"
	"os"
	"path/filepath"
)

// WithFallback returns filename unchanged if it exists relative to the
// current directory, or filename joined to the directory of the running
// executable if that copy exists instead. It errors when neither
// location has the file.
func WithFallback(filename string) (string, error) {
	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not determine executable location: %w", err)
	}
	fallback := filepath.Join(filepath.Dir(exe), filename)
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}

	return "", fmt.Errorf("file doesn't exist: %s", filename)
}

// ConfigPath resolves the config file path: configFile if the -f flag
// was given (error if its value is empty), or defaultName otherwise,
// both subject to the executable-directory fallback.
func ConfigPath(configFile string, flagGiven bool, defaultName string) (string, error) {
	if !flagGiven {
		return WithFallback(defaultName)
	}
	if configFile == "" {
		return "", fmt.Errorf("no filename provided for config file")
	}
	return WithFallback(configFile)
}

// InfoPath derives the info file path from the resolved config path by
// swapping its extension for .nfo, then applies the same fallback.
func InfoPath(configPath string) (string, error) {
	ext := filepath.Ext(configPath)
	infoPath := configPath[:len(configPath)-len(ext)] + ".nfo"
	return WithFallback(infoPath)
}
