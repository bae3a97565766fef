package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultsFileName is looked up in the working directory and its ancestors.
// It presets any boolean option of the root command; explicit flags win.
const defaultsFileName = "lsort.toml"

type defaultsFile struct {
	Defaults map[string]bool `toml:"defaults"`
}

var knownOptions = map[string]bool{
	"reverse":     true,
	"ignore-case": true,
	"unique":      true,
	"natural":     true,
	"logical":     true,
	"trim":        true,
	"skip-blank":  true,
	"utf16":       true,
	"shuffle":     true,
	"force-flush": true,
	"keep-going":  true,
	"verbose":     true,
	"timings":     true,
}

func findDefaultsFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, defaultsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadDefaults returns the option presets from the nearest lsort.toml, or an
// empty map when none exists. An unknown option name in the file is an
// invalid configuration, reported before any I/O begins.
func loadDefaults(startDir string) (map[string]bool, error) {
	path, ok, err := findDefaultsFile(startDir)
	if err != nil || !ok {
		return map[string]bool{}, err
	}
	var file defaultsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for name := range file.Defaults {
		if !knownOptions[name] {
			return nil, fmt.Errorf("%s: unrecognized option %q", path, name)
		}
	}
	if file.Defaults == nil {
		return map[string]bool{}, nil
	}
	return file.Defaults, nil
}
