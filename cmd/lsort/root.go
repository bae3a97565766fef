package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lsort/internal/config"
	"lsort/internal/order"
	"lsort/internal/rng"
	"lsort/internal/runner"
)

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(f *pflag.FlagSet) {
	f.Bool("reverse", false, "sort the lines descending, instead of ascending")
	f.Bool("ignore-case", false, "ignore the character casing when sorting the lines")
	f.Bool("unique", false, "discard any duplicate lines from the result set")
	f.Bool("natural", false, "sort the lines using 'natural' string order")
	f.Bool("logical", false, "sort the lines using the platform's logical file-name order")
	f.Bool("trim", false, "remove leading/trailing whitespace characters")
	f.Bool("skip-blank", false, "discard any lines consisting solely of whitespaces")
	f.Bool("utf16", false, "read and write UTF-16 text instead of UTF-8")
	f.Bool("shuffle", false, "randomly permute the lines instead of sorting them")
	f.Bool("force-flush", false, "force flush of stdout after each line was printed")
	f.Bool("keep-going", false, "do not abort, if processing an input file failed")
	f.Bool("verbose", false, "print a per-source summary to stderr")
	f.Bool("timings", false, "print phase timings to stderr")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	sum, runErr := runner.Run(cfg, args, os.Stdin, os.Stdout, rng.New())

	if cfg.Verbose {
		printSummary(os.Stderr, sum)
	}
	if cfg.Timings {
		fmt.Fprint(os.Stderr, sum.Timings.Summary())
	}
	return runErr
}

// resolveConfig merges explicit flags over lsort.toml defaults over built-in
// defaults, then maps the result onto the run configuration. Validation of
// option combinations happens in the runner, before any I/O.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	defaults, err := loadDefaults(".")
	if err != nil {
		return config.Config{}, err
	}

	get := func(name string) (bool, error) {
		if !flags.Changed(name) {
			if v, ok := defaults[name]; ok {
				return v, nil
			}
		}
		return flags.GetBool(name)
	}

	var cfg config.Config
	fields := []struct {
		name string
		dst  *bool
	}{
		{"reverse", &cfg.Reverse},
		{"ignore-case", &cfg.IgnoreCase},
		{"unique", &cfg.Unique},
		{"trim", &cfg.Trim},
		{"skip-blank", &cfg.SkipBlank},
		{"utf16", &cfg.Wide},
		{"shuffle", &cfg.Shuffle},
		{"force-flush", &cfg.ForceFlush},
		{"keep-going", &cfg.KeepGoing},
		{"verbose", &cfg.Verbose},
		{"timings", &cfg.Timings},
	}
	for _, field := range fields {
		v, err := get(field.name)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get %s flag: %w", field.name, err)
		}
		*field.dst = v
	}

	natural, err := get("natural")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get natural flag: %w", err)
	}
	logical, err := get("logical")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get logical flag: %w", err)
	}
	switch {
	case natural && logical:
		return config.Config{}, &config.InvalidConfigError{Option: "natural", Conflict: "logical"}
	case natural:
		cfg.Kind = order.Natural
	case logical:
		cfg.Kind = order.Logical
	default:
		cfg.Kind = order.Lexical
	}

	return cfg, nil
}
