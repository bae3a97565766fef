// Package config holds the resolved run configuration and its validation
// rules. The CLI layer fills a Config once, validates it before any I/O,
// and hands it to the runner unchanged.
package config

import (
	"fmt"

	"lsort/internal/order"
)

// Config is the full option surface of a run.
type Config struct {
	// Ordering axes.
	Reverse    bool
	IgnoreCase bool
	Unique     bool
	Kind       order.Kind

	// Line acceptance.
	Trim      bool
	SkipBlank bool

	// Text encoding: UTF-16 instead of UTF-8 for input and output.
	Wide bool

	// Shuffle replaces ordering with one random permutation.
	Shuffle bool

	// Output and failure policy.
	ForceFlush bool
	KeepGoing  bool

	// Reporting (stderr only, never touches the output stream).
	Verbose bool
	Timings bool
}

// InvalidConfigError reports two options that cannot be combined.
type InvalidConfigError struct {
	Option   string
	Conflict string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s cannot be combined with %s", e.Option, e.Conflict)
}

// Validate checks the mutual-exclusion rules. It must be called once,
// before any source is opened; a non-nil result means the run never starts.
func (c Config) Validate() error {
	if c.Shuffle {
		switch {
		case c.Reverse:
			return &InvalidConfigError{Option: "shuffle", Conflict: "reverse"}
		case c.IgnoreCase:
			return &InvalidConfigError{Option: "shuffle", Conflict: "ignore-case"}
		case c.Unique:
			return &InvalidConfigError{Option: "shuffle", Conflict: "unique"}
		case c.Kind != order.Lexical:
			return &InvalidConfigError{Option: "shuffle", Conflict: c.Kind.String() + " ordering"}
		}
	}
	if c.Kind == order.Logical && c.IgnoreCase {
		// The logical collator folds case itself.
		return &InvalidConfigError{Option: "logical ordering", Conflict: "ignore-case"}
	}
	return nil
}
