// Package runner wires the pipeline together: it builds the comparison
// policy and the store from the configuration, feeds every source through
// the line reader in order, permutes once in shuffle mode, and drains the
// result into the emitter.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"lsort/internal/config"
	"lsort/internal/observ"
	"lsort/internal/order"
	"lsort/internal/rng"
	"lsort/internal/store"
	"lsort/internal/textio"
)

// StdinName is the pseudo source name for the default input stream.
const StdinName = "-"

// SourceCount records how many lines one source contributed.
type SourceCount struct {
	Name     string
	Accepted int
}

// Summary describes a finished run for stderr reporting.
type Summary struct {
	Sources []SourceCount
	Emitted int
	Timings observ.Report
}

// Run executes one full pipeline pass. Sources are processed strictly in
// the order given; an empty list means the default input stream. The
// returned error joins every failure of the run (open failures, a write
// failure); whatever was ingested before a tolerated failure is still
// emitted.
func Run(cfg config.Config, sources []string, stdin io.Reader, stdout io.Writer, random *rng.Source) (Summary, error) {
	var sum Summary
	if err := cfg.Validate(); err != nil {
		return sum, err
	}

	st := newStore(cfg)
	timer := observ.NewTimer()
	var failures []error

	if len(sources) == 0 {
		sources = []string{StdinName}
	}

	stop := timer.Phase("read")
	for _, name := range sources {
		before := st.Len()
		err := readSource(st, cfg, name, stdin)
		sum.Sources = append(sum.Sources, SourceCount{Name: name, Accepted: st.Len() - before})
		if err != nil {
			failures = append(failures, err)
			if !cfg.KeepGoing {
				break
			}
		}
	}
	stop()

	if cfg.Shuffle {
		stop := timer.Phase("permute")
		st.Permute(random)
		stop()
	}

	stop = timer.Phase("emit")
	emitted, err := emit(st, cfg, stdout)
	if err != nil {
		failures = append(failures, err)
	}
	stop()
	sum.Emitted = emitted
	sum.Timings = timer.Report()

	return sum, errors.Join(failures...)
}

func newStore(cfg config.Config) *store.Store {
	if cfg.Shuffle {
		return store.NewSequence()
	}
	policy := order.New(cfg.Kind, cfg.IgnoreCase, cfg.Reverse)
	return store.NewOrdered(policy, cfg.Unique)
}

func readSource(st *store.Store, cfg config.Config, name string, stdin io.Reader) error {
	var src io.Reader
	if name == StdinName {
		src = stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return &OpenError{Name: name, Err: err}
		}
		defer file.Close()
		src = file
	}

	reader := textio.NewReader(src, cfg.Wide, cfg.Trim, cfg.SkipBlank)
	if err := reader.ReadAll(st.Accept); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

func emit(st *store.Store, cfg config.Config, stdout io.Writer) (int, error) {
	em := textio.NewEmitter(stdout, cfg.Wide, cfg.ForceFlush)
	lines := st.Drain()
	for i, line := range lines {
		if err := em.Emit(line); err != nil {
			return i, &WriteError{Err: err}
		}
	}
	if err := em.Close(); err != nil {
		return len(lines), &WriteError{Err: err}
	}
	return len(lines), nil
}
