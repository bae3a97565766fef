// Package observ tracks how long the phases of a run take. The runner
// records read, permute and emit; the CLI prints the report under
// --timings. Nothing here ever writes to the output stream.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Timer collects phase durations in the order they were started.
type Timer struct {
	phases []phase
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
}

// NewTimer returns an empty timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]phase, 0, 4)}
}

// Phase starts a named phase and returns the function that ends it.
func (t *Timer) Phase(name string) func() {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	idx := len(t.phases) - 1
	return func() {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
	}
}

// PhaseReport is one finished phase in milliseconds.
type PhaseReport struct {
	Name       string
	DurationMS float64
}

// Report is the aggregate of all finished phases.
type Report struct {
	TotalMS float64
	Phases  []PhaseReport
}

// Report returns the recorded phases and their total.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.dur
		out.Phases[i] = PhaseReport{Name: p.name, DurationMS: toMillis(p.dur)}
	}
	out.TotalMS = toMillis(total)
	return out
}

// Summary renders the report as a human-readable block.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-10s %7.2f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(&b, "  %-10s %7.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
