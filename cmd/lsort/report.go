package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"lsort/internal/runner"
)

// printSummary writes the per-source line counts to stderr. Source names
// are truncated to the terminal width so a deep path cannot wrap the table.
func printSummary(out *os.File, sum runner.Summary) {
	width := 80
	if isTerminal(out) {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	nameWidth := width - 12
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, src := range sum.Sources {
		name := src.Name
		if name == runner.StdinName {
			name = "(stdin)"
		}
		fmt.Fprintf(out, "%s %7d\n", fitName(name, nameWidth), src.Accepted)
	}
	fmt.Fprintf(out, "%s %7d\n", fitName("emitted", nameWidth), sum.Emitted)
}

func fitName(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return runewidth.FillRight(value, width)
	}
	return runewidth.Truncate(value, width, "...")
}
