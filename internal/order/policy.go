// Package order implements the comparison policies that key the line store:
// lexical, natural and logical orderings, each optionally case-insensitive
// and/or reversed. Every policy is a strict weak ordering, so it can back
// both the unique and the duplicate-preserving store disciplines.
package order

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind selects the ordering family for a run.
type Kind int

const (
	// Lexical compares lines by raw character code.
	Lexical Kind = iota
	// Natural compares embedded digit runs by numeric magnitude.
	Natural
	// Logical is the platform "file-manager" ordering: a Unicode collation
	// with numeric ordering, as offered by later revisions of the tool.
	Logical
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Natural:
		return "natural"
	case Logical:
		return "logical"
	default:
		return "unknown"
	}
}

// Policy reports whether a precedes b under the active ordering.
type Policy func(a, b string) bool

// New builds the policy for the given kind and axes. The result is pure:
// it depends on nothing but its two arguments for the lifetime of a run.
func New(kind Kind, ignoreCase, reverse bool) Policy {
	cmp := compareFunc(kind, ignoreCase)
	if reverse {
		return func(a, b string) bool { return cmp(a, b) > 0 }
	}
	return func(a, b string) bool { return cmp(a, b) < 0 }
}

// Equiv reports whether a and b fall into the same equivalence class of p.
func Equiv(p Policy, a, b string) bool {
	return !p(a, b) && !p(b, a)
}

func compareFunc(kind Kind, ignoreCase bool) func(a, b string) int {
	switch kind {
	case Natural:
		if ignoreCase {
			return func(a, b string) int { return naturalCompare(a, b, true) }
		}
		return func(a, b string) int { return naturalCompare(a, b, false) }
	case Logical:
		// The collator folds case on its own; config validation rejects
		// the ignore-case flag for this kind.
		c := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
		return c.CompareString
	default:
		if ignoreCase {
			return foldCompare
		}
		return strings.Compare
	}
}

// foldCompare is a code-point comparison under simple case folding,
// the Go rendition of a classic caseless string compare.
func foldCompare(a, b string) int {
	for _, ra := range a {
		if len(b) == 0 {
			return 1
		}
		rb, size := decodeRune(b)
		b = b[size:]
		ra, rb = foldRune(ra), foldRune(rb)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
	if len(b) > 0 {
		return -1
	}
	return 0
}
