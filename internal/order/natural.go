package order

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// naturalCompare orders two strings by splitting them into maximal digit and
// non-digit runs. Digit runs compare by numeric magnitude; equal magnitudes
// written with a different number of leading zeros break the tie by run
// length, shorter first, so the ordering stays total over distinct strings.
// Non-digit text compares by code point, simple-folded when fold is set.
func naturalCompare(a, b string, fold bool) int {
	for {
		switch {
		case a == "" && b == "":
			return 0
		case a == "":
			return -1
		case b == "":
			return 1
		}

		ra, sa := decodeRune(a)
		rb, sb := decodeRune(b)

		if isDigit(ra) && isDigit(rb) {
			cmp, restA, restB := compareDigitRuns(a, b)
			if cmp != 0 {
				return cmp
			}
			a, b = restA, restB
			continue
		}

		if fold {
			ra, rb = foldRune(ra), foldRune(rb)
		}
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[sa:], b[sb:]
	}
}

// compareDigitRuns consumes the leading digit run of both strings and
// compares the runs numerically. It returns the remainders only when the
// runs were equivalent.
func compareDigitRuns(a, b string) (cmp int, restA, restB string) {
	runA, restA := splitDigitRun(a)
	runB, restB := splitDigitRun(b)

	sigA := strings.TrimLeft(runA, "0")
	sigB := strings.TrimLeft(runB, "0")

	switch {
	case len(sigA) != len(sigB):
		// More significant digits means larger magnitude.
		if len(sigA) < len(sigB) {
			return -1, "", ""
		}
		return 1, "", ""
	case sigA != sigB:
		// Same significant length: digit-by-digit order equals numeric order.
		if sigA < sigB {
			return -1, "", ""
		}
		return 1, "", ""
	case len(runA) != len(runB):
		// Equal magnitude, e.g. "007" vs "7": shorter run precedes.
		if len(runA) < len(runB) {
			return -1, "", ""
		}
		return 1, "", ""
	}
	return 0, restA, restB
}

func splitDigitRun(s string) (run, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
