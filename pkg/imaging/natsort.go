package imaging

import (
	"sort"
	"strings"
)

// SortNatural sorts names in place using natural alphanumeric order.
func SortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return NaturalLess(names[i], names[j])
	})
}

// NaturalLess reports whether a orders before b when both are split into
// alternating digit and non-digit runs: digit runs compare numerically,
// other runs lexically. "img2.png" therefore sorts before "img10.png".
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		runA, restA, digitsA := nextRun(a)
		runB, restB, digitsB := nextRun(b)

		if digitsA && digitsB {
			trimmedA := strings.TrimLeft(runA, "0")
			trimmedB := strings.TrimLeft(runB, "0")
			if len(trimmedA) != len(trimmedB) {
				return len(trimmedA) < len(trimmedB)
			}
			if trimmedA != trimmedB {
				return trimmedA < trimmedB
			}
			// Numerically equal (e.g. "007" vs "7"): decided by later runs.
		} else if runA != runB {
			if digitsA != digitsB {
				// A digit run sorts before a non-digit run at the same position.
				return digitsA
			}
			return runA < runB
		}

		a, b = restA, restB
	}
	return len(a) < len(b)
}

// nextRun splits s into its leading run of digits or non-digits and the rest.
func nextRun(s string) (run, rest string, digits bool) {
	digits = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:], digits
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
