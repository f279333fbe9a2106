package epubdoc

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/tsawler/bilingual/format"
)

var trailingNumber = regexp.MustCompile(`(?i)(\d+)\.x?html?$`)

// FallbackOrder approximates reading order from entry names alone: every
// HTML/XHTML entry, ordered by the number immediately preceding the
// extension when both names carry one, and lexically otherwise.
func FallbackOrder(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if format.IsMarkupName(name) {
			out = append(out, name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessByTrailingNumber(out[i], out[j])
	})

	return out
}

func lessByTrailingNumber(a, b string) bool {
	na, okA := trailingNumberOf(a)
	nb, okB := trailingNumberOf(b)
	if okA && okB && na != nb {
		return na < nb
	}
	return a < b
}

func trailingNumberOf(name string) (uint64, bool) {
	m := trailingNumber.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
