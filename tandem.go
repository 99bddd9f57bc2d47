// Package tandem finds every maximal primitive tandem repeat of a string
// using Crochemore's equivalence class refinement.
//
// A tandem repeat is a substring that can be written as B repeated e >= 2
// times. It is primitive when B is not itself a tandem repeat, and maximal
// when no further full copy of B sits directly before or after it.
//
// For "na na na na hey hey " the maximal primitive tandem repeats include
// {0, "na ", 4} and {12, "hey ", 2}.
package tandem

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// TandemRepeat is one occurrence of a maximal primitive tandem repeat.
type TandemRepeat struct {
	// Start is the 0-based offset of the first symbol of the repeated region.
	Start int
	// RepeatLen is the length of the primitive unit B.
	RepeatLen int
	// NumRepeats is how many consecutive copies of B there are, at least 2.
	NumRepeats int
}

// Span is the number of symbols covered by the repeat.
func (r TandemRepeat) Span() int {
	return r.RepeatLen * r.NumRepeats
}

func (r TandemRepeat) String() string {
	return fmt.Sprintf("{%d %d %d}", r.Start, r.RepeatLen, r.NumRepeats)
}

// Compare orders repeats by start, then by span.
func Compare(a, b TandemRepeat) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.Span(), b.Span())
}

// SortRepeats sorts repeats in place using Compare.
func SortRepeats(repeats []TandemRepeat) {
	slices.SortFunc(repeats, Compare)
}

// MaximalPrimitiveTandemRepeats returns all maximal primitive tandem repeats
// of s, treating s as a sequence of bytes. The result has no particular order.
//
// Each period costs time linear in the number of positions that still share
// a class with another position, so repeat-poor text finishes in a few
// periods while a single repeated letter takes n/2 of them.
//
// Example: MaximalPrimitiveTandemRepeats("mississippi") returns
// {1 3 2}, {2 1 2}, {2 3 2}, {5 1 2} and {8 1 2}.
func MaximalPrimitiveTandemRepeats(s string) []TandemRepeat {
	return FindSymbols([]byte(s))
}

// FindSymbols is MaximalPrimitiveTandemRepeats over an arbitrary sequence of
// integer symbols, such as runes or token ids.
func FindSymbols[T constraints.Integer](text []T) []TandemRepeat {
	n := len(text)
	if n <= 1 {
		return nil
	}

	classes, index := initialClasses(text)

	var repeats []TandemRepeat
	// A unit longer than n/2 cannot fit twice.
	for p := 1; len(classes) > 0 && p <= n/2; p++ {
		repeats = selectRepeats(p, classes, repeats)
		classes = refine(classes, index)
	}
	return repeats
}
