package tandem

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// buildSuffixArray sorts the suffixes of text by prefix doubling in
// O(n log^2 n). Symbols are arbitrary integers, so SA-IS over a byte
// alphabet does not apply.
func buildSuffixArray[T constraints.Integer](text []T) []int {
	n := len(text)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	if n == 0 {
		return sa
	}

	rank := make([]int, n)
	tmp := make([]int, n)

	slices.SortFunc(sa, func(a, b int) int { return cmp.Compare(text[a], text[b]) })
	for i := 1; i < n; i++ {
		rank[sa[i]] = rank[sa[i-1]]
		if text[sa[i-1]] != text[sa[i]] {
			rank[sa[i]]++
		}
	}

	for k := 1; rank[sa[n-1]] < n-1; k <<= 1 {
		// Suffixes shorter than k sort before any longer one with the same head.
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		compare := func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(second(a), second(b))
		}

		slices.SortFunc(sa, compare)
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if compare(sa[i-1], sa[i]) < 0 {
				tmp[sa[i]]++
			}
		}
		rank, tmp = tmp, rank
	}
	return sa
}
