package tandem

import "golang.org/x/exp/constraints"

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[i] is the longest common prefix of the suffixes sa[i] and sa[i+1].
// It also returns the rank array, the inverse of sa.
func buildLCPArray[T constraints.Integer](suffixArray []int, text []T) (lcp, rank []int) {
	rank = make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}
	if len(suffixArray) == 0 {
		return nil, rank
	}

	lcp = make([]int, len(suffixArray)-1)
	l := 0
	for i := range suffixArray {
		if rank[i]+1 == len(suffixArray) {
			l = 0
			continue
		}
		j := suffixArray[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp, rank
}
