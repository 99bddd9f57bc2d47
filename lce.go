package tandem

import (
	"github.com/viniciusth/rmq"
	"golang.org/x/exp/constraints"
)

// lceIndex answers longest common extension queries: the length of the
// longest common prefix of the suffixes starting at i and j, in O(1).
type lceIndex struct {
	n      int
	rank   []int
	lcp    []int
	lcpRMQ *rmq.RMQHybridNaive[int]
}

func newLCEIndex[T constraints.Integer](text []T) *lceIndex {
	lcp, rank := buildLCPArray(buildSuffixArray(text), text)
	idx := &lceIndex{n: len(text), rank: rank, lcp: lcp}
	if len(lcp) > 0 {
		idx.lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}
	return idx
}

func (x *lceIndex) lce(i, j int) int {
	if i < 0 || j < 0 || i >= x.n || j >= x.n {
		return 0
	}
	if i == j {
		return x.n - i
	}
	lo, hi := x.rank[i], x.rank[j]
	if lo > hi {
		lo, hi = hi, lo
	}
	return x.lcp[x.lcpRMQ.Query(lo, hi-1)]
}
