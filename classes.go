package tandem

import "golang.org/x/exp/constraints"

// symbolTable assigns class ids to symbols in order of first appearance.
// Symbols in [0, 256) go through a flat table, anything else through a map.
type symbolTable[T constraints.Integer] struct {
	// small holds id+1, so the zero value means unseen.
	small [256]int
	large map[T]int
	count int
}

// classOf returns the class id of c, assigning the next free id when c has
// not been seen before.
func (t *symbolTable[T]) classOf(c T) int {
	if u := uint64(c); u < uint64(len(t.small)) {
		if t.small[u] == 0 {
			t.count++
			t.small[u] = t.count
		}
		return t.small[u] - 1
	}

	if t.large == nil {
		t.large = make(map[T]int)
	}
	id, ok := t.large[c]
	if !ok {
		id = t.count
		t.count++
		t.large[c] = id
	}
	return id
}

// initialClasses groups the positions 0..len(text) by symbol. Position
// len(text) is the end sentinel and always gets a class of its own, numbered
// last. index[i] is the class id of position i.
func initialClasses[T constraints.Integer](text []T) ([][]int, []int) {
	n := len(text)
	var table symbolTable[T]
	var classes [][]int
	index := make([]int, n+1)

	for i, c := range text {
		id := table.classOf(c)
		if id == len(classes) {
			classes = append(classes, nil)
		}
		classes[id] = append(classes[id], i)
		index[i] = id
	}

	index[n] = len(classes)
	classes = append(classes, []int{n})
	return classes, index
}

// refine turns the classes of period p into the classes of period p+1:
// every class with at least two members is split by the class of pos+1.
// Classes of size one are dropped. Members stay in increasing order.
//
// index is rewritten in place for every surviving position. Entries of
// dropped positions go stale but are never read again: if pos and pos' share
// a class, pos+1 and pos'+1 shared a class one period earlier too.
func refine(classes [][]int, index []int) [][]int {
	sentinel := len(index) - 1

	// slot[id] is the position in next of the bucket for class id of pos+1.
	slot := make([]int, len(classes))
	for i := range slot {
		slot[i] = -1
	}

	var next [][]int
	for _, class := range classes {
		if len(class) <= 1 {
			continue
		}

		first := len(next)
		for _, pos := range class {
			if pos == sentinel {
				next = append(next, []int{pos})
				continue
			}
			id := index[pos+1]
			if slot[id] < 0 {
				slot[id] = len(next)
				next = append(next, nil)
			}
			next[slot[id]] = append(next[slot[id]], pos)
		}

		for _, bucket := range next[first:] {
			if bucket[0] != sentinel {
				slot[index[bucket[0]+1]] = -1
			}
		}
	}

	for id, class := range next {
		for _, pos := range class {
			index[pos] = id
		}
	}
	return next
}
