package tandem

// selectRepeats appends to repeats every maximal run of members spaced
// exactly p apart inside one class, for each class.
//
// For p = 1 and the class {1, 2, 3, 5, 6} this yields {1 1 3} and {5 1 2};
// for p = 2 it yields {3 2 2}.
func selectRepeats(p int, classes [][]int, repeats []TandemRepeat) []TandemRepeat {
	for _, class := range classes {
		if len(class) <= 1 {
			continue
		}

		start, e := class[0], 1
		for _, pos := range class[1:] {
			if pos == start+p*e {
				e++
				continue
			}
			if e > 1 {
				repeats = append(repeats, TandemRepeat{Start: start, RepeatLen: p, NumRepeats: e})
			}
			start, e = pos, 1
		}
		if e > 1 {
			repeats = append(repeats, TandemRepeat{Start: start, RepeatLen: p, NumRepeats: e})
		}
	}
	return repeats
}
