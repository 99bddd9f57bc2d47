package tandem

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed    = errors.New("tandem: repeat needs a non-empty unit and at least two copies")
	ErrOutOfRange   = errors.New("tandem: repeat is not contained in the text")
	ErrNotTandem    = errors.New("tandem: region is not a repetition of its unit")
	ErrNotPrimitive = errors.New("tandem: unit is itself a tandem repeat")
	ErrNotMaximal   = errors.New("tandem: repeat can be extended by another copy of its unit")
)

// Validate checks that every repeat really is a maximal primitive tandem
// repeat of s, read as bytes. It returns the first violation found, wrapping
// one of the Err* values above.
//
// Each repeat costs one LCE query per divisor of its unit length.
func Validate(s string, repeats []TandemRepeat) error {
	return validate(newLCEIndex([]byte(s)), repeats)
}

func validate(idx *lceIndex, repeats []TandemRepeat) error {
	for _, r := range repeats {
		if err := checkRepeat(idx, r); err != nil {
			return fmt.Errorf("%w: %v", err, r)
		}
	}
	return nil
}

func checkRepeat(idx *lceIndex, r TandemRepeat) error {
	p, start := r.RepeatLen, r.Start
	if p < 1 || r.NumRepeats < 2 {
		return ErrMalformed
	}
	end := start + r.Span()
	if start < 0 || end > idx.n {
		return ErrOutOfRange
	}
	if idx.lce(start, start+p) < r.Span()-p {
		return ErrNotTandem
	}

	// u has a smaller root d iff d divides p and u is d-periodic.
	for d := 1; d*2 <= p; d++ {
		if p%d == 0 && idx.lce(start, start+d) >= p-d {
			return ErrNotPrimitive
		}
	}

	if start-p >= 0 && idx.lce(start-p, start) >= p {
		return ErrNotMaximal
	}
	if idx.lce(end-p, end) >= p {
		return ErrNotMaximal
	}
	return nil
}
