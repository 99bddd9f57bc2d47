package tandem

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8 = errors.New("tandem: invalid UTF-8 encoding in input text")
)

type Builder struct {
	text      string
	foldCase  bool
	normalize bool
	runes     bool
}

// NewBuilder analyses text byte by byte, exactly as given.
func NewBuilder(text string) *Builder {
	return &Builder{text: text}
}

// Applies Unicode case folding before searching, so "Abab" holds {0 2 2}.
// Folding can change byte lengths, offsets refer to the folded text.
func (b *Builder) FoldCase() *Builder {
	b.foldCase = true
	return b
}

// Normalizes the text with NFC before searching.
func (b *Builder) Normalize() *Builder {
	b.normalize = true
	return b
}

// Searches over code points instead of bytes. Offsets and lengths in the
// result count runes.
func (b *Builder) Runes() *Builder {
	b.runes = true
	return b
}

func (b *Builder) Build() (*RepeatSet, error) {
	text := b.text
	if b.foldCase || b.normalize || b.runes {
		if !utf8.ValidString(text) {
			return nil, ErrInvalidUTF8
		}
	}
	if b.foldCase {
		text = cases.Fold().String(text)
	}
	if b.normalize {
		text = norm.NFC.String(text)
	}

	s := &RepeatSet{text: text}
	if b.runes {
		s.symbols = []rune(text)
		s.repeats = FindSymbols(s.symbols)
	} else {
		s.repeats = MaximalPrimitiveTandemRepeats(text)
	}
	return s, nil
}

// RepeatSet holds the repeats found in a transformed text.
type RepeatSet struct {
	text    string
	symbols []rune // nil unless built with Runes
	repeats []TandemRepeat
	lce     *lceIndex
}

// Text returns the text after case folding and normalization.
func (s *RepeatSet) Text() string {
	return s.text
}

func (s *RepeatSet) Len() int {
	return len(s.repeats)
}

// Repeats returns the repeats in the order they were found.
func (s *RepeatSet) Repeats() []TandemRepeat {
	return s.repeats
}

// Sorted returns a copy of the repeats ordered by Compare.
func (s *RepeatSet) Sorted() []TandemRepeat {
	sorted := append([]TandemRepeat(nil), s.repeats...)
	SortRepeats(sorted)
	return sorted
}

// Unit returns the repeating unit of r as a string.
func (s *RepeatSet) Unit(r TandemRepeat) string {
	if s.symbols != nil {
		return string(s.symbols[r.Start : r.Start+r.RepeatLen])
	}
	return s.text[r.Start : r.Start+r.RepeatLen]
}

// Validate checks every repeat in the set, see Validate.
// The LCE index is built on first use.
func (s *RepeatSet) Validate() error {
	if s.lce == nil {
		if s.symbols != nil {
			s.lce = newLCEIndex(s.symbols)
		} else {
			s.lce = newLCEIndex([]byte(s.text))
		}
	}
	return validate(s.lce, s.repeats)
}
