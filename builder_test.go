package tandem

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	s, err := NewBuilder("mississippi").Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []TandemRepeat{{1, 3, 2}, {2, 1, 2}, {2, 3, 2}, {5, 1, 2}, {8, 1, 2}}
	if got := s.Sorted(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if s.Len() != len(want) || len(s.Repeats()) != len(want) {
		t.Errorf("wrong length %d", s.Len())
	}
	if got := s.Unit(TandemRepeat{1, 3, 2}); got != "iss" {
		t.Errorf("unit: got %q, want %q", got, "iss")
	}
	if err := s.Validate(); err != nil {
		t.Error(err)
	}

	// Invalid UTF-8 is fine as long as the text is read as bytes.
	s, err = NewBuilder("\xff\xff").Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Repeats(); !slices.Equal(got, []TandemRepeat{{0, 1, 2}}) {
		t.Errorf("got %v", got)
	}
}

func TestBuilderOptions(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		text    string
		want    []TandemRepeat
		unit    string
	}{
		{"bytes", NewBuilder("héhé"), "héhé", []TandemRepeat{{0, 3, 2}}, "hé"},
		{"runes", NewBuilder("héhé").Runes(), "héhé", []TandemRepeat{{0, 2, 2}}, "hé"},
		{"no fold", NewBuilder("AbaB"), "AbaB", nil, ""},
		{"fold", NewBuilder("AbaB").FoldCase(), "abab", []TandemRepeat{{0, 2, 2}}, "ab"},
		{"decomposed runes", NewBuilder("e\u0301e\u0301").Runes(), "e\u0301e\u0301", []TandemRepeat{{0, 2, 2}}, "e\u0301"},
		{"normalized runes", NewBuilder("e\u0301e\u0301").Normalize().Runes(), "\u00e9\u00e9", []TandemRepeat{{0, 1, 2}}, "\u00e9"},
		{"fold and normalize", NewBuilder("E\u0301e\u0301").FoldCase().Normalize().Runes(), "\u00e9\u00e9", []TandemRepeat{{0, 1, 2}}, "\u00e9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.builder.Build()
			if err != nil {
				t.Fatal(err)
			}
			if s.Text() != tc.text {
				t.Errorf("text: got %q, want %q", s.Text(), tc.text)
			}
			got := s.Sorted()
			if !slices.Equal(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if len(got) > 0 {
				if u := s.Unit(got[0]); u != tc.unit {
					t.Errorf("unit: got %q, want %q", u, tc.unit)
				}
			}
			if err := s.Validate(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestBuilderInvalidUTF8(t *testing.T) {
	for name, b := range map[string]*Builder{
		"runes":     NewBuilder("ab\xffab").Runes(),
		"fold":      NewBuilder("ab\xffab").FoldCase(),
		"normalize": NewBuilder("ab\xffab").Normalize(),
	} {
		if _, err := b.Build(); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("%s: got %v, want %v", name, err, ErrInvalidUTF8)
		}
	}
}
