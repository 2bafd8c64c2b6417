package textutil

import (
	"regexp"
	"strings"
	"testing"
)

func TestIsAlnum(t *testing.T) {
	testCases := []struct {
		name string
		r    rune
		want bool
	}{
		{"digit", '7', true},
		{"latin upper", 'Z', true},
		{"cyrillic upper", 'Б', true},
		{"cyrillic yo", 'Ё', true},
		{"cyrillic oe", 'Ө', true},
		{"cyrillic ue", 'Ү', true},
		{"latin lower", 'a', false},
		{"space", ' ', false},
		{"slash", '/', false},
		{"hyphen", '-', false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAlnum(tc.r); got != tc.want {
				t.Errorf("IsAlnum(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestBounded(t *testing.T) {
	s := "БЗД 35Х"

	if !BoundedLeft(s, 0) {
		t.Error("start of string should be left-bounded")
	}
	if BoundedLeft(s, strings.Index(s, "ЗД")) {
		t.Error("position inside БЗД should not be left-bounded")
	}
	if !BoundedLeft(s, strings.Index(s, "35")) {
		t.Error("position after a space should be left-bounded")
	}
	if !BoundedRight(s, len(s)) {
		t.Error("end of string should be right-bounded")
	}
	if BoundedRight(s, strings.Index(s, "5Х")) {
		t.Error("position before a digit should not be right-bounded")
	}
}

func TestFindBounded(t *testing.T) {
	re := regexp.MustCompile(`\d+`)

	// "12" touches the letter, "34" stands alone.
	m := FindBounded("A12 34", re, true, true)
	if m == nil {
		t.Fatal("expected a bounded match")
	}
	if got := "A12 34"[m[0]:m[1]]; got != "34" {
		t.Errorf("FindBounded picked %q, want %q", got, "34")
	}

	if m := FindBounded("A12B", re, true, true); m != nil {
		t.Error("no match should qualify when every digit run touches letters")
	}
}

func TestEraseMatches(t *testing.T) {
	re := regexp.MustCompile(`\d{1,5}`)
	only3 := func(src string, m []int) bool { return src[m[0]:m[1]] == "3" }

	got := EraseMatches("3 13 3/4", re, " ", only3)
	fields := strings.Join(strings.Fields(got), " ")
	if fields != "13 /4" {
		t.Errorf("EraseMatches left %q, want %q", fields, "13 /4")
	}

	// nil accept erases every bounded match
	got = EraseMatches("3 13 3/4", re, " ", nil)
	fields = strings.Join(strings.Fields(got), " ")
	if fields != "/" {
		t.Errorf("EraseMatches with nil accept left %q, want %q", fields, "/")
	}
}
