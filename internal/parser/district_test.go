package parser

import "testing"

func TestResolveDistrictExact(t *testing.T) {
	p := NewAddressParser(0, nil)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"full cyrillic name", "БАЯНЗҮРХ 5 ХОРОО", "БАЯНЗҮРХ"},
		{"cyrillic abbreviation", "СБД 10/5 59", "СҮХБААТАР"},
		{"latin abbreviation", "BZD 4 KHOROO", "БАЯНЗҮРХ"},
		{"misspelled alias in table", "БАЯНЗУРХ 3 ХОРОО", "БАЯНЗҮРХ"},
		{"noise around the alias", "УЛААНБААТАР ХОТ БГД 15 ХОРОО", "БАЯНГОЛ"},
		{"no district", "15/2 34 ТООТ", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.resolveDistrict(tc.input)
			if got != tc.want {
				t.Errorf("resolveDistrict(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// Two-word district names written with a space resolve through the
// adjacent-token window.
func TestResolveDistrictTokenWindow(t *testing.T) {
	p := NewAddressParser(0, nil)

	for _, input := range []string{"ХАН УУЛ 3 ХОРОО", "KHAN UUL 3 KHOROO"} {
		if got := p.resolveDistrict(input); got != "ХАН-УУЛ" {
			t.Errorf("resolveDistrict(%q) = %q, want ХАН-УУЛ", input, got)
		}
	}
}

func TestResolveDistrictFuzzy(t *testing.T) {
	p := NewAddressParser(0, nil)

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		// One trailing typo keeps the score well above the threshold.
		{"typo in cyrillic name", "БАЯНЗУРХХ 5 ХОРОО", "БАЯНЗҮРХ"},
		// Three garbage characters on a ten-letter alias: 20/23 ~ 0.87.
		{"just above threshold", "BAYANZURKHXXX 5 KHOROO", "БАЯНЗҮРХ"},
		// Four garbage characters: 20/24 ~ 0.83, rejected.
		{"just below threshold", "BAYANZURKHXXXX 5 KHOROO", ""},
		// Unrelated place name must not fuzzy-match any district.
		{"unrelated token", "ГАЧУУРТ 5 ХОРОО", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.resolveDistrict(tc.input)
			if got != tc.want {
				t.Errorf("resolveDistrict(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	testCases := []struct {
		a, b string
		want float64
	}{
		{"ABC", "ABC", 1.0},
		{"ABC", "XYZ", 0.0},
		{"ABCD", "ABC", 6.0 / 7.0},
		{"", "", 0.0},
	}

	for _, tc := range testCases {
		if got := similarity(tc.a, tc.b); got != tc.want {
			t.Errorf("similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
