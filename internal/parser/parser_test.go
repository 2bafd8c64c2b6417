package parser

import "testing"

func TestParse(t *testing.T) {
	p := NewAddressParser(0, nil)

	testCases := []struct {
		name       string
		input      string
		sumname    string
		horooid    int
		bair       int
		korpus     string
		xaalga     int
		confidence float64
		pattern    string
	}{
		{
			name:       "fully keyword qualified",
			input:      "БЗД 4 хороо 2 байр 4 корпус 67 тоот",
			sumname:    "БАЯНЗҮРХ",
			horooid:    4,
			bair:       2, korpus: "4", xaalga: 67,
			confidence: 0.99,
			pattern:    "keyword_bair_korpus_toot",
		},
		{
			name:       "slash blocks, adjacent number is not a horoo",
			input:      "СБД 10/5 59",
			sumname:    "СҮХБААТАР",
			horooid:    0,
			bair:       10, korpus: "5", xaalga: 59,
			confidence: 0.98,
			pattern:    "strict_content_blocks",
		},
		{
			name:       "compact token after horoo removal",
			input:      "ХУД 3 хороо 10-9",
			sumname:    "ХАН-УУЛ",
			horooid:    3,
			bair:       10, korpus: "0", xaalga: 9,
			confidence: 0.97,
			pattern:    "bair-xaalga-no-korpus",
		},
		{
			name:       "short horoo form",
			input:      "ЧД 5х 12-3",
			sumname:    "ЧИНГЭЛТЭЙ",
			horooid:    5,
			bair:       12, korpus: "0", xaalga: 3,
			confidence: 0.97,
			pattern:    "bair-xaalga-no-korpus",
		},
		{
			name:       "horoo digit shared with building",
			input:      "БЗД 2 хороо 2/4",
			sumname:    "БАЯНЗҮРХ",
			horooid:    2,
			bair:       2, korpus: "0", xaalga: 4,
			confidence: 0.97,
			pattern:    "bair-xaalga-no-korpus",
		},
		{
			name:       "implicit triple",
			input:      "БЗД 1 хороо 3 байр 4 56",
			sumname:    "БАЯНЗҮРХ",
			horooid:    1,
			bair:       3, korpus: "4", xaalga: 56,
			confidence: 0.98,
			pattern:    "keyword_bair_implicit_korpus_door",
		},
		{
			name:       "block and door without building",
			input:      "СХД 2 хороо корпус 3 56",
			sumname:    "СОНГИНОХАЙРХАН",
			horooid:    2,
			bair:       0, korpus: "3", xaalga: 56,
			confidence: 0.70,
			pattern:    "keyword_korpus_door",
		},
		{
			name:       "glued latin keywords",
			input:      "bair 2 korpus 3 toot 56",
			sumname:    "",
			horooid:    0,
			bair:       2, korpus: "3", xaalga: 56,
			confidence: 0.99,
			pattern:    "keyword_bair_korpus_toot",
		},
		{
			name:       "unit only",
			input:      "тоот 56",
			sumname:    "",
			horooid:    0,
			bair:       0, korpus: "0", xaalga: 56,
			confidence: 0.30,
			pattern:    "xaalga only",
		},
		{
			name:       "district only",
			input:      "Налайх",
			sumname:    "НАЛАЙХ",
			horooid:    0,
			bair:       0, korpus: "0", xaalga: 0,
			confidence: 0.0,
			pattern:    "none",
		},
		{
			name:       "district and horoo only",
			input:      "СБД 10",
			sumname:    "СҮХБААТАР",
			horooid:    10,
			bair:       0, korpus: "0", xaalga: 0,
			confidence: 0.0,
			pattern:    "none",
		},
		{
			name:       "empty input",
			input:      "",
			sumname:    "",
			horooid:    0,
			bair:       0, korpus: "0", xaalga: 0,
			confidence: 0.0,
			pattern:    "none",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := p.Parse(tc.input)

			if r.Sumname != tc.sumname {
				t.Errorf("sumname = %q, want %q", r.Sumname, tc.sumname)
			}
			if r.Horooid != tc.horooid {
				t.Errorf("horooid = %d, want %d", r.Horooid, tc.horooid)
			}
			if r.Bair != tc.bair || r.Korpus != tc.korpus || r.Xaalga != tc.xaalga {
				t.Errorf("building = (%d, %q, %d), want (%d, %q, %d)",
					r.Bair, r.Korpus, r.Xaalga, tc.bair, tc.korpus, tc.xaalga)
			}
			if r.Confidence != tc.confidence {
				t.Errorf("confidence = %v, want %v", r.Confidence, tc.confidence)
			}
			if r.MatchedPattern != tc.pattern {
				t.Errorf("matched_pattern = %q, want %q", r.MatchedPattern, tc.pattern)
			}
			if r.Warnings == nil {
				t.Error("warnings must never be nil")
			}
			if r.RulesVersion != RulesVersion {
				t.Errorf("rules_version = %q, want %q", r.RulesVersion, RulesVersion)
			}
		})
	}
}

func TestParseWarnings(t *testing.T) {
	p := NewAddressParser(0, nil)

	t.Run("out of range building", func(t *testing.T) {
		r := p.Parse("БГД 5 хороо 123456 77")
		if r.Bair != 0 {
			t.Errorf("bair = %d, want 0 after clamping", r.Bair)
		}
		wantWarnings := []string{WarnBairOutOfRange, WarnNotEnoughInfo}
		if len(r.Warnings) != len(wantWarnings) {
			t.Fatalf("warnings = %v, want %v", r.Warnings, wantWarnings)
		}
		for i, w := range wantWarnings {
			if r.Warnings[i] != w {
				t.Errorf("warnings[%d] = %q, want %q", i, r.Warnings[i], w)
			}
		}
	})

	t.Run("partial unit only", func(t *testing.T) {
		r := p.Parse("тоот 56")
		if len(r.Warnings) != 1 || r.Warnings[0] != WarnPartialXaalga {
			t.Errorf("warnings = %v, want [%s]", r.Warnings, WarnPartialXaalga)
		}
	})

	t.Run("nothing resolved", func(t *testing.T) {
		r := p.Parse("")
		if len(r.Warnings) != 1 || r.Warnings[0] != WarnNotEnoughInfo {
			t.Errorf("warnings = %v, want [%s]", r.Warnings, WarnNotEnoughInfo)
		}
	})
}

// The stripper must erase exactly the tokens the earlier resolvers consumed.
func TestStrip(t *testing.T) {
	p := NewAddressParser(0, nil)

	testCases := []struct {
		name     string
		input    string
		district string
		horoo    int
		want     string
	}{
		{
			name:     "horoo phrase and district",
			input:    "БЗД 4 ХОРОО 15/2 34",
			district: "БАЯНЗҮРХ",
			horoo:    4,
			want:     "15/2 34",
		},
		{
			name:     "bare horoo digit kept when separator follows",
			input:    "БЗД 2 ХОРОО 2/4",
			district: "БАЯНЗҮРХ",
			horoo:    2,
			want:     "2/4",
		},
		{
			name:     "bare horoo digit kept before keyword",
			input:    "БЗД 2 ХОРОО 2 БАЙР 5",
			district: "БАЯНЗҮРХ",
			horoo:    2,
			want:     "2 БАЙР 5",
		},
		{
			name:     "city tokens removed",
			input:    "УЛААНБААТАР ХОТ СБД 10/5 59",
			district: "СҮХБААТАР",
			horoo:    0,
			want:     "10/5 59",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.strip(tc.input, tc.district, tc.horoo)
			if got != tc.want {
				t.Errorf("strip(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolveHoroo(t *testing.T) {
	p := NewAddressParser(0, nil)

	testCases := []struct {
		name     string
		input    string
		district string
		want     int
	}{
		{"long form", "БЗД 4 ХОРОО 15/2 34", "БАЯНЗҮРХ", 4},
		{"long form with ordinal", "СБД 3-Р ХОРОО 12 ТООТ", "СҮХБААТАР", 3},
		{"latin long form", "BZD 7 KHOROO", "БАЯНЗҮРХ", 7},
		{"short form", "ЧД 5Х 12-3", "ЧИНГЭЛТЭЙ", 5},
		{"district adjacent number", "СБД 10", "СҮХБААТАР", 10},
		{"adjacent number guarded by separator", "СБД 10/5 59", "СҮХБААТАР", 0},
		{"adjacent number guarded by keyword", "БЗД 2 БАЙР", "БАЯНЗҮРХ", 0},
		{"no horoo", "БЗД 15/2 34", "БАЯНЗҮРХ", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.resolveHoroo(tc.input, tc.district)
			if got != tc.want {
				t.Errorf("resolveHoroo(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestClampRanges(t *testing.T) {
	horoo, bair, xaalga, warns := clampRanges(100, 123456, 100000)
	if horoo != 0 || bair != 0 || xaalga != 0 {
		t.Errorf("clampRanges = (%d, %d, %d), want all zero", horoo, bair, xaalga)
	}
	want := []string{WarnHorooOutOfRange, WarnBairOutOfRange, WarnXaalgaOutOfRange}
	if len(warns) != 3 {
		t.Fatalf("warnings = %v, want %v", warns, want)
	}
	for i := range want {
		if warns[i] != want[i] {
			t.Errorf("warnings[%d] = %q, want %q", i, warns[i], want[i])
		}
	}

	if _, _, _, warns := clampRanges(5, 12, 34); len(warns) != 0 {
		t.Errorf("in-range values produced warnings: %v", warns)
	}
}

func TestScoreConfidence(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		bair    int
		xaalga  int
		want    float64
	}{
		{"keyword full", "keyword_bair_korpus_toot", 2, 67, 0.99},
		{"compact", "bair-xaalga-no-korpus", 10, 9, 0.97},
		{"strict blocks", "strict_content_blocks", 10, 59, 0.98},
		{"unit only", "xaalga only", 0, 56, 0.30},
		{"korpus door", "keyword_korpus_door", 0, 56, 0.70},
		{"nothing", "none", 0, 0, 0.0},
		{"clamped unit kills partial", "xaalga only", 0, 0, 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := scoreConfidence(tc.pattern, tc.bair, tc.xaalga)
			if got != tc.want {
				t.Errorf("scoreConfidence(%q, %d, %d) = %v, want %v",
					tc.pattern, tc.bair, tc.xaalga, got, tc.want)
			}
		})
	}
}
