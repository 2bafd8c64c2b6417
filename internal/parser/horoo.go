package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ub-address-parser/internal/aliases"
	"github.com/ub-address-parser/internal/textutil"
)

var (
	// "3 ХОРОО", "3-Р ХОРОО", "3-R KHOROO". No left boundary: a trailing
	// two-digit run of a longer number still qualifies, matching how the
	// long form is written in practice.
	reHorooLong = regexp.MustCompile(`(\d{1,2})\s*(?:-Р|-R)?\s*(?:ХОРОО|KHOROO|HOROO)`)
	// "3Х", "3H".
	reHorooShort = regexp.MustCompile(`(\d{1,2})\s*[ХH]`)

	// Per-district "alias followed by a small number" patterns, compiled once.
	adjacentNumber = map[string]*regexp.Regexp{}
)

func init() {
	for _, canon := range aliases.Districts() {
		forms := aliases.Forms(canon)
		alts := make([]string, 0, len(forms))
		for _, f := range forms {
			alts = append(alts, regexp.QuoteMeta(f))
		}
		adjacentNumber[canon] = regexp.MustCompile(`(?:` + strings.Join(alts, "|") + `)\s*(\d{1,2})`)
	}
}

// resolveHoroo extracts the sub-district ordinal from normalized text.
// Priority: explicit long form, explicit short form, then a small number
// directly after the resolved district's name. Returns 0 when nothing fires.
func (p *AddressParser) resolveHoroo(normalized, district string) int {
	if m := textutil.FindBounded(normalized, reHorooLong, false, true); m != nil {
		return atoi(normalized[m[2]:m[3]])
	}
	if m := textutil.FindBounded(normalized, reHorooShort, true, true); m != nil {
		return atoi(normalized[m[2]:m[3]])
	}
	if district == "" {
		return 0
	}
	re, ok := adjacentNumber[district]
	if !ok {
		return 0
	}
	for _, m := range textutil.FindAllBounded(normalized, re) {
		// A number that reads as part of the building ("СБД 10/5",
		// "БЗД 2 БАЙР") is not a horoo.
		if buildingContextFollows(normalized, m[3]) {
			continue
		}
		return atoi(normalized[m[2]:m[3]])
	}
	return 0
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
