package parser

import (
	"regexp"

	"github.com/ub-address-parser/internal/normalizer"
	"github.com/ub-address-parser/internal/textutil"
)

// sepCharClass matches the separators that glue a building number to a block
// or unit value ("10/5", "2-4", "3.1").
const sepCharClass = "[.\\\\/\\-#$^&*?`~:;<>|]"

var (
	// reGuardSep recognizes "<sep><digit>" right after a number, e.g. the
	// "/4" in "2/4" or "-9" in "10-9".
	reGuardSep = regexp.MustCompile(`^\s*` + sepCharClass + `\s*\d`)
	// reGuardKeyword recognizes a building/block/unit keyword right after a
	// number, e.g. the "БАЙР" in "2 БАЙР".
	reGuardKeyword = regexp.MustCompile(`^\s*(?:` + normalizer.BuildingKeywords + `)`)
)

// buildingContextFollows reports whether the text at pos continues with a
// separator+digit pair or a building keyword. A digit in that position
// belongs to the building part of the address, so callers must not treat it
// as (or erase it as) a horoo number.
func buildingContextFollows(s string, pos int) bool {
	rest := s[pos:]
	if reGuardSep.MatchString(rest) {
		return true
	}
	if m := reGuardKeyword.FindStringIndex(rest); m != nil {
		return textutil.BoundedRight(rest, m[1])
	}
	return false
}
