package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ub-address-parser/internal/normalizer"
	"github.com/ub-address-parser/internal/textutil"
)

// buildingCandidate is the outcome of one building rule: the three extracted
// fields plus the tag of the rule that produced them.
type buildingCandidate struct {
	Bair    int
	Korpus  string
	Xaalga  int
	Pattern string
}

// buildingRule is one entry of the resolution cascade. try reports whether
// the rule fired on the residual text.
type buildingRule struct {
	name string
	try  func(residual string) (buildingCandidate, bool)
}

const (
	bairWordAlt   = `(?:БАЙР|BAIR)`
	korpusWordAlt = `(?:КОРПУС|KORPUS|CORPUS)`
	unitWordAlt   = `(?:` + normalizer.UnitWord + `)`
	korpusClass   = `[А-ЯӨҮЁA-Z]`
)

var (
	// Implicit triple: "3 БАЙР 4 56" and "БАЙР 3 4 56".
	reImplicit    = regexp.MustCompile(`(\d{1,5})\s*` + bairWordAlt + `\s+(\d{1,5})\s+(\d{1,5})`)
	reImplicitRev = regexp.MustCompile(bairWordAlt + `\s*(\d{1,5})\s+(\d{1,5})\s+(\d{1,5})`)

	// Keyword-qualified numbers, both orders.
	reBairWord      = regexp.MustCompile(`(\d{1,5})\s*` + bairWordAlt)
	reBairWordRev   = regexp.MustCompile(bairWordAlt + `\s*(\d{1,5})`)
	reKorpusWord    = regexp.MustCompile(`(\d{1,5})\s*` + korpusWordAlt)
	reKorpusWordRev = regexp.MustCompile(korpusWordAlt + `\s*(\d{1,5})`)
	reTootWord      = regexp.MustCompile(`(\d{1,5})\s*` + unitWordAlt)
	reTootWordRev   = regexp.MustCompile(unitWordAlt + `\s*(\d{1,5})`)

	// "КОРПУС 3 56": block keyword with the door number right after it.
	reKorpusDoor = regexp.MustCompile(korpusWordAlt + `\s*(\d{1,5})\s+(\d{1,5})`)

	// Single residual token like "10-9", "10/9", "10.9".
	reCompactToken = regexp.MustCompile(`^(\d{1,5})\s*[-./]\s*(\d{1,4})$`)

	// Leading digit run of the first numeric block.
	reLeadingDigits = regexp.MustCompile(`^\d+`)
	reDigitRun      = regexp.MustCompile(`\d+`)
	reStandalone    = regexp.MustCompile(`\d{1,5}`)

	// Fallback shapes, least specific last.
	reFallTriple = regexp.MustCompile(`(\d{1,5})` + sepCharClass + `(` + korpusClass + `|\d{1,2})\s+(\d{1,4})`)
	reFallLetter = regexp.MustCompile(`(\d{1,5})(` + korpusClass + `)\s+(\d{1,4})`)
	reFallPair   = regexp.MustCompile(`(\d{1,5})\s+(\d{1,4})`)
	reFallXaalga = regexp.MustCompile(unitWordAlt + `\s*(\d{1,4})|(\d{1,4})\s*` + unitWordAlt)

	reNonKorpus = regexp.MustCompile(`[^0-9А-ЯӨҮЁA-Z]`)
)

var buildingRules = []buildingRule{
	{name: "implicit-triple", try: tryImplicitTriple},
	{name: "keyword", try: tryKeyword},
	{name: "compact-pair", try: tryCompactPair},
	{name: "strict-blocks", try: tryStrictBlocks},
	{name: "fallback", try: tryFallback},
}

// resolveBuilding runs the cascade over the residual text (district, horoo
// and city tokens already stripped) and returns the first rule's candidate.
// Rules are independent: each sees the full residual and either produces a
// complete candidate or passes.
func resolveBuilding(residual string) buildingCandidate {
	for _, r := range buildingRules {
		if c, ok := r.try(residual); ok {
			return c
		}
	}
	return buildingCandidate{Korpus: "0", Pattern: "none"}
}

// tryImplicitTriple handles a single building keyword followed by three digit
// groups, e.g. "3 БАЙР 4 56" or "БАЙР 3 4 56": building, block, unit in
// reading order.
func tryImplicitTriple(residual string) (buildingCandidate, bool) {
	m := textutil.FindBounded(residual, reImplicit, true, true)
	if m == nil {
		m = textutil.FindBounded(residual, reImplicitRev, true, true)
	}
	if m == nil {
		return buildingCandidate{}, false
	}
	return buildingCandidate{
		Bair:    atoi(residual[m[2]:m[3]]),
		Korpus:  strconv.Itoa(atoi(residual[m[4]:m[5]])),
		Xaalga:  atoi(residual[m[6]:m[7]]),
		Pattern: "keyword_bair_implicit_korpus_door",
	}, true
}

// claimSet tracks digit spans already assigned to a field, so that one number
// is never read twice. "БАЙР 2 КОРПУС 3 ТООТ 56": without claims the forward
// unit pattern would re-read the "3" of "КОРПУС 3" as the door number.
type claimSet [][2]int

func (c *claimSet) claim(start, end int) { *c = append(*c, [2]int{start, end}) }

func (c claimSet) overlaps(start, end int) bool {
	for _, s := range c {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}

// findClaimedNum returns the first unclaimed bounded number captured by any
// of the given patterns, claiming its span. Patterns are tried in order, all
// matches of one before the next.
func findClaimedNum(s string, claimed *claimSet, res ...*regexp.Regexp) (int, bool) {
	for _, re := range res {
		for _, m := range textutil.FindAllBounded(s, re) {
			start, end := m[2], m[3]
			if start < 0 || claimed.overlaps(start, end) {
				continue
			}
			claimed.claim(start, end)
			return atoi(s[start:end]), true
		}
	}
	return 0, false
}

// tryKeyword handles explicitly keyword-qualified numbers: building, block
// and unit each announced by their own word, in either number-keyword or
// keyword-number order.
func tryKeyword(residual string) (buildingCandidate, bool) {
	var claimed claimSet

	bair, bairOK := findClaimedNum(residual, &claimed, reBairWord, reBairWordRev)

	korpus := 0
	korpusOK := false
	doorAfterKorpus := 0
	for _, m := range textutil.FindAllBounded(residual, reKorpusDoor) {
		if claimed.overlaps(m[2], m[3]) || claimed.overlaps(m[4], m[5]) {
			continue
		}
		claimed.claim(m[2], m[3])
		korpus = atoi(residual[m[2]:m[3]])
		korpusOK = true
		doorAfterKorpus = atoi(residual[m[4]:m[5]])
		break
	}
	if !korpusOK {
		korpus, korpusOK = findClaimedNum(residual, &claimed, reKorpusWord, reKorpusWordRev)
	}

	toot, tootOK := findClaimedNum(residual, &claimed, reTootWord, reTootWordRev)

	switch {
	case bairOK && (korpusOK || tootOK):
		c := buildingCandidate{Bair: bair, Korpus: "0", Pattern: "keyword_bair_korpus_toot"}
		if korpusOK {
			c.Korpus = strconv.Itoa(korpus)
		}
		switch {
		case tootOK:
			c.Xaalga = toot
		case doorAfterKorpus > 0:
			c.Xaalga = doorAfterKorpus
		default:
			// Last standalone number, unless it is a value already assigned.
			if n, ok := lastStandaloneNumber(residual); ok && n != c.Bair && strconv.Itoa(n) != c.Korpus {
				c.Xaalga = n
			}
		}
		return c, true
	case !bairOK && doorAfterKorpus > 0:
		// "КОРПУС 3 56" with no building at all.
		return buildingCandidate{
			Korpus:  strconv.Itoa(korpus),
			Xaalga:  doorAfterKorpus,
			Pattern: "keyword_korpus_door",
		}, true
	}
	return buildingCandidate{}, false
}

// tryCompactPair handles the degenerate short address: exactly one numeric
// token left, shaped "N<sep>M". The separator here splits building from unit,
// not building from block.
func tryCompactPair(residual string) (buildingCandidate, bool) {
	blocks := numericBlocks(residual)
	if len(blocks) != 1 {
		return buildingCandidate{}, false
	}
	m := reCompactToken.FindStringSubmatch(blocks[0])
	if m == nil {
		return buildingCandidate{}, false
	}
	return buildingCandidate{
		Bair:    atoi(m[1]),
		Korpus:  "0",
		Xaalga:  atoi(m[2]),
		Pattern: "bair-xaalga-no-korpus",
	}, true
}

// tryStrictBlocks handles two or more numeric tokens with no keywords: the
// first token carries building (+ optional block suffix), the last carries
// the unit.
func tryStrictBlocks(residual string) (buildingCandidate, bool) {
	blocks := numericBlocks(residual)
	if len(blocks) < 2 {
		return buildingCandidate{}, false
	}
	first, last := blocks[0], blocks[len(blocks)-1]

	lead := reLeadingDigits.FindString(first)
	if lead == "" {
		return buildingCandidate{}, false
	}
	unit := reDigitRun.FindString(last)
	if unit == "" {
		return buildingCandidate{}, false
	}
	return buildingCandidate{
		Bair:    atoi(lead),
		Korpus:  cleanKorpus(first[len(lead):]),
		Xaalga:  atoi(unit),
		Pattern: "strict_content_blocks",
	}, true
}

// tryFallback probes progressively looser shapes: separator-joined triple,
// letter-suffixed pair, bare pair, then a lone keyword-qualified unit.
func tryFallback(residual string) (buildingCandidate, bool) {
	if m := textutil.FindBounded(residual, reFallTriple, true, true); m != nil {
		return buildingCandidate{
			Bair:    atoi(residual[m[2]:m[3]]),
			Korpus:  cleanKorpus(residual[m[4]:m[5]]),
			Xaalga:  atoi(residual[m[6]:m[7]]),
			Pattern: "bair.korpus xaalga",
		}, true
	}
	if m := textutil.FindBounded(residual, reFallLetter, true, true); m != nil {
		return buildingCandidate{
			Bair:    atoi(residual[m[2]:m[3]]),
			Korpus:  cleanKorpus(residual[m[4]:m[5]]),
			Xaalga:  atoi(residual[m[6]:m[7]]),
			Pattern: "bair+letter xaalga",
		}, true
	}
	if m := textutil.FindBounded(residual, reFallPair, true, true); m != nil {
		return buildingCandidate{
			Bair:    atoi(residual[m[2]:m[3]]),
			Korpus:  "0",
			Xaalga:  atoi(residual[m[4]:m[5]]),
			Pattern: "bair xaalga",
		}, true
	}
	if m := textutil.FindBounded(residual, reFallXaalga, true, true); m != nil {
		g := m[2:4]
		if g[0] < 0 {
			g = m[4:6]
		}
		return buildingCandidate{
			Korpus:  "0",
			Xaalga:  atoi(residual[g[0]:g[1]]),
			Pattern: "xaalga only",
		}, true
	}
	return buildingCandidate{}, false
}

// numericBlocks splits residual on whitespace and keeps the tokens that
// contain a digit, trimmed of stray punctuation.
func numericBlocks(residual string) []string {
	var out []string
	for _, f := range strings.Fields(residual) {
		if !strings.ContainsAny(f, "0123456789") {
			continue
		}
		if f = strings.Trim(f, " ,.;"); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// lastStandaloneNumber returns the last word-bounded digit run in residual.
func lastStandaloneNumber(residual string) (int, bool) {
	ms := textutil.FindAllBounded(residual, reStandalone)
	if len(ms) == 0 {
		return 0, false
	}
	m := ms[len(ms)-1]
	return atoi(residual[m[0]:m[1]]), true
}

// cleanKorpus keeps only the alphanumeric runes of a block value; "0" when
// nothing survives.
func cleanKorpus(s string) string {
	k := reNonKorpus.ReplaceAllString(s, "")
	if k == "" {
		return "0"
	}
	return k
}
