package parser

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mozillazg/go-unidecode"
	"github.com/xrash/smetrics"

	"github.com/ub-address-parser/internal/aliases"
)

// DefaultFuzzyThreshold is the minimum similarity for the fuzzy district
// fallback.
const DefaultFuzzyThreshold = 0.85

var reWords = regexp.MustCompile(`[0-9A-ZА-ЯЁӨҮ]+`)

// fuzzyAlias pairs an alias with its ASCII fold so the fuzzy pass compares
// both scripts in one space.
type fuzzyAlias struct {
	ascii string
	canon string
}

var fuzzyAliases []fuzzyAlias

func init() {
	for _, e := range aliases.Entries() {
		if len([]rune(e.Alias)) < 2 {
			continue
		}
		fuzzyAliases = append(fuzzyAliases, fuzzyAlias{ascii: asciiFold(e.Alias), canon: e.Canon})
	}
}

// asciiFold transliterates Cyrillic to an upper-case Latin approximation.
// Latin input passes through unchanged.
func asciiFold(s string) string {
	return strings.ToUpper(strings.TrimSpace(unidecode.Unidecode(s)))
}

// resolveDistrict finds the canonical district in normalized text, or ""
// when none resolves. Exact alias lookup runs first, then two-token windows
// for spaced multi-word names, then a transliterated lookup, and only then
// the fuzzy fallback.
func (p *AddressParser) resolveDistrict(normalized string) string {
	tokens := reWords.FindAllString(normalized, -1)
	if len(tokens) == 0 {
		return ""
	}

	for _, tok := range tokens {
		if c, ok := aliases.Canonical(tok); ok {
			return c
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		if c, ok := aliases.Canonical(tokens[i] + tokens[i+1]); ok {
			return c
		}
	}

	// Mixed-script input: a Cyrillic token may spell a Latin alias exactly.
	for _, tok := range tokens {
		if c, ok := aliases.Canonical(asciiFold(tok)); ok {
			return c
		}
	}

	return p.fuzzyDistrict(tokens)
}

// fuzzyDistrict compares every token of length >= 2 against every alias and
// keeps the first-seen maximum at or above the threshold. Deliberately a
// last resort: it only runs after all exact passes miss.
func (p *AddressParser) fuzzyDistrict(tokens []string) string {
	best := ""
	bestScore := 0.0
	for _, tok := range tokens {
		w := asciiFold(tok)
		if len(w) < 2 {
			continue
		}
		for _, a := range fuzzyAliases {
			// Plain edit distance lower-bounds the indel distance, so this
			// rejects hopeless pairs before the costlier scoring.
			if upperBound(w, a.ascii) < p.fuzzyThreshold {
				continue
			}
			if sc := similarity(w, a.ascii); sc > bestScore && sc >= p.fuzzyThreshold {
				best, bestScore = a.canon, sc
			}
		}
	}
	return best
}

// similarity is the symmetric indel ratio over two ASCII strings:
// substitutions cost two, so the value equals (len(a)+len(b)-dist)/(len(a)+len(b))
// and lands in [0,1] with 1 for equal strings.
func similarity(a, b string) float64 {
	n := len(a) + len(b)
	if n == 0 {
		return 0
	}
	d := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return float64(n-d) / float64(n)
}

func upperBound(a, b string) float64 {
	n := len(a) + len(b)
	if n == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return float64(n-d) / float64(n)
}
