// Package normalizer canonicalizes raw Mongolian address text so the
// downstream resolvers see one consistent token stream regardless of how the
// address was typed.
package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ub-address-parser/internal/textutil"
)

// Keyword alternations are ordered longest-first so shorter unit forms never
// shadow the full spellings. The resolvers reuse the same alternations, so
// glue repair and extraction always agree on what counts as a keyword.
const (
	// UnitWord matches every recognized unit/door indicator.
	UnitWord = `ТООТ|TOOT|ТОТ|ТОО|Т|№|NO\.?`
	// BuildingKeywords matches every building, block and unit indicator.
	BuildingKeywords = `БАЙР|BAIR|КОРПУС|KORPUS|CORPUS|` + UnitWord
)

var (
	reSpaces = regexp.MustCompile(`\s+`)
	reCommas = regexp.MustCompile(`[，,]+`)

	// "2БАЙР" -> "2 БАЙР", "ТООТ67" -> "ТООТ 67". Boundaries are verified
	// procedurally; the patterns themselves are unanchored.
	reNumKeyword = regexp.MustCompile(`(\d+)\s*(` + BuildingKeywords + `)`)
	reKeywordNum = regexp.MustCompile(`(` + BuildingKeywords + `)\s*(\d+)`)
)

// Normalize applies NFKC composition, upper-casing, whitespace and comma
// folding, and glue repair between digit runs and building keywords.
// It is idempotent and maps empty input to the empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToUpper(norm.NFKC.String(raw))
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	s = reCommas.ReplaceAllString(s, " ")
	s = glue(s, reNumKeyword)
	s = glue(s, reKeywordNum)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// glue inserts a single space between the two capture groups of every
// word-bounded match, so "56ТООТ" tokenizes as "56 ТООТ".
func glue(s string, re *regexp.Regexp) string {
	ms := re.FindAllStringSubmatchIndex(s, -1)
	if len(ms) == 0 {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, m := range ms {
		if !textutil.BoundedLeft(s, m[0]) || !textutil.BoundedRight(s, m[1]) {
			continue
		}
		b.WriteString(s[prev:m[0]])
		b.WriteString(s[m[2]:m[3]])
		b.WriteByte(' ')
		b.WriteString(s[m[4]:m[5]])
		prev = m[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}
