package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ub-address-parser/internal/aliases"
	"github.com/ub-address-parser/internal/textutil"
)

var (
	reHorooPhrase      = regexp.MustCompile(`(\d{1,2})\s*(?:-Р|-R)?\s*(?:ХОРОО|KHOROO|HOROO)`)
	reHorooShortPhrase = regexp.MustCompile(`(\d{1,2})\s*[ХH]`)
	reNumberRun        = regexp.MustCompile(`\d{1,5}`)
	reCollapse         = regexp.MustCompile(`\s+`)

	// Whole-word erase patterns: city literals plus, per district, every
	// recognized spelling.
	reCity        *regexp.Regexp
	districtStrip = map[string]*regexp.Regexp{}
)

func init() {
	reCity = regexp.MustCompile(quotedAlternation(aliases.CityTokens()))
	for _, canon := range aliases.Districts() {
		districtStrip[canon] = regexp.MustCompile(quotedAlternation(aliases.Forms(canon)))
	}
}

func quotedAlternation(forms []string) string {
	alts := make([]string, 0, len(forms))
	for _, f := range forms {
		alts = append(alts, regexp.QuoteMeta(f))
	}
	return `(?:` + strings.Join(alts, "|") + `)`
}

// strip erases the tokens the district and horoo resolvers already consumed,
// leaving only building-related text for the building resolver.
func (p *AddressParser) strip(normalized, district string, horoo int) string {
	content := normalized

	if horoo > 0 {
		h := strconv.Itoa(horoo)
		matchesHoroo := func(src string, m []int) bool { return src[m[2]:m[3]] == h }
		content = textutil.EraseMatches(content, reHorooPhrase, " ", matchesHoroo)
		content = textutil.EraseMatches(content, reHorooShortPhrase, " ", matchesHoroo)
		content = eraseBareDigit(content, h)
	}

	content = textutil.EraseMatches(content, reCity, " ", nil)
	if district != "" {
		if re, ok := districtStrip[district]; ok {
			content = textutil.EraseMatches(content, re, " ", nil)
		}
	}

	return strings.TrimSpace(reCollapse.ReplaceAllString(content, " "))
}

// eraseBareDigit removes standalone occurrences of the horoo digit, except
// where the digit reads as a building value: the horoo number and a building
// number can coincide lexically, and only the trailing context ("2/4",
// "2 БАЙР") tells them apart.
func eraseBareDigit(content, digit string) string {
	return textutil.EraseMatches(content, reNumberRun, " ", func(src string, m []int) bool {
		if src[m[0]:m[1]] != digit {
			return false
		}
		return !buildingContextFollows(src, m[1])
	})
}
