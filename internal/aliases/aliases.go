// Package aliases holds the static gazetteer for Ulaanbaatar: the nine
// canonical districts, every known spelling, abbreviation and Latin
// transliteration of each, and the city literals that carry no address
// information. The table is built once at load and never mutated, so
// concurrent readers need no synchronization.
package aliases

import "strings"

// Entry maps a single alias spelling to its canonical district.
type Entry struct {
	Alias string
	Canon string
}

// district groups a canonical name with its recognized alternate forms.
type district struct {
	canon   string
	aliases []string
}

// Ordering matters: the fuzzy fallback keeps the first-seen maximum, so the
// table must iterate the same way on every run.
var districts = []district{
	{"БАЯНЗҮРХ", []string{
		"БАЯНЗҮРХ", "БАНЗҮР", "БАЯНЗҮР", "БЗД", "БЗ", "БАНЗҮРХ", "БАЯНЗУРХ", "БАЯНЗҮРХД",
		"BAYANZURKH", "BAYNZURKH", "BAYNZURH", "BAYANZURH", "BAYANZUR", "BZD", "BZ", "BANZUR",
	}},
	{"БАЯНГОЛ", []string{
		"БАЯНГОЛ", "БАНГОЛ", "БЯНГОЛ", "БГД", "БГ",
		"BAYANGOL", "BAYNGOL", "BYANGOL", "BGD", "BG",
	}},
	{"СҮХБААТАР", []string{
		"СҮХБААТАР", "СҮХБАТАА", "СҮХБАТАР", "СБД", "СБ", "СУХБААТАР",
		"SUKHBAATAR", "SUKHBATAR", "SUHBATAR", "SUHBAATAR", "SBD", "SB",
	}},
	{"ЧИНГЭЛТЭЙ", []string{
		"ЧИНГЭЛТЭЙ", "ЧИНГИЛТЭЙ", "ЧЭНГЭЛТЭЙ", "ЧИНГЭЛТЙ", "ЧИНГИЛТЭ", "ЧИНГЭЛТЭ", "ЧД", "Ч",
		"CHINGELTEI", "CINGELTEI", "CHINGELTE", "CHINGILTEI", "CHINGELTEY", "CHD", "CH",
	}},
	{"СОНГИНОХАЙРХАН", []string{
		"СОНГИНОХАЙРХАН", "СОНГНОХАЙРХАН", "СОНГИНОХАРХАН", "СОНГИНХАЙРХАН", "СХД", "СХ",
		"SONGINOKHAIRKHAN", "SONGINKHAIRKHAN", "SONGINHAIRHAN", "SONGNOKHAIRKHAN",
		"SONGNOHAIRHAN", "SONGINOHAIRHAN", "SKHD", "SHD",
	}},
	{"ХАН-УУЛ", []string{
		"ХАН-УУЛ", "ХУД", "ХУ", "ХАН УУЛ", "ХАНУУЛ", "ХАНУЛ",
		"KHAN-UUL", "KHANUUL", "HAN-UUL", "HANUUL", "HUD", "HANUL", "KHANUL",
	}},
	{"НАЛАЙХ", []string{
		"НАЛАЙХ", "НАЛАХ", "НД", "Н",
		"NALAIKH", "NALAH", "NALAIH", "ND",
	}},
	{"БАГАНУУР", []string{
		"БАГАНУУР", "БАГНУУР", "БАГНУР", "БНД", "БН",
		"BAGANUUR", "BAGNUUR", "BAGNUR", "BAGANUR", "BND",
	}},
	{"БАГАХАНГАЙ", []string{
		"БАГАХАНГАЙ", "БАГХАНГАЙ", "БАГАХАНГА", "БХД", "БХ",
		"BAGAKHANGAI", "BAGKHANGAI", "BAGAKHANGA", "BAGHANGAI", "BAGAHANGAI", "BHD",
	}},
}

// cityTokens carry no district information and are stripped before building
// extraction.
var cityTokens = []string{"УЛААНБААТАР", "ULAANBAATAR", "UB", "ХОТ", "HOT"}

var (
	entries      []Entry
	aliasToCanon map[string]string
	formsByCanon map[string][]string
	canonOrder   []string
)

func init() {
	aliasToCanon = make(map[string]string)
	formsByCanon = make(map[string][]string)
	for _, d := range districts {
		canonOrder = append(canonOrder, d.canon)
		forms := append(append([]string{}, d.aliases...), d.canon)
		formsByCanon[d.canon] = forms
		for _, a := range forms {
			a = strings.ToUpper(strings.TrimSpace(a))
			if a == "" {
				continue
			}
			if _, seen := aliasToCanon[a]; !seen {
				entries = append(entries, Entry{Alias: a, Canon: d.canon})
			}
			aliasToCanon[a] = d.canon
		}
	}
}

// Canonical resolves an alias spelling to its canonical district name.
func Canonical(token string) (string, bool) {
	c, ok := aliasToCanon[token]
	return c, ok
}

// Entries returns the alias table in deterministic insertion order.
func Entries() []Entry {
	return entries
}

// Districts returns the canonical district names in table order.
func Districts() []string {
	return canonOrder
}

// Forms returns every recognized spelling of a canonical district, the
// canonical name included. Unknown districts yield nil.
func Forms(canon string) []string {
	return formsByCanon[canon]
}

// CityTokens returns the fixed city literals.
func CityTokens() []string {
	return cityTokens
}
