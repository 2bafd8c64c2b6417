package parser

// Warning tags reported alongside a parse result.
const (
	WarnHorooOutOfRange  = "horoo_out_of_range"
	WarnBairOutOfRange   = "bair_out_of_range"
	WarnXaalgaOutOfRange = "xaalga_out_of_range"
	WarnPartialXaalga    = "partial_only_xaalga"
	WarnPartialNoBair    = "partial_no_bair"
	WarnNotEnoughInfo    = "not_enough_info"
)

const (
	maxHoroo  = 99
	maxNumber = 99999
)

// clampRanges resets out-of-range fields to zero and reports a warning per
// reset, in horoo, bair, xaalga order.
func clampRanges(horoo, bair, xaalga int) (int, int, int, []string) {
	var warnings []string
	if horoo != 0 && (horoo < 1 || horoo > maxHoroo) {
		warnings = append(warnings, WarnHorooOutOfRange)
		horoo = 0
	}
	if bair != 0 && (bair < 1 || bair > maxNumber) {
		warnings = append(warnings, WarnBairOutOfRange)
		bair = 0
	}
	if xaalga != 0 && (xaalga < 1 || xaalga > maxNumber) {
		warnings = append(warnings, WarnXaalgaOutOfRange)
		xaalga = 0
	}
	return horoo, bair, xaalga, warnings
}

// scoreConfidence maps the matched pattern and the post-clamp field values to
// a confidence score. The table is pattern-aware: two results with identical
// fields score differently depending on how much context backed the match.
func scoreConfidence(pattern string, bair, xaalga int) (float64, []string) {
	switch {
	case bair > 0 && xaalga > 0:
		switch pattern {
		case "keyword_bair_korpus_toot":
			return 0.99, nil
		case "bair-xaalga-no-korpus":
			return 0.97, nil
		}
		return 0.98, nil
	case pattern == "xaalga only" && xaalga > 0:
		return 0.30, []string{WarnPartialXaalga}
	case pattern == "keyword_korpus_door" && xaalga > 0:
		return 0.70, []string{WarnPartialNoBair}
	}
	return 0.0, []string{WarnNotEnoughInfo}
}
