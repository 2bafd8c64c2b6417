package models

// ParseResult is the outcome of parsing one free-form address.
type ParseResult struct {
	Sumname        string   `json:"sumname"`         // canonical district name, "" when unresolved
	Horooid        int      `json:"horooid"`         // sub-district ordinal, 0 when unresolved
	Bair           int      `json:"bair"`            // building number
	Korpus         string   `json:"korpus"`          // block identifier, "0" when absent
	Xaalga         int      `json:"xaalga"`          // unit/door number
	Confidence     float64  `json:"confidence"`      // 0.0 .. 0.99
	MatchedPattern string   `json:"matched_pattern"` // tag of the rule that produced the building fields
	Normalized     string   `json:"normalized"`      // canonical text the rules ran on
	Warnings       []string `json:"warnings"`
	RulesVersion   string   `json:"rules_version"`
}
