// Package parser extracts structured Ulaanbaatar address components
// (district, horoo, building, block, unit) from free-form text.
//
// The pipeline is fixed: normalize, resolve district, resolve horoo, strip
// consumed tokens, resolve building fields from the residual text, then
// validate ranges and score confidence. Every stage is deterministic; the
// same input always yields the same result.
package parser

import (
	"go.uber.org/zap"

	"github.com/ub-address-parser/app/models"
	"github.com/ub-address-parser/internal/normalizer"
)

// RulesVersion identifies the rule set an extraction was produced with.
// Bumped whenever patterns, aliases or scoring change.
const RulesVersion = "2026-02-10.4"

// AddressParser applies the rule pipeline. Safe for concurrent use: all
// mutable state lives on the stack of Parse.
type AddressParser struct {
	fuzzyThreshold float64
	logger         *zap.Logger
}

// NewAddressParser returns a parser with the given fuzzy-match threshold for
// the district fallback. A threshold <= 0 selects DefaultFuzzyThreshold; a
// nil logger disables debug output.
func NewAddressParser(fuzzyThreshold float64, logger *zap.Logger) *AddressParser {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressParser{fuzzyThreshold: fuzzyThreshold, logger: logger}
}

// Parse extracts address components from raw text. It never fails: input
// that yields nothing produces a zero-valued result with confidence 0 and a
// not_enough_info warning.
func (p *AddressParser) Parse(raw string) *models.ParseResult {
	normalized := normalizer.Normalize(raw)

	district := p.resolveDistrict(normalized)
	horoo := p.resolveHoroo(normalized, district)

	residual := p.strip(normalized, district, horoo)
	cand := resolveBuilding(residual)

	warnings := []string{}
	horoo, bair, xaalga, rangeWarns := clampRanges(horoo, cand.Bair, cand.Xaalga)
	warnings = append(warnings, rangeWarns...)

	confidence, confWarns := scoreConfidence(cand.Pattern, bair, xaalga)
	warnings = append(warnings, confWarns...)

	korpus := cand.Korpus
	if korpus == "" {
		korpus = "0"
	}

	p.logger.Debug("address parsed",
		zap.String("normalized", normalized),
		zap.String("residual", residual),
		zap.String("district", district),
		zap.Int("horoo", horoo),
		zap.String("pattern", cand.Pattern),
		zap.Float64("confidence", confidence),
	)

	return &models.ParseResult{
		Sumname:        district,
		Horooid:        horoo,
		Bair:           bair,
		Korpus:         korpus,
		Xaalga:         xaalga,
		Confidence:     confidence,
		MatchedPattern: cand.Pattern,
		Normalized:     normalized,
		Warnings:       warnings,
		RulesVersion:   RulesVersion,
	}
}
