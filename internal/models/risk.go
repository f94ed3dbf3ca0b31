package models

// RiskProfile is a caller-declared preference used only for cold-start
// ranking. Unrecognized values normalize to Balanced.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskBalanced     RiskProfile = "Balanced"
	RiskAggressive   RiskProfile = "Aggressive"
)

// riskCategories maps each risk profile to the asset categories eligible
// for cold-start recommendations. Kept as data so new profiles can be
// added without touching ranking logic.
var riskCategories = map[RiskProfile][]AssetCategory{
	RiskConservative: {CategoryBond},
	RiskBalanced:     {CategoryStock, CategoryMultiTypeFund},
	RiskAggressive:   {CategoryStock},
}

// Normalize returns the profile itself when recognized and Balanced
// otherwise, including the empty string.
func (r RiskProfile) Normalize() RiskProfile {
	if _, ok := riskCategories[r]; ok {
		return r
	}
	return RiskBalanced
}

// Categories returns the eligible asset categories for the profile,
// falling back to the Balanced set for unrecognized values.
func (r RiskProfile) Categories() []AssetCategory {
	return riskCategories[r.Normalize()]
}
