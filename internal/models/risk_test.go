package models

import (
	"reflect"
	"testing"
)

func TestRiskProfileNormalize(t *testing.T) {
	tests := []struct {
		name    string
		profile RiskProfile
		want    RiskProfile
	}{
		{"conservative is kept", RiskConservative, RiskConservative},
		{"balanced is kept", RiskBalanced, RiskBalanced},
		{"aggressive is kept", RiskAggressive, RiskAggressive},
		{"unrecognized falls back to balanced", RiskProfile("Moderate"), RiskBalanced},
		{"empty falls back to balanced", RiskProfile(""), RiskBalanced},
		{"case sensitive", RiskProfile("conservative"), RiskBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Normalize(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRiskProfileCategories(t *testing.T) {
	tests := []struct {
		name    string
		profile RiskProfile
		want    []AssetCategory
	}{
		{"conservative maps to bonds", RiskConservative, []AssetCategory{CategoryBond}},
		{"aggressive maps to stocks", RiskAggressive, []AssetCategory{CategoryStock}},
		{"balanced maps to stocks and multi type funds", RiskBalanced, []AssetCategory{CategoryStock, CategoryMultiTypeFund}},
		{"unrecognized maps like balanced", RiskProfile("yolo"), []AssetCategory{CategoryStock, CategoryMultiTypeFund}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Categories(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAssetCategoryValid(t *testing.T) {
	for _, c := range []AssetCategory{CategoryBond, CategoryStock, CategoryMultiTypeFund} {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if AssetCategory("ETF").Valid() {
		t.Error("expected unknown category to be invalid")
	}
}
