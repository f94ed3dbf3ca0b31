package services

import (
	"reflect"
	"testing"

	"finpro/internal/models"
	"finpro/internal/testutil"
)

func TestRankColdStart(t *testing.T) {
	cat := testutil.Catalog(
		testutil.Asset("A1", models.CategoryBond),
		testutil.Asset("A2", models.CategoryStock),
		testutil.Asset("A3", models.CategoryBond),
	)

	t.Run("conservative selects bonds in catalog order", func(t *testing.T) {
		got := rankColdStart(cat, models.RiskConservative, 5)
		if !reflect.DeepEqual(got, []string{"A1", "A3"}) {
			t.Errorf("expected [A1 A3], got %v", got)
		}
	})

	t.Run("aggressive selects stocks", func(t *testing.T) {
		got := rankColdStart(cat, models.RiskAggressive, 1)
		if !reflect.DeepEqual(got, []string{"A2"}) {
			t.Errorf("expected [A2], got %v", got)
		}
	})

	t.Run("unrecognized profile behaves like balanced", func(t *testing.T) {
		moderate := rankColdStart(cat, models.RiskProfile("Moderate").Normalize(), 2)
		balanced := rankColdStart(cat, models.RiskBalanced, 2)
		if !reflect.DeepEqual(moderate, balanced) {
			t.Errorf("expected %v, got %v", balanced, moderate)
		}
	})

	t.Run("balanced includes multi type funds", func(t *testing.T) {
		mixed := testutil.Catalog(
			testutil.Asset("B1", models.CategoryMultiTypeFund),
			testutil.Asset("B2", models.CategoryBond),
			testutil.Asset("B3", models.CategoryStock),
		)
		got := rankColdStart(mixed, models.RiskBalanced, 5)
		if !reflect.DeepEqual(got, []string{"B1", "B3"}) {
			t.Errorf("expected [B1 B3], got %v", got)
		}
	})

	t.Run("fewer eligible assets than requested is not an error", func(t *testing.T) {
		got := rankColdStart(cat, models.RiskConservative, 50)
		if len(got) != 2 {
			t.Errorf("expected 2 results, got %d", len(got))
		}
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		got := rankColdStart(testutil.Catalog(), models.RiskBalanced, 5)
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := rankColdStart(cat, models.RiskConservative, 5)
		for i := 0; i < 3; i++ {
			if got := rankColdStart(cat, models.RiskConservative, 5); !reflect.DeepEqual(got, first) {
				t.Fatalf("result changed between calls: %v vs %v", first, got)
			}
		}
	})

	t.Run("category invariant", func(t *testing.T) {
		for _, profile := range []models.RiskProfile{models.RiskConservative, models.RiskBalanced, models.RiskAggressive} {
			eligible := make(map[models.AssetCategory]bool)
			for _, c := range profile.Categories() {
				eligible[c] = true
			}
			for _, isin := range rankColdStart(cat, profile, 10) {
				asset, ok := cat.Get(isin)
				if !ok {
					t.Fatalf("profile %s returned unknown asset %s", profile, isin)
				}
				if !eligible[asset.Category] {
					t.Errorf("profile %s returned asset %s with ineligible category %s", profile, isin, asset.Category)
				}
			}
		}
	})
}
