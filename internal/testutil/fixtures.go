package testutil

import (
	"finpro/internal/catalog"
	"finpro/internal/models"
)

// Asset builds a catalog asset with only the fields ranking cares about.
func Asset(isin string, category models.AssetCategory) models.Asset {
	return models.Asset{ISIN: isin, Category: category}
}

// Catalog builds an in-memory catalog preserving the given order.
func Catalog(assets ...models.Asset) *catalog.Catalog {
	return catalog.New(assets)
}

// Store wraps the given assets in a catalog store with no backing file.
func Store(assets ...models.Asset) *catalog.Store {
	return catalog.NewStore("", Catalog(assets...))
}

// StubModel is a ScoringModel backed by fixed per-user scores, for tests
// that need warm-path behavior without a real artifact.
type StubModel struct {
	ModelName string
	Scores    map[string]map[string]float64 // userID -> assetID -> score
	Default   float64
}

// Name returns the stub's model name, defaulting to "SVD".
func (m *StubModel) Name() string {
	if m.ModelName == "" {
		return "SVD"
	}
	return m.ModelName
}

// IsKnownUser reports whether scores were registered for the user.
func (m *StubModel) IsKnownUser(userID string) bool {
	_, ok := m.Scores[userID]
	return ok
}

// Predict returns the registered score, or Default for unknown pairs.
func (m *StubModel) Predict(userID, assetID string) float64 {
	if scores, ok := m.Scores[userID]; ok {
		if score, ok := scores[assetID]; ok {
			return score
		}
	}
	return m.Default
}
