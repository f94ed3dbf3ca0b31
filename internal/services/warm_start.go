package services

import (
	"sort"

	"finpro/internal/catalog"
)

// rankWarmStart scores every catalog asset for the user and returns the
// topK highest-affinity ISINs. The sort is stable, so assets with equal
// scores keep their catalog order and repeated calls return the same
// sequence. Cost is one model evaluation per catalog asset.
func rankWarmStart(c *catalog.Catalog, model ScoringModel, userID string, topK int) []string {
	assets := c.Assets()

	type scored struct {
		isin  string
		score float64
	}
	predictions := make([]scored, 0, len(assets))
	for _, a := range assets {
		predictions = append(predictions, scored{
			isin:  a.ISIN,
			score: model.Predict(userID, a.ISIN),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].score > predictions[j].score
	})

	if topK > len(predictions) {
		topK = len(predictions)
	}
	isins := make([]string, 0, topK)
	for _, p := range predictions[:topK] {
		isins = append(isins, p.isin)
	}
	return isins
}
