package services

import (
	"finpro/internal/catalog"
	"finpro/internal/models"
)

// rankColdStart selects up to topK assets whose category is eligible for
// the given risk profile, preserving catalog order. It is deterministic,
// ignores user identity, and may return fewer than topK assets when the
// catalog runs out of eligible candidates.
func rankColdStart(c *catalog.Catalog, profile models.RiskProfile, topK int) []string {
	matches := c.FilterByCategories(profile.Categories(), topK)

	isins := make([]string, 0, len(matches))
	for _, a := range matches {
		isins = append(isins, a.ISIN)
	}
	return isins
}
