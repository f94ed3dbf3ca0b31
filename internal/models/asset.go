package models

// AssetCategory represents the category tag of a recommendable asset.
type AssetCategory string

const (
	CategoryBond          AssetCategory = "Bond"
	CategoryStock         AssetCategory = "Stock"
	CategoryMultiTypeFund AssetCategory = "MTF"
)

// Valid reports whether the category is one of the known tags.
func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryBond, CategoryStock, CategoryMultiTypeFund:
		return true
	}
	return false
}

// Asset represents a single recommendable instrument from the catalog.
// Ranking only looks at ISIN and Category; the remaining fields are
// display attributes carried through for API consumers.
type Asset struct {
	ISIN     string        `json:"isin"`
	Category AssetCategory `json:"category"`
	Name     string        `json:"name,omitempty"`
	Currency string        `json:"currency,omitempty"`
	Sector   string        `json:"sector,omitempty"`
}
