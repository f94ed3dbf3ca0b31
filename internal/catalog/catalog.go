// Package catalog holds the static reference set of recommendable assets.
// The catalog is loaded once from CSV and is immutable afterwards; a reload
// builds a fresh catalog and swaps it in through the Store.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"finpro/internal/models"
)

// Catalog is an ordered, read-only collection of assets. Iteration order is
// the CSV row order, which doubles as the cold-start truncation order.
type Catalog struct {
	assets []models.Asset
	byISIN map[string]int
}

// New builds a catalog from the given assets, keeping the first occurrence
// of each ISIN and preserving order.
func New(assets []models.Asset) *Catalog {
	c := &Catalog{
		assets: make([]models.Asset, 0, len(assets)),
		byISIN: make(map[string]int, len(assets)),
	}
	for _, a := range assets {
		if _, dup := c.byISIN[a.ISIN]; dup {
			continue
		}
		c.byISIN[a.ISIN] = len(c.assets)
		c.assets = append(c.assets, a)
	}
	return c
}

// Load reads the asset catalog from a CSV file. The header row must contain
// an ISIN column and an assetCategory column; name, currency, and sector
// columns are carried through when present.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads catalog CSV data from r. Exposed separately from Load so
// reloads and tests can feed arbitrary readers.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	isinCol, ok := cols["ISIN"]
	if !ok {
		return nil, fmt.Errorf("catalog is missing the ISIN column")
	}
	categoryCol, ok := cols["assetCategory"]
	if !ok {
		return nil, fmt.Errorf("catalog is missing the assetCategory column")
	}

	optional := func(record []string, name string) string {
		if i, ok := cols[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var assets []models.Asset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		if isinCol >= len(record) || categoryCol >= len(record) {
			return nil, fmt.Errorf("catalog row %d has too few columns", len(assets)+2)
		}

		isin := strings.TrimSpace(record[isinCol])
		if isin == "" {
			continue
		}
		assets = append(assets, models.Asset{
			ISIN:     isin,
			Category: models.AssetCategory(strings.TrimSpace(record[categoryCol])),
			Name:     optional(record, "name"),
			Currency: optional(record, "currency"),
			Sector:   optional(record, "sector"),
		})
	}

	return New(assets), nil
}

// Len returns the number of assets in the catalog.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// Assets returns all assets in catalog order. The returned slice must not
// be modified.
func (c *Catalog) Assets() []models.Asset {
	return c.assets
}

// Get returns the asset with the given ISIN.
func (c *Catalog) Get(isin string) (models.Asset, bool) {
	i, ok := c.byISIN[isin]
	if !ok {
		return models.Asset{}, false
	}
	return c.assets[i], true
}

// FilterByCategories returns up to limit assets whose category is in the
// given set, preserving catalog order. A negative limit returns all matches.
func (c *Catalog) FilterByCategories(categories []models.AssetCategory, limit int) []models.Asset {
	eligible := make(map[models.AssetCategory]bool, len(categories))
	for _, cat := range categories {
		eligible[cat] = true
	}

	matches := []models.Asset{}
	if limit == 0 {
		return matches
	}
	for _, a := range c.assets {
		if !eligible[a.Category] {
			continue
		}
		matches = append(matches, a)
		if limit >= 0 && len(matches) == limit {
			break
		}
	}
	return matches
}
