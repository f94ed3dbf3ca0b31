package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpro/internal/catalog"
	apperrors "finpro/internal/errors"
	"finpro/internal/models"
)

// AssetHandler serves the asset catalog for display purposes
type AssetHandler struct {
	catalogs *catalog.Store
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(catalogs *catalog.Store) *AssetHandler {
	return &AssetHandler{catalogs: catalogs}
}

// listAssetsQuery holds the optional filters for listing assets.
type listAssetsQuery struct {
	Category string `form:"category" binding:"omitempty,asset_category"`
}

// ListAssets handles listing the asset catalog
// @Summary     List assets
// @Description List all recommendable assets, optionally filtered by category (Bond, Stock, MTF)
// @Tags        assets
// @Produce     json
// @Param       category query string false "Filter by asset category"
// @Success     200 {object} map[string]interface{} "Assets in catalog order"
// @Failure     400 {object} ErrorResponse "Invalid category"
// @Router      /assets [get]
func (h *AssetHandler) ListAssets(c *gin.Context) {
	var query listAssetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBindError(c, err)
		return
	}

	cat := h.catalogs.Current()
	assets := cat.Assets()
	if query.Category != "" {
		assets = cat.FilterByCategories([]models.AssetCategory{models.AssetCategory(query.Category)}, -1)
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets, "count": len(assets)})
}

// GetAssetByISIN handles the retrieval of a single asset
// @Summary     Get asset by ISIN
// @Description Get a single catalog asset by its ISIN
// @Tags        assets
// @Produce     json
// @Param       isin path string true "Asset ISIN"
// @Success     200 {object} map[string]interface{} "Asset details"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{isin} [get]
func (h *AssetHandler) GetAssetByISIN(c *gin.Context) {
	asset, ok := h.catalogs.Current().Get(c.Param("isin"))
	if !ok {
		respondWithError(c, apperrors.ErrAssetNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}
