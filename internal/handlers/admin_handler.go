package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finpro/internal/catalog"
	apperrors "finpro/internal/errors"
	"finpro/internal/logger"
	"finpro/internal/pagination"
	"finpro/internal/services"
)

// AdminHandler handles operational endpoints guarded by the admin API key
type AdminHandler struct {
	catalogs     *catalog.Store
	auditService services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(catalogs *catalog.Store, auditService services.AuditServicer) *AdminHandler {
	return &AdminHandler{catalogs: catalogs, auditService: auditService}
}

// ReloadCatalog handles re-reading the catalog file
// @Summary     Reload the asset catalog
// @Description Re-read the catalog CSV and atomically swap it in. In-flight requests keep the snapshot they started with.
// @Tags        admin
// @Produce     json
// @Param       X-API-Key header string true "Admin API key"
// @Success     200 {object} map[string]interface{} "Reload result"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Catalog file unavailable"
// @Router      /admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	cat, err := h.catalogs.Reload()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrCatalogUnavailable, err))
		return
	}

	logger.Get().Infow("catalog reloaded", "assets", cat.Len())
	c.JSON(http.StatusOK, gin.H{"message": "Catalog reloaded", "assets": cat.Len()})
}

// ListRecommendationLogs handles listing the recommendation audit trail
// @Summary     List recommendation logs
// @Description List served recommendations, newest first
// @Tags        admin
// @Produce     json
// @Param       X-API-Key header string true "Admin API key"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} map[string]interface{} "Paginated log entries"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /admin/recommendation-logs [get]
func (h *AdminHandler) ListRecommendationLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithBindError(c, err)
		return
	}

	logs, err := h.auditService.ListRecommendationLogs(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
