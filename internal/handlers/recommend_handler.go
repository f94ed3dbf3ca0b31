package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finpro/internal/errors"
	"finpro/internal/models"
	"finpro/internal/services"
)

// RecommendHandler handles recommendation requests
type RecommendHandler struct {
	recommendationService services.RecommendationServicer
	auditService          services.AuditServicer
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(recommendationService services.RecommendationServicer, auditService services.AuditServicer) *RecommendHandler {
	return &RecommendHandler{
		recommendationService: recommendationService,
		auditService:          auditService,
	}
}

// RecommendRequest represents the request payload for a recommendation.
// top_k and its legacy alias k are pointers so that an explicit 0 is
// rejected while an absent field falls back to the default.
type RecommendRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	RiskProfile string `json:"risk_profile"`
	TopK        *int   `json:"top_k" binding:"omitempty,min=1,max=50"`
	K           *int   `json:"k" binding:"omitempty,min=1,max=50"`
}

// Count returns the requested recommendation count, preferring top_k over
// the alias k and defaulting when neither is set.
func (r *RecommendRequest) Count() int {
	if r.TopK != nil {
		return *r.TopK
	}
	if r.K != nil {
		return *r.K
	}
	return services.DefaultTopK
}

// RecommendResponse represents a ranked recommendation in the response
type RecommendResponse struct {
	UserID          string   `json:"user_id"`
	Source          string   `json:"source"`
	Recommendations []string `json:"recommendations"`
}

// Recommend handles a recommendation request
// @Summary     Recommend assets
// @Description Return a ranked list of asset ISINs for the user. Users known to the trained model are ranked by predicted affinity; new users get the rule-based fallback for their risk profile.
// @Tags        recommendations
// @Accept      json
// @Produce     json
// @Param       request body RecommendRequest true "Recommendation request"
// @Success     200 {object} RecommendResponse "Ranked recommendations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommend [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	profile := models.RiskProfile(req.RiskProfile).Normalize()
	topK := req.Count()
	// Binding's omitempty lets an explicit zero through, so bound-check here.
	if topK < services.MinTopK || topK > services.MaxTopK {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("top_k must be between %d and %d", services.MinTopK, services.MaxTopK)))
		return
	}

	start := time.Now()
	result, err := h.recommendationService.Recommend(req.UserID, profile, topK)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.LogRecommendation(result.UserID, result.Source, profile, topK, len(result.AssetIDs), time.Since(start))

	recommendations := result.AssetIDs
	if recommendations == nil {
		recommendations = []string{}
	}
	c.JSON(http.StatusOK, RecommendResponse{
		UserID:          result.UserID,
		Source:          result.Source,
		Recommendations: recommendations,
	})
}
