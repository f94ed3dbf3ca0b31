package services

import (
	"time"

	"finpro/internal/models"
	"finpro/internal/pagination"
)

// ScoringModel is the capability exposed by the trained model adapter.
// Implementations are read-only after load and safe for concurrent use.
type ScoringModel interface {
	// Name identifies the model in provenance labels.
	Name() string
	// IsKnownUser reports whether the user appeared in the training set.
	// It fails closed: absent model data means false, never an error.
	IsKnownUser(userID string) bool
	// Predict estimates the user's affinity for an asset. Only meaningful
	// when IsKnownUser is true; unknown assets yield a baseline estimate.
	Predict(userID, assetID string) float64
}

// Recommendation is the ranked result of a recommendation request.
type Recommendation struct {
	UserID   string
	Source   string
	AssetIDs []string
}

// RecommendationServicer defines the contract for the recommendation engine.
type RecommendationServicer interface {
	Recommend(userID string, profile models.RiskProfile, topK int) (*Recommendation, error)
}

// AuditServicer defines the contract for the recommendation audit trail.
type AuditServicer interface {
	LogRecommendation(userID, source string, profile models.RiskProfile, requested, returned int, latency time.Duration)
	ListRecommendationLogs(page pagination.PageRequest) (*pagination.PageResponse[models.RecommendationLog], error)
}
