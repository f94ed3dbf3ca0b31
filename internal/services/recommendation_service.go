package services

import (
	"fmt"
	"strings"

	"finpro/internal/catalog"
	apperrors "finpro/internal/errors"
	"finpro/internal/models"
)

// Bounds on the requested recommendation count.
const (
	MinTopK     = 1
	MaxTopK     = 50
	DefaultTopK = 5
)

// recommendationService classifies a user as warm or cold and dispatches
// to the matching ranker. The catalog store and model are injected once at
// startup and shared read-only across requests.
type recommendationService struct {
	catalogs *catalog.Store
	model    ScoringModel
}

// NewRecommendationService creates a new RecommendationServicer. model may
// be nil when no artifact could be loaded, which pins every request to the
// rule-based cold-start path.
func NewRecommendationService(catalogs *catalog.Store, model ScoringModel) RecommendationServicer {
	return &recommendationService{catalogs: catalogs, model: model}
}

// Recommend produces a ranked recommendation for the user. A user known to
// the trained model is ranked by predicted affinity; everyone else gets the
// deterministic rule-based fallback keyed on the risk profile. An empty
// result is a valid response, not an error.
func (s *recommendationService) Recommend(userID string, profile models.RiskProfile, topK int) (*Recommendation, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id is required")
	}
	if topK < MinTopK || topK > MaxTopK {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("top_k must be between %d and %d", MinTopK, MaxTopK))
	}

	cat := s.catalogs.Current()

	if s.model != nil && s.model.IsKnownUser(userID) {
		return &Recommendation{
			UserID:   userID,
			Source:   fmt.Sprintf("AI Model (%s)", s.model.Name()),
			AssetIDs: rankWarmStart(cat, s.model, userID, topK),
		}, nil
	}

	profile = profile.Normalize()
	return &Recommendation{
		UserID:   userID,
		Source:   fmt.Sprintf("Rule-Based (%s)", profile),
		AssetIDs: rankColdStart(cat, profile, topK),
	}, nil
}
