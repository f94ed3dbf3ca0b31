package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finpro/internal/errors"
	"finpro/internal/logger"
	"finpro/internal/models"
	"finpro/internal/pagination"
)

// auditService records served recommendations for later review.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// LogRecommendation records a served recommendation. Errors are logged but
// never propagate so a broken audit trail cannot fail a request.
func (s *auditService) LogRecommendation(userID, source string, profile models.RiskProfile, requested, returned int, latency time.Duration) {
	entry := &models.RecommendationLog{
		UserID:      userID,
		Source:      source,
		RiskProfile: string(profile),
		Requested:   requested,
		Returned:    returned,
		LatencyMS:   latency.Milliseconds(),
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create recommendation log entry",
			"error", err,
			"user_id", userID,
			"source", source,
		)
	}
}

// ListRecommendationLogs returns a paginated list of served
// recommendations, newest first.
func (s *auditService) ListRecommendationLogs(page pagination.PageRequest) (*pagination.PageResponse[models.RecommendationLog], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.RecommendationLog{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var logs []models.RecommendationLog
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(logs, page.Page, page.PageSize, totalItems)
	return &result, nil
}
