package models

// RecommendationLog records every served recommendation for auditability:
// which path produced the answer, for whom, and how long ranking took.
type RecommendationLog struct {
	Base
	UserID      string `gorm:"not null;index" json:"user_id"`
	Source      string `gorm:"not null" json:"source"`
	RiskProfile string `json:"risk_profile"`
	Requested   int    `gorm:"not null" json:"requested"`
	Returned    int    `gorm:"not null" json:"returned"`
	LatencyMS   int64  `json:"latency_ms"`
}
