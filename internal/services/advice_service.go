package services

import (
	"context"

	"gorm.io/gorm"

	"wealthwise/internal/store"
)

// snapshotAdvisor is the seam over the advisor package so handler tests
// can stub the outbound call.
type snapshotAdvisor interface {
	RequestAdvice(ctx context.Context, snap store.Snapshot) string
}

// adviceService loads a snapshot of the user's finances and hands it to
// the advisor for a natural-language review.
type adviceService struct {
	db      *gorm.DB
	advisor snapshotAdvisor
}

// NewAdviceService creates a new AdviceServicer.
func NewAdviceService(db *gorm.DB, advisor snapshotAdvisor) AdviceServicer {
	return &adviceService{db: db, advisor: advisor}
}

// GetAdvice returns advice text for the user. It never fails: snapshot
// loading tolerates partial data and the advisor degrades to its
// fallback message on any error.
func (s *adviceService) GetAdvice(ctx context.Context, userID string) string {
	snap := store.Load(s.db, userID)
	return s.advisor.RequestAdvice(ctx, snap)
}
