package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"wealthwise/internal/logger"
	"wealthwise/internal/models"
)

// auditService records who changed what. Logging is best-effort: a
// failed audit write must never fail the user action it describes.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit entry.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}

	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Warnw("failed to marshal audit changes", "error", err)
		} else {
			entry.Changes = string(data)
		}
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Warnw("failed to write audit log", "error", err, "action", action)
	}
}
