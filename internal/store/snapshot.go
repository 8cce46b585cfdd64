// Package store loads point-in-time snapshots of a user's financial data.
//
// A Snapshot is the unit handed to the aggregation, export, and advisory
// layers: those consumers are pure over its contents and never touch
// persistence themselves. Collections are scoped to one user and fully
// swapped out with the identity; there is no cross-user sharing.
package store

import (
	"wealthwise/internal/logger"
	"wealthwise/internal/models"

	"gorm.io/gorm"
)

// Snapshot is the full current contents of one user's entity collections.
type Snapshot struct {
	Accounts     []models.Account     `json:"accounts"`
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	Goals        []models.Goal        `json:"goals"`
}

// Load reads all four collections for userID. A collection that fails to
// load is returned empty rather than surfacing an error: missing or
// corrupt records degrade to "no data", never to a failure the user sees.
func Load(db *gorm.DB, userID string) Snapshot {
	var snap Snapshot

	if err := db.Where("user_id = ?", userID).Find(&snap.Accounts).Error; err != nil {
		logger.Get().Warnw("snapshot: loading accounts failed", "user_id", userID, "error", err)
		snap.Accounts = []models.Account{}
	}
	if err := db.Where("user_id = ?", userID).Order("created_at").Find(&snap.Transactions).Error; err != nil {
		logger.Get().Warnw("snapshot: loading transactions failed", "user_id", userID, "error", err)
		snap.Transactions = []models.Transaction{}
	}
	if err := db.Where("user_id = ?", userID).Find(&snap.Budgets).Error; err != nil {
		logger.Get().Warnw("snapshot: loading budgets failed", "user_id", userID, "error", err)
		snap.Budgets = []models.Budget{}
	}
	if err := db.Where("user_id = ?", userID).Find(&snap.Goals).Error; err != nil {
		logger.Get().Warnw("snapshot: loading goals failed", "user_id", userID, "error", err)
		snap.Goals = []models.Goal{}
	}

	return snap
}
