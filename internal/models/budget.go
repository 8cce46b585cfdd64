package models

// Budget represents a monthly spending limit for one expense category.
// At most one budget per category may exist at a time; this is enforced
// at creation. Consumption against the limit is always computed from
// transactions, never stored.
type Budget struct {
	Base
	UserID       string `gorm:"type:uuid;not null;index" json:"user_id"`
	Category     string `gorm:"not null" json:"category"`
	MonthlyLimit int64  `gorm:"type:bigint;not null" json:"monthly_limit"`
	Period       string `gorm:"size:7;not null" json:"period"` // year-month, e.g. "2024-05"
}
