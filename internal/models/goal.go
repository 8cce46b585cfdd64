package models

// Goal represents a savings goal.
//
// CurrentAmount is mutated directly by deposit actions; it is not derived
// from transactions. The stored value is never clamped, so a goal can be
// recorded as over target; clamping happens only at render time.
type Goal struct {
	Base
	UserID        string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string `gorm:"not null" json:"name"`
	TargetAmount  int64  `gorm:"type:bigint;not null" json:"target_amount"`
	CurrentAmount int64  `gorm:"type:bigint;not null;default:0" json:"current_amount"`
	Deadline      string `gorm:"size:10" json:"deadline"`
	Color         string `json:"color"`
}
