package models

// Account represents a bank account owned by a user.
//
// Balance is a running total in minor currency units. It is mutated only
// by applying or reversing transactions, plus the initial value set at
// creation. The invariant is best-effort: deleting an account leaves its
// transactions dangling rather than cascading.
type Account struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	BankName string `json:"bank_name"`
	Color    string `json:"color"`
	Balance  int64  `gorm:"type:bigint;not null;default:0" json:"balance"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
