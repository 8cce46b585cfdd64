package models

// TransactionKind represents the income/expense classification of a transaction.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Transaction represents a single income or expense record.
//
// Amount is a positive magnitude; the sign comes from Kind. Date is a
// calendar day in ISO form ("2006-01-02") so that lexicographic ordering
// and year-month prefix filtering match chronological semantics exactly.
// Transactions are immutable once created except by full deletion, which
// must reverse the effect on the referenced account's balance.
type Transaction struct {
	Base
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount    int64           `gorm:"type:bigint;not null" json:"amount"`
	Kind      TransactionKind `gorm:"not null" json:"kind"`
	Category  string          `gorm:"not null" json:"category"`
	Date      string          `gorm:"size:10;not null;index" json:"date"`
	Note      string          `json:"note"`
}
