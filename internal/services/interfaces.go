package services

import (
	"context"

	"gorm.io/gorm"

	"wealthwise/internal/analytics"
	"wealthwise/internal/models"
	"wealthwise/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// AccountUpdateFields holds the optional fields for an account update.
// Nil pointers mean "leave unchanged".
type AccountUpdateFields struct {
	Name     *string
	BankName *string
	Color    *string
	Balance  *int64
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, name, bankName, color string, initialBalance int64) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
	ApplyTransaction(tx *gorm.DB, userID, accountID string, kind models.TransactionKind, amount int64) error
	ReverseTransaction(tx *gorm.DB, userID, accountID string, kind models.TransactionKind, amount int64) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Kind      *models.TransactionKind
	Category  *string
	Month     *string // year-month prefix, e.g. "2024-05"
	AccountID *string
	Search    *string // substring match over category id and note
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, accountID string, amount int64, kind models.TransactionKind, categoryID, date, note string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	ExportCSV(userID string) (string, error)
}

// BudgetStatus pairs a budget with its computed consumption for a month.
type BudgetStatus struct {
	Budget  models.Budget `json:"budget"`
	Spent   int64         `json:"spent"`
	Percent float64       `json:"percent"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, categoryID string, monthlyLimit int64, period string) (*models.Budget, error)
	GetUserBudgets(userID, yearMonth string) ([]BudgetStatus, error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// GoalStatus pairs a goal with its completion percentage. Percent is the
// raw unclamped value; DisplayPercent is bounded to [0, 100] for
// progress-bar widths.
type GoalStatus struct {
	Goal           models.Goal `json:"goal"`
	Percent        float64     `json:"percent"`
	DisplayPercent float64     `json:"display_percent"`
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(userID, name string, targetAmount int64, deadline, color string) (*models.Goal, error)
	GetUserGoals(userID string) ([]GoalStatus, error)
	DepositToGoal(userID, goalID string, amount int64) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
}

// Summary is the dashboard view: everything derived for one month.
type Summary struct {
	YearMonth          string                    `json:"year_month"`
	TotalBalance       int64                     `json:"total_balance"`
	MonthlyIncome      int64                     `json:"monthly_income"`
	MonthlyExpense     int64                     `json:"monthly_expense"`
	BudgetWarnings     []analytics.BudgetWarning `json:"budget_warnings"`
	Goals              []GoalStatus              `json:"goals"`
	RecentTransactions []models.Transaction      `json:"recent_transactions"`
}

// CategorySlice is one wedge of the expense breakdown chart.
type CategorySlice struct {
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	Amount      int64  `json:"amount"`
}

// SummaryServicer derives aggregate views from the entity store.
type SummaryServicer interface {
	GetSummary(userID, yearMonth string) (*Summary, error)
	GetCategoryBreakdown(userID string) ([]CategorySlice, error)
}

// AdviceServicer produces the AI advisory text for a user.
type AdviceServicer interface {
	GetAdvice(ctx context.Context, userID string) string
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
