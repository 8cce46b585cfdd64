package services

import (
	"sort"

	"gorm.io/gorm"

	"wealthwise/internal/analytics"
	"wealthwise/internal/category"
	"wealthwise/internal/models"
	"wealthwise/internal/store"
)

// recentTransactionCount is how many transactions the dashboard shows.
const recentTransactionCount = 5

// summaryService derives aggregate views from a full snapshot of the
// user's data. Nothing here is persisted; every call recomputes from
// the current state.
type summaryService struct {
	db          *gorm.DB
	goalService GoalServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB, goalService GoalServicer) SummaryServicer {
	return &summaryService{db: db, goalService: goalService}
}

// GetSummary computes the dashboard view for the given year-month.
func (s *summaryService) GetSummary(userID, yearMonth string) (*Summary, error) {
	snap := store.Load(s.db, userID)

	goals, err := s.goalService.GetUserGoals(userID)
	if err != nil {
		goals = []GoalStatus{}
	}

	return &Summary{
		YearMonth:          yearMonth,
		TotalBalance:       analytics.TotalBalance(snap.Accounts),
		MonthlyIncome:      analytics.MonthlyIncome(snap.Transactions, yearMonth),
		MonthlyExpense:     analytics.MonthlyExpense(snap.Transactions, yearMonth),
		BudgetWarnings:     analytics.BudgetWarnings(snap.Budgets, snap.Transactions, yearMonth),
		Goals:              goals,
		RecentTransactions: analytics.RecentTransactions(snap.Transactions, recentTransactionCount),
	}, nil
}

// GetCategoryBreakdown sums all-time expenses per category, largest
// first, for the report chart.
func (s *summaryService) GetCategoryBreakdown(userID string) ([]CategorySlice, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		transactions = nil
	}

	totals := analytics.CategoryBreakdown(transactions)

	slices := make([]CategorySlice, 0, len(totals))
	for id, amount := range totals {
		slices = append(slices, CategorySlice{
			Category:    id,
			DisplayName: category.DisplayName(id),
			Amount:      amount,
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Amount != slices[j].Amount {
			return slices[i].Amount > slices[j].Amount
		}
		return slices[i].Category < slices[j].Category
	})
	return slices, nil
}
