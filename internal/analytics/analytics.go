// Package analytics derives aggregate views from a user's financial data.
//
// Every function here is pure and stateless: it takes a snapshot of the
// entity collections and recomputes from scratch. The inputs are small
// (single user, hundreds of records), so there is no caching and no
// invalidation to get wrong.
package analytics

import (
	"sort"
	"strings"

	"wealthwise/internal/models"
)

// TotalBalance sums the balance of all accounts.
func TotalBalance(accounts []models.Account) int64 {
	var total int64
	for _, a := range accounts {
		total += a.Balance
	}
	return total
}

// MonthFilter returns the transactions dated in the given year-month
// ("2006-01"), preserving the original order.
func MonthFilter(transactions []models.Transaction, yearMonth string) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		if strings.HasPrefix(t.Date, yearMonth) {
			out = append(out, t)
		}
	}
	return out
}

// MonthlyIncome sums income transaction amounts for the given year-month.
func MonthlyIncome(transactions []models.Transaction, yearMonth string) int64 {
	return monthlyTotal(transactions, yearMonth, models.TransactionKindIncome)
}

// MonthlyExpense sums expense transaction amounts for the given year-month.
func MonthlyExpense(transactions []models.Transaction, yearMonth string) int64 {
	return monthlyTotal(transactions, yearMonth, models.TransactionKindExpense)
}

func monthlyTotal(transactions []models.Transaction, yearMonth string, kind models.TransactionKind) int64 {
	var total int64
	for _, t := range MonthFilter(transactions, yearMonth) {
		if t.Kind == kind {
			total += t.Amount
		}
	}
	return total
}

// Consumption describes how much of a budget's limit has been spent.
type Consumption struct {
	Spent   int64   `json:"spent"`
	Percent float64 `json:"percent"`
}

// BudgetConsumption computes spending against a budget for the given
// year-month: the sum of expense transactions in the budget's category,
// and that sum as a percentage of the monthly limit.
//
// A limit of zero is not guarded: the division yields +Inf, which the
// warning threshold below treats as over-budget and which display code
// clamps. This mirrors how the data behaves when a degenerate budget
// slips in, rather than inventing an error path for it.
func BudgetConsumption(budget models.Budget, transactions []models.Transaction, yearMonth string) Consumption {
	var spent int64
	for _, t := range MonthFilter(transactions, yearMonth) {
		if t.Kind == models.TransactionKindExpense && t.Category == budget.Category {
			spent += t.Amount
		}
	}
	return Consumption{
		Spent:   spent,
		Percent: float64(spent) / float64(budget.MonthlyLimit) * 100,
	}
}

// BudgetWarning pairs a budget with its consumption for alerting.
type BudgetWarning struct {
	Budget  models.Budget `json:"budget"`
	Spent   int64         `json:"spent"`
	Percent float64       `json:"percent"`
}

// warningThreshold is the consumption percentage above which a budget is
// surfaced on the dashboard.
const warningThreshold = 80

// BudgetWarnings returns the budgets whose consumption for the given
// year-month exceeds the warning threshold. +Inf percentages (zero
// limits) compare greater than the threshold and are included.
func BudgetWarnings(budgets []models.Budget, transactions []models.Transaction, yearMonth string) []BudgetWarning {
	var out []BudgetWarning
	for _, b := range budgets {
		c := BudgetConsumption(b, transactions, yearMonth)
		if c.Percent > warningThreshold {
			out = append(out, BudgetWarning{Budget: b, Spent: c.Spent, Percent: c.Percent})
		}
	}
	return out
}

// GoalProgress returns the raw completion percentage of a goal,
// unclamped: an overfunded goal reads above 100.
func GoalProgress(goal models.Goal) float64 {
	return float64(goal.CurrentAmount) / float64(goal.TargetAmount) * 100
}

// ClampPercent bounds a percentage to [0, 100] for display width only.
// Stored and reported raw values are never clamped.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// CategoryBreakdown sums expense amounts by category across all
// transactions. Keys are stable category ids; aggregation order is
// irrelevant since results are keyed.
func CategoryBreakdown(transactions []models.Transaction) map[string]int64 {
	out := make(map[string]int64)
	for _, t := range transactions {
		if t.Kind == models.TransactionKindExpense {
			out[t.Category] += t.Amount
		}
	}
	return out
}

// RecentTransactions returns up to n transactions sorted by date
// descending. ISO dates compare lexicographically, so string comparison
// is chronological; same-day entries keep their insertion order.
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
