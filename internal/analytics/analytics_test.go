package analytics

import (
	"math"
	"testing"

	"wealthwise/internal/models"
)

func tx(kind models.TransactionKind, category string, amount int64, date string) models.Transaction {
	return models.Transaction{Kind: kind, Category: category, Amount: amount, Date: date}
}

func TestTotalBalance(t *testing.T) {
	accounts := []models.Account{
		{Balance: 1000},
		{Balance: -250},
		{Balance: 4250},
	}
	if got := TotalBalance(accounts); got != 5000 {
		t.Errorf("expected 5000, got %d", got)
	}

	if got := TotalBalance(nil); got != 0 {
		t.Errorf("expected 0 for no accounts, got %d", got)
	}
}

func TestMonthlyTotals(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionKindIncome, "salary", 5000, "2024-05-01"),
		tx(models.TransactionKindIncome, "bonus", 1000, "2024-05-15"),
		tx(models.TransactionKindExpense, "food", 1200, "2024-05-10"),
		tx(models.TransactionKindExpense, "food", 999, "2024-06-01"),
		tx(models.TransactionKindIncome, "salary", 5000, "2024-04-30"),
	}

	if got := MonthlyIncome(transactions, "2024-05"); got != 6000 {
		t.Errorf("expected income 6000, got %d", got)
	}
	if got := MonthlyExpense(transactions, "2024-05"); got != 1200 {
		t.Errorf("expected expense 1200, got %d", got)
	}

	// A month with no activity reports zero, not an error.
	if got := MonthlyIncome(transactions, "2024-07"); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestBudgetConsumption(t *testing.T) {
	budget := models.Budget{Category: "food", MonthlyLimit: 1000}

	t.Run("sums_matching_expenses", func(t *testing.T) {
		transactions := []models.Transaction{
			tx(models.TransactionKindExpense, "food", 500, "2024-05-03"),
			tx(models.TransactionKindExpense, "food", 350, "2024-05-20"),
			tx(models.TransactionKindExpense, "transport", 400, "2024-05-10"),
			tx(models.TransactionKindExpense, "food", 999, "2024-06-01"),
			tx(models.TransactionKindIncome, "salary", 5000, "2024-05-01"),
		}

		c := BudgetConsumption(budget, transactions, "2024-05")
		if c.Spent != 850 {
			t.Errorf("expected spent 850, got %d", c.Spent)
		}
		if c.Percent != 85 {
			t.Errorf("expected percent 85, got %f", c.Percent)
		}
	})

	t.Run("monotonic_in_spending", func(t *testing.T) {
		var transactions []models.Transaction
		prev := 0.0
		for i := 0; i < 10; i++ {
			transactions = append(transactions, tx(models.TransactionKindExpense, "food", 100, "2024-05-01"))
			c := BudgetConsumption(budget, transactions, "2024-05")
			if c.Percent < prev {
				t.Fatalf("percent decreased from %f to %f after adding spending", prev, c.Percent)
			}
			prev = c.Percent
		}
	})

	t.Run("zero_limit", func(t *testing.T) {
		degenerate := models.Budget{Category: "food", MonthlyLimit: 0}
		c := BudgetConsumption(degenerate, []models.Transaction{
			tx(models.TransactionKindExpense, "food", 1, "2024-05-01"),
		}, "2024-05")
		if !math.IsInf(c.Percent, 1) {
			t.Errorf("expected +Inf, got %f", c.Percent)
		}
	})
}

func TestBudgetWarnings(t *testing.T) {
	budgets := []models.Budget{
		{Category: "food", MonthlyLimit: 1000},
		{Category: "transport", MonthlyLimit: 1000},
		{Category: "shopping", MonthlyLimit: 0},
	}
	transactions := []models.Transaction{
		tx(models.TransactionKindExpense, "food", 850, "2024-05-05"),
		tx(models.TransactionKindExpense, "transport", 800, "2024-05-05"),
		tx(models.TransactionKindExpense, "shopping", 1, "2024-05-05"),
	}

	warnings := BudgetWarnings(budgets, transactions, "2024-05")

	// food at 85% warns, transport at exactly 80% does not, zero-limit
	// shopping is +Inf and warns.
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Budget.Category != "food" {
		t.Errorf("expected food warning first, got %s", warnings[0].Budget.Category)
	}
	if warnings[1].Budget.Category != "shopping" {
		t.Errorf("expected shopping warning, got %s", warnings[1].Budget.Category)
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(models.Goal{CurrentAmount: 5000, TargetAmount: 10000}); got != 50 {
		t.Errorf("expected 50, got %f", got)
	}
	if got := GoalProgress(models.Goal{CurrentAmount: 12000, TargetAmount: 10000}); got != 120 {
		t.Errorf("expected raw 120, got %f", got)
	}
	if got := ClampPercent(120); got != 100 {
		t.Errorf("expected clamp to 100, got %f", got)
	}
	if got := ClampPercent(-5); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionKindExpense, "food", 300, "2024-05-01"),
		tx(models.TransactionKindExpense, "food", 200, "2024-06-01"),
		tx(models.TransactionKindExpense, "transport", 100, "2024-05-02"),
		tx(models.TransactionKindIncome, "salary", 9999, "2024-05-01"),
	}

	totals := CategoryBreakdown(transactions)

	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals["food"] != 500 {
		t.Errorf("expected food 500, got %d", totals["food"])
	}
	if totals["transport"] != 100 {
		t.Errorf("expected transport 100, got %d", totals["transport"])
	}
}

func TestRecentTransactions(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionKindExpense, "food", 1, "2024-05-03"),
		tx(models.TransactionKindExpense, "food", 2, "2024-05-07"),
		tx(models.TransactionKindExpense, "food", 3, "2024-05-05"),
		tx(models.TransactionKindExpense, "food", 4, "2024-05-07"),
	}

	recent := RecentTransactions(transactions, 3)

	if len(recent) != 3 {
		t.Fatalf("expected 3, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i-1].Date < recent[i].Date {
			t.Errorf("out of order: %s before %s", recent[i-1].Date, recent[i].Date)
		}
	}
	// Same-day entries keep insertion order.
	if recent[0].Amount != 2 || recent[1].Amount != 4 {
		t.Errorf("expected stable order within 2024-05-07, got %d then %d", recent[0].Amount, recent[1].Amount)
	}

	// The input slice is left untouched.
	if transactions[0].Date != "2024-05-03" {
		t.Error("input slice was mutated")
	}

	if got := RecentTransactions(transactions, 100); len(got) != 4 {
		t.Errorf("expected all 4 when n exceeds length, got %d", len(got))
	}
}
