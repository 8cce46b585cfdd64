package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"wealthwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: "Test User",
		IsActive:    true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, userID, 0)
}

// CreateTestAccountWithBalance creates an account with the given balance.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		BankName: "Test Bank",
		Color:    "#4f46e5",
		Balance:  balance,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction of the given kind and amount.
// The date defaults to today.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, kind models.TransactionKind, category string, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOnDate(t, db, userID, accountID, kind, category, amount, time.Now().Format("2006-01-02"))
}

// CreateTestTransactionOnDate creates a transaction with an explicit date.
func CreateTestTransactionOnDate(t *testing.T, db *gorm.DB, userID, accountID string, kind models.TransactionKind, category string, amount int64, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Kind:      kind,
		Category:  category,
		Amount:    amount,
		Date:      date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string, monthlyLimit int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Period:       time.Now().Format("2006-01"),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates a savings goal with the given target.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, targetAmount int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
		Deadline:     "2030-12-31",
		Color:        "#10b981",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
