package services

import (
	"strings"
	"testing"

	"wealthwise/internal/models"
	"wealthwise/internal/pagination"
	"wealthwise/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("income_increases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		tx, err := txSvc.CreateTransaction(user.ID, account.ID, 5000, models.TransactionKindIncome, "salary", "2024-05-01", "五月薪資")
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.Amount != 5000 {
			t.Errorf("expected amount 5000, got %d", tx.Amount)
		}

		updated, err := acctSvc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 5000 {
			t.Errorf("expected balance 5000, got %d", updated.Balance)
		}
	})

	t.Run("expense_decreases_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)

		_, err := txSvc.CreateTransaction(user.ID, account.ID, 200, models.TransactionKindExpense, "food", "2024-05-02", "午餐")
		testutil.AssertNoError(t, err)

		updated, err := acctSvc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 800 {
			t.Errorf("expected balance 800, got %d", updated.Balance)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		_, err := txSvc.CreateTransaction(user.ID, account.ID, 0, models.TransactionKindIncome, "salary", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		_, err := txSvc.CreateTransaction(user.ID, account.ID, 100, models.TransactionKind("transfer"), "salary", "", "")
		testutil.AssertAppError(t, err, "INVALID_KIND")
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		_, err := txSvc.CreateTransaction(user.ID, account.ID, 100, models.TransactionKindExpense, "lottery", "", "")
		testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY")
	})

	t.Run("category_kind_mismatch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		// salary is an income category, not valid for an expense
		_, err := txSvc.CreateTransaction(user.ID, account.ID, 100, models.TransactionKindExpense, "salary", "", "")
		testutil.AssertAppError(t, err, "UNKNOWN_CATEGORY")
	})

	t.Run("invalid_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, "00000000-0000-0000-0000-000000000000", 1000, models.TransactionKindIncome, "salary", "", "")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("wrong_user_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user1.ID)

		_, err := txSvc.CreateTransaction(user2.ID, account.ID, 1000, models.TransactionKindIncome, "salary", "", "")
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("defaults_date_to_today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		tx, err := txSvc.CreateTransaction(user.ID, account.ID, 100, models.TransactionKindIncome, "bonus", "", "")
		testutil.AssertNoError(t, err)
		if len(tx.Date) != 10 || tx.Date[4] != '-' || tx.Date[7] != '-' {
			t.Errorf("expected ISO date, got %q", tx.Date)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("restores_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)

		tx, err := txSvc.CreateTransaction(user.ID, account.ID, 200, models.TransactionKindExpense, "food", "2024-05-02", "")
		testutil.AssertNoError(t, err)

		updated, err := acctSvc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 800 {
			t.Fatalf("expected balance 800 after expense, got %d", updated.Balance)
		}

		testutil.AssertNoError(t, txSvc.DeleteTransaction(user.ID, tx.ID))

		updated, err = acctSvc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 1000 {
			t.Errorf("expected balance 1000 after delete, got %d", updated.Balance)
		}

		_, err = txSvc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("dangling_account_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)

		tx, err := txSvc.CreateTransaction(user.ID, account.ID, 300, models.TransactionKindExpense, "shopping", "2024-05-03", "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, acctSvc.DeleteAccount(user.ID, account.ID))

		// The transaction outlives the account and can still be deleted.
		testutil.AssertNoError(t, txSvc.DeleteTransaction(user.ID, tx.ID))
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)

		err := txSvc.DeleteTransaction(user.ID, "00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestGetUserTransactions(t *testing.T) {
	t.Run("filters_by_month_and_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindIncome, "salary", 5000, "2024-05-01")
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 120, "2024-05-10")
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 80, "2024-06-01")

		month := "2024-05"
		kind := models.TransactionKindExpense
		result, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Month: &month, Kind: &kind})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(result.Data))
		}
		if result.Data[0].Amount != 120 {
			t.Errorf("expected amount 120, got %d", result.Data[0].Amount)
		}
	})

	t.Run("ordered_by_date_desc", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 1, "2024-05-03")
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 2, "2024-05-07")
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 3, "2024-05-05")

		result, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(result.Data))
		}
		for i := 1; i < len(result.Data); i++ {
			if result.Data[i-1].Date < result.Data[i].Date {
				t.Errorf("transactions out of order: %s before %s", result.Data[i-1].Date, result.Data[i].Date)
			}
		}
	})

	t.Run("search_matches_note", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		tx := testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 250, "2024-05-01")
		tx.Note = "便利商店晚餐"
		testutil.AssertNoError(t, db.Save(tx).Error)
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "transport", 30, "2024-05-02")

		search := "晚餐"
		result, err := txSvc.GetUserTransactions(user.ID, pagination.PageRequest{}, TransactionFilter{Search: &search})
		testutil.AssertNoError(t, err)

		if len(result.Data) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(result.Data))
		}
		if result.Data[0].Category != "food" {
			t.Errorf("expected food transaction, got %s", result.Data[0].Category)
		}
	})

	t.Run("isolated_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account1 := testutil.CreateTestAccount(t, db, user1.ID)

		testutil.CreateTestTransactionOnDate(t, db, user1.ID, account1.ID, models.TransactionKindExpense, "food", 100, "2024-05-01")

		result, err := txSvc.GetUserTransactions(user2.ID, pagination.PageRequest{}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 {
			t.Errorf("expected no transactions for other user, got %d", len(result.Data))
		}
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("renders_rows_with_display_names", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)

		account, err := acctSvc.CreateAccount(user.ID, "薪資帳戶", "玉山銀行", "#4f46e5", 0)
		testutil.AssertNoError(t, err)
		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "transport", 120, "2024-05-01")

		content, err := txSvc.ExportCSV(user.ID)
		testutil.AssertNoError(t, err)

		lines := strings.Split(strings.TrimSpace(content), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected header plus one row, got %d lines", len(lines))
		}
		if lines[0] != "日期,分類,類型,帳戶,備註,金額" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if lines[1] != "2024-05-01,交通,支出,薪資帳戶,,120" {
			t.Errorf("unexpected row: %s", lines[1])
		}
	})

	t.Run("unknown_account_placeholder", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		testutil.CreateTestTransactionOnDate(t, db, user.ID, account.ID, models.TransactionKindExpense, "food", 50, "2024-05-01")
		testutil.AssertNoError(t, acctSvc.DeleteAccount(user.ID, account.ID))

		content, err := txSvc.ExportCSV(user.ID)
		testutil.AssertNoError(t, err)

		if !strings.Contains(content, "未知") {
			t.Errorf("expected deleted account to render as 未知, got:\n%s", content)
		}
	})
}
