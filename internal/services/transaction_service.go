package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"wealthwise/internal/analytics"
	"wealthwise/internal/category"
	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/export"
	"wealthwise/internal/models"
	"wealthwise/internal/pagination"
	"wealthwise/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction records a new income or expense and applies its
// effect to the referenced account's balance. Both mutations run in one
// database transaction: the atomic unit is the user action, and no
// partially applied state is ever persisted.
func (s *transactionService) CreateTransaction(
	userID, accountID string,
	amount int64,
	kind models.TransactionKind,
	categoryID, date, note string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if kind != models.TransactionKindIncome && kind != models.TransactionKindExpense {
		return nil, apperrors.ErrInvalidKind
	}
	if !category.Valid(categoryID, category.Kind(kind)) {
		return nil, apperrors.ErrUnknownCategory
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	// The account must exist and belong to the user at creation time.
	if _, err := s.accountService.GetAccountByID(userID, accountID); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
		Category:  categoryID,
		Date:      date,
		Note:      note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.ApplyTransaction(tx, userID, accountID, kind, amount)
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, most recent date first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Kind != nil {
		q = q.Where("kind = ?", *f.Kind)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.Month != nil {
		q = q.Where("date LIKE ?", *f.Month+"%")
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.Search != nil {
		pattern := "%" + *f.Search + "%"
		q = q.Where("category LIKE ? OR note LIKE ?", pattern, pattern)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction and exactly reverses its prior
// effect on the referenced account's balance, in one database
// transaction. If the account was deleted since, the reversal is a
// silent no-op.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.accountService.ReverseTransaction(tx, userID, transaction.AccountID, transaction.Kind, transaction.Amount)
	})
}

// ExportCSV renders the user's full transaction history as delimited
// text, most recent date first.
func (s *transactionService) ExportCSV(userID string) (string, error) {
	snap := store.Load(s.db, userID)
	ordered := analytics.RecentTransactions(snap.Transactions, len(snap.Transactions))
	return export.CSV(ordered, snap.Accounts), nil
}
