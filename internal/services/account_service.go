package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/models"
	"wealthwise/internal/pagination"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new bank account for a user.
func (s *accountService) CreateAccount(userID, name, bankName, color string, initialBalance int64) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	account := &models.Account{
		UserID:   userID,
		Name:     name,
		BankName: bankName,
		Color:    color,
		Balance:  initialBalance,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserAccounts retrieves a paginated list of accounts for a user.
func (s *accountService) GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	base := s.db.Model(&models.Account{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID for a specific user
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates an existing account. Only non-nil fields are
// applied. Setting Balance here resets the running total directly; it
// is the edit-form path, not the transaction path.
func (s *accountService) UpdateAccount(userID, accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.BankName != nil {
		updates["bank_name"] = *fields.BankName
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.Balance != nil {
		updates["balance"] = *fields.Balance
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount soft-deletes an account. Transactions referencing it are
// intentionally left in place; consumers tolerate the dangling reference.
func (s *accountService) DeleteAccount(userID, accountID string) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ApplyTransaction adjusts an account's balance for a new transaction:
// income adds the amount, expense subtracts it. A missing account is a
// silent no-op, since the transaction may reference an account deleted
// after the fact.
func (s *accountService) ApplyTransaction(tx *gorm.DB, userID, accountID string, kind models.TransactionKind, amount int64) error {
	return s.shiftBalance(tx, userID, accountID, signedDelta(kind, amount))
}

// ReverseTransaction undoes ApplyTransaction for a deleted transaction:
// income subtracts, expense adds back. Missing accounts are a no-op.
func (s *accountService) ReverseTransaction(tx *gorm.DB, userID, accountID string, kind models.TransactionKind, amount int64) error {
	return s.shiftBalance(tx, userID, accountID, -signedDelta(kind, amount))
}

func signedDelta(kind models.TransactionKind, amount int64) int64 {
	if kind == models.TransactionKindIncome {
		return amount
	}
	return -amount
}

func (s *accountService) shiftBalance(tx *gorm.DB, userID, accountID string, delta int64) error {
	var account models.Account
	if err := tx.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling account reference: tolerated, nothing to update.
			return nil
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	account.Balance += delta
	if err := tx.Model(&account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
