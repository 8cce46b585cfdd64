package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"wealthwise/internal/analytics"
	"wealthwise/internal/category"
	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a monthly spending limit for an expense category.
// At most one budget per category may exist at a time.
func (s *budgetService) CreateBudget(userID, categoryID string, monthlyLimit int64, period string) (*models.Budget, error) {
	if !category.Valid(categoryID, category.KindExpense) {
		return nil, apperrors.ErrUnknownCategory
	}
	if period == "" {
		period = time.Now().Format("2006-01")
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     categoryID,
		MonthlyLimit: monthlyLimit,
		Period:       period,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns the user's budgets with their consumption for
// the given year-month. Consumption is always recomputed, never stored.
func (s *budgetService) GetUserBudgets(userID, yearMonth string) ([]BudgetStatus, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ? AND date LIKE ?", userID, yearMonth+"%").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		c := analytics.BudgetConsumption(b, transactions, yearMonth)
		statuses = append(statuses, BudgetStatus{Budget: b, Spent: c.Spent, Percent: c.Percent})
	}
	return statuses, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
