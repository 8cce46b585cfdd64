package services

import (
	"errors"

	"gorm.io/gorm"

	"wealthwise/internal/analytics"
	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/models"
)

// goalService handles savings-goal business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal creates a new savings goal starting at zero.
func (s *goalService) CreateGoal(userID, name string, targetAmount int64, deadline, color string) (*models.Goal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: 0,
		Deadline:      deadline,
		Color:         color,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns the user's goals with completion percentages.
func (s *goalService) GetUserGoals(userID string) ([]GoalStatus, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	statuses := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		p := analytics.GoalProgress(g)
		statuses = append(statuses, GoalStatus{
			Goal:           g,
			Percent:        p,
			DisplayPercent: analytics.ClampPercent(p),
		})
	}
	return statuses, nil
}

// DepositToGoal adds amount to a goal's accumulated total. The stored
// value is not clamped, so a goal can be funded past its target.
func (s *goalService) DepositToGoal(userID, goalID string, amount int64) (*models.Goal, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit amount must be greater than zero")
	}

	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount += amount
	if err := s.db.Model(goal).Update("current_amount", goal.CurrentAmount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *goalService) getGoalByID(userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}
