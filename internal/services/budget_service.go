package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget against a pool.
func (s *budgetService) CreateBudget(
	userID, poolID uint,
	name string,
	targetAmount int64,
	periodStart, periodEnd time.Time,
) (*models.Budget, error) {
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if periodEnd.Before(periodStart) {
		return nil, apperrors.ErrInvalidBudgetPeriod
	}

	// Verify pool exists and belongs to user
	var pool models.Pool
	if err := s.db.Where("id = ? AND user_id = ?", poolID, userID).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPoolNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget := &models.Budget{
		UserID:       userID,
		PoolID:       poolID,
		Name:         name,
		TargetAmount: targetAmount,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns all budgets for the user with their pools preloaded.
func (s *budgetService) GetUserBudgets(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Preload("Pool").Where("user_id = ?", userID).Order("period_start DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Preload("Pool").Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(
	userID, budgetID uint,
	name string,
	targetAmount *int64,
	periodEnd *time.Time,
) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if targetAmount != nil && *targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if periodEnd != nil && periodEnd.Before(budget.PeriodStart) {
		return nil, apperrors.ErrInvalidBudgetPeriod
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if targetAmount != nil {
		updates["target_amount"] = *targetAmount
	}
	if periodEnd != nil {
		updates["period_end"] = periodEnd
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetProgress sums the pool's transactions inside the budget window and
// compares the result against the target. Pools are type-agnostic, so all
// transaction types referencing the pool count toward the actual amount.
func (s *budgetService) GetBudgetProgress(userID, budgetID uint) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	var actual int64
	err = s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND pool_id = ? AND date BETWEEN ? AND ?",
			userID, budget.PoolID, budget.PeriodStart, budget.PeriodEnd).
		Scan(&actual).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	remaining := budget.TargetAmount - actual
	var percentage float64
	if budget.TargetAmount > 0 {
		percentage = float64(actual) / float64(budget.TargetAmount) * 100
	}

	return &BudgetProgress{
		BudgetID:   budget.ID,
		Target:     budget.TargetAmount,
		Actual:     actual,
		Remaining:  remaining,
		Percentage: percentage,
	}, nil
}
