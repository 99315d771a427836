package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
)

// poolService handles pool-related business logic.
type poolService struct {
	db *gorm.DB
}

// NewPoolService creates a new PoolServicer.
func NewPoolService(db *gorm.DB) PoolServicer {
	return &poolService{db: db}
}

// CreatePool creates a new pool
func (s *poolService) CreatePool(userID uint, name string, poolType models.PoolType, description string) (*models.Pool, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "pool name is required")
	}

	var count int64
	if err := s.db.Model(&models.Pool{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "pool with this name already exists")
	}

	pool := &models.Pool{
		UserID:      userID,
		Name:        name,
		Type:        poolType,
		Description: description,
	}

	if err := s.db.Create(pool).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return pool, nil
}

// GetUserPools retrieves all pools for a user.
func (s *poolService) GetUserPools(userID uint) ([]models.Pool, error) {
	var pools []models.Pool
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&pools).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return pools, nil
}

// GetPoolByID retrieves a pool by ID for a specific user
func (s *poolService) GetPoolByID(userID, poolID uint) (*models.Pool, error) {
	var pool models.Pool
	if err := s.db.Where("id = ? AND user_id = ?", poolID, userID).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPoolNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &pool, nil
}

// UpdatePool updates an existing pool. The pool's type is fixed at creation.
func (s *poolService) UpdatePool(userID, poolID uint, name, description string) (*models.Pool, error) {
	pool, err := s.GetPoolByID(userID, poolID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}

	if len(updates) > 0 {
		if err := s.db.Model(pool).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return pool, nil
}

// DeletePool deletes a pool. Deletion is blocked while transactions or
// budgets still reference the pool.
func (s *poolService) DeletePool(userID, poolID uint) error {
	pool, err := s.GetPoolByID(userID, poolID)
	if err != nil {
		return err
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).Where("pool_id = ?", poolID).Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrPoolInUse
	}

	var budgetCount int64
	if err := s.db.Model(&models.Budget{}).Where("pool_id = ?", poolID).Count(&budgetCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if budgetCount > 0 {
		return apperrors.ErrPoolInUse
	}

	if err := s.db.Delete(pool).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
