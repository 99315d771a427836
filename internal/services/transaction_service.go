package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "poolbook/internal/errors"
	"poolbook/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new transaction for the user. Categories are
// only valid on income/expense/credit transactions and must match the
// transaction type; vendors are only valid on payments. Pools are accepted
// regardless of the pool's type.
func (s *transactionService) CreateTransaction(
	userID uint,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
	categoryID, vendorID, poolID *uint,
	associatedPerson string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense,
		models.TransactionTypeCredit, models.TransactionTypePayment:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	if categoryID != nil {
		if transactionType == models.TransactionTypePayment {
			return nil, apperrors.ErrCategoryOnPayment
		}
		var category models.Category
		if err := s.db.Where("id = ? AND user_id = ?", *categoryID, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if string(category.Type) != string(transactionType) {
			return nil, apperrors.ErrCategoryTypeMismatch
		}
	}

	if vendorID != nil {
		if transactionType != models.TransactionTypePayment {
			return nil, apperrors.ErrVendorOnNonPayment
		}
		var vendor models.Vendor
		if err := s.db.Where("id = ? AND user_id = ?", *vendorID, userID).First(&vendor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrVendorNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if poolID != nil {
		var pool models.Pool
		if err := s.db.Where("id = ? AND user_id = ?", *poolID, userID).First(&pool).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPoolNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	transaction := &models.Transaction{
		UserID:           userID,
		PoolID:           poolID,
		CategoryID:       categoryID,
		VendorID:         vendorID,
		Type:             transactionType,
		Amount:           amount,
		Description:      description,
		Date:             date,
		AssociatedPerson: associatedPerson,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a filtered list of the user's transactions,
// newest first.
func (s *transactionService) GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var transactions []models.Transaction
	if err := base.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PoolID != nil {
		q = q.Where("pool_id = ?", *f.PoolID)
	}
	if f.VendorID != nil {
		q = q.Where("vendor_id = ?", *f.VendorID)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction soft-deletes a transaction. Deleted transactions drop out
// of all reports immediately.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
