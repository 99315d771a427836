package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"poolbook/internal/models"

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

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint, categoryType models.CategoryType) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, categoryType, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID uint, categoryType models.CategoryType, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestVendor creates a vendor.
func CreateTestVendor(t *testing.T, db *gorm.DB, userID uint) *models.Vendor {
	t.Helper()

	vendor := &models.Vendor{
		UserID: userID,
		Name:   fmt.Sprintf("Test Vendor %d", nextID()),
	}
	if err := db.Create(vendor).Error; err != nil {
		t.Fatalf("failed to create test vendor: %v", err)
	}
	return vendor
}

// CreateTestPool creates a pool of the given type.
func CreateTestPool(t *testing.T, db *gorm.DB, userID uint, poolType models.PoolType) *models.Pool {
	t.Helper()

	pool := &models.Pool{
		UserID: userID,
		Name:   fmt.Sprintf("Test Pool %d", nextID()),
		Type:   poolType,
	}
	if err := db.Create(pool).Error; err != nil {
		t.Fatalf("failed to create test pool: %v", err)
	}
	return pool
}

// CreateTestBudget creates a budget against the given pool.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, poolID uint, targetAmount int64, periodStart, periodEnd time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:       userID,
		PoolID:       poolID,
		Name:         fmt.Sprintf("Test Budget %d", nextID()),
		TargetAmount: targetAmount,
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestTransaction creates a transaction of the given type, amount (in
// cents), and date, with no category/vendor/pool references.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID: userID,
		Type:   txType,
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestCategorizedTransaction creates a transaction carrying the given
// category; the transaction type mirrors the category type.
func CreateTestCategorizedTransaction(t *testing.T, db *gorm.DB, userID uint, category *models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: &category.ID,
		Type:       models.TransactionType(category.Type),
		Amount:     amount,
		Date:       date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test categorized transaction: %v", err)
	}
	return tx
}

// CreateTestPooledTransaction creates a transaction of the given type
// referencing the given pool.
func CreateTestPooledTransaction(t *testing.T, db *gorm.DB, userID uint, pool *models.Pool, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID: userID,
		PoolID: &pool.ID,
		Type:   txType,
		Amount: amount,
		Date:   date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test pooled transaction: %v", err)
	}
	return tx
}

// CreateTestPayment creates a payment transaction to the given vendor.
func CreateTestPayment(t *testing.T, db *gorm.DB, userID uint, vendor *models.Vendor, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		VendorID: &vendor.ID,
		Type:     models.TransactionTypePayment,
		Amount:   amount,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return tx
}
