package services

import (
	"time"

	"poolbook/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(id uint, firstName, lastName string) (*models.User, error)
	DeleteUser(id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name string, categoryType models.CategoryType, description, icon, color string) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	GetUserCategoriesByType(userID uint, categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	UpdateCategory(userID, categoryID uint, name, description, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID uint) error
}

// VendorServicer defines the contract for vendor-related business logic.
type VendorServicer interface {
	CreateVendor(userID uint, name, description string) (*models.Vendor, error)
	GetUserVendors(userID uint) ([]models.Vendor, error)
	GetVendorByID(userID, vendorID uint) (*models.Vendor, error)
	UpdateVendor(userID, vendorID uint, name, description string) (*models.Vendor, error)
	DeleteVendor(userID, vendorID uint) error
}

// PoolServicer defines the contract for pool-related business logic.
type PoolServicer interface {
	CreatePool(userID uint, name string, poolType models.PoolType, description string) (*models.Pool, error)
	GetUserPools(userID uint) ([]models.Pool, error)
	GetPoolByID(userID, poolID uint) (*models.Pool, error)
	UpdatePool(userID, poolID uint, name, description string) (*models.Pool, error)
	DeletePool(userID, poolID uint) error
}

// BudgetProgress contains actual spending vs target for a budget's period.
type BudgetProgress struct {
	BudgetID   uint    `json:"budget_id"`
	Target     int64   `json:"target"`
	Actual     int64   `json:"actual"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, poolID uint, name string, targetAmount int64, periodStart, periodEnd time.Time) (*models.Budget, error)
	GetUserBudgets(userID uint) ([]models.Budget, error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	UpdateBudget(userID, budgetID uint, name string, targetAmount *int64, periodEnd *time.Time) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
	GetBudgetProgress(userID, budgetID uint) (*BudgetProgress, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *uint
	PoolID     *uint
	VendorID   *uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, description string, date time.Time, categoryID, vendorID, poolID *uint, associatedPerson string) (*models.Transaction, error)
	GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BreakdownEntry is one category or pool line of a monthly report.
// Type is copied from the category or pool, not from the transactions.
type BreakdownEntry struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	TotalAmount      int64  `json:"total_amount"`
	TransactionCount int64  `json:"transaction_count"`
}

// MonthlyReport contains aggregate totals and breakdowns for a single
// calendar month. All amounts are in minor units (cents).
type MonthlyReport struct {
	Year              int              `json:"year"`
	Month             int              `json:"month"`
	TotalIncome       int64            `json:"total_income"`
	TotalExpenses     int64            `json:"total_expenses"`
	TotalCredit       int64            `json:"total_credit"`
	TotalPayments     int64            `json:"total_payments"`
	NetAmount         int64            `json:"net_amount"`
	TransactionCount  int64            `json:"transaction_count"`
	CategoryBreakdown []BreakdownEntry `json:"category_breakdown"`
	PoolBreakdown     []BreakdownEntry `json:"pool_breakdown"`
}

// MonthTotal is one (year, month) bucket of a category's time series.
type MonthTotal struct {
	Year             int   `json:"year"`
	Month            int   `json:"month"`
	TotalAmount      int64 `json:"total_amount"`
	TransactionCount int64 `json:"transaction_count"`
}

// CategoryReportEntry contains aggregates for a single category.
// AverageAmount is the only floating value produced by the reporting core;
// it is derived from the integer totals at result-build time.
type CategoryReportEntry struct {
	CategoryID       uint                `json:"category_id"`
	CategoryName     string              `json:"category_name"`
	Type             models.CategoryType `json:"type"`
	TotalAmount      int64               `json:"total_amount"`
	TransactionCount int64               `json:"transaction_count"`
	AverageAmount    float64             `json:"average_amount"`
	MonthlyBreakdown []MonthTotal        `json:"monthly_breakdown"`
}

// TypeTotals buckets category totals by category type.
type TypeTotals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Credit  int64 `json:"credit"`
}

// CategoryReport contains per-category aggregates over an optional date range.
type CategoryReport struct {
	Categories   []CategoryReportEntry `json:"categories"`
	TotalsByType TypeTotals            `json:"totals_by_type"`
}

// ReportServicer defines the contract for report generation.
type ReportServicer interface {
	GetMonthlyReport(userID uint, year, month int) (*MonthlyReport, error)
	GetCategoryReport(userID uint, startDate, endDate *time.Time) (*CategoryReport, error)
}
