package models

// PoolType represents the type of pool
type PoolType string

const (
	PoolTypeIncome  PoolType = "income"
	PoolTypeExpense PoolType = "expense"
	PoolTypeCredit  PoolType = "credit"
	PoolTypePayment PoolType = "payment"
)

// Pool is a user-defined grouping label for transactions (e.g. "Household
// Bills"), independent of category. Unlike categories, a pool's type does not
// restrict which transactions may reference the pool.
type Pool struct {
	Base
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	Name        string   `gorm:"not null" json:"name"`
	Type        PoolType `gorm:"not null" json:"type"`
	Description string   `json:"description"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:PoolID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:PoolID" json:"budgets,omitempty"`
}
