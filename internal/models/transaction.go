package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeCredit  TransactionType = "credit"
	TransactionTypePayment TransactionType = "payment"
)

// Transaction represents a financial event recorded by a user. Amounts are
// stored in minor units (cents) and are always positive; the transaction
// type determines the sign in aggregations.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	PoolID      *uint           `json:"pool_id,omitempty"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	VendorID    *uint           `json:"vendor_id,omitempty"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	// For credits: who the money was lent to or borrowed from
	AssociatedPerson string `json:"associated_person,omitempty"`

	// Relationships
	Pool     *Pool     `gorm:"foreignKey:PoolID" json:"pool,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Vendor   *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// BeforeCreate hook clears fields that only apply to specific transaction types
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Type != TransactionTypeCredit {
		t.AssociatedPerson = ""
	}
	return nil
}
