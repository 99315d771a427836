package models

// Vendor represents a payee associated with payment transactions
type Vendor struct {
	Base
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:VendorID" json:"transactions,omitempty"`
}
