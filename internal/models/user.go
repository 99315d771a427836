package models

// User represents the user model in the database
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Categories   []Category    `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Vendors      []Vendor      `gorm:"foreignKey:UserID" json:"vendors,omitempty"`
	Pools        []Pool        `gorm:"foreignKey:UserID" json:"pools,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
