package models

import "time"

// Budget represents a spending target for a pool over a fixed period.
// TargetAmount is in minor units (cents).
type Budget struct {
	Base
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	PoolID       uint      `gorm:"not null" json:"pool_id"`
	Name         string    `gorm:"not null" json:"name"`
	TargetAmount int64     `gorm:"type:bigint;not null" json:"target_amount"`
	PeriodStart  time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd    time.Time `gorm:"not null" json:"period_end"`

	// Relationships
	Pool Pool `gorm:"foreignKey:PoolID" json:"pool"`
}
