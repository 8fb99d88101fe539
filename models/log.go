package models

import (
	"time"

	"gorm.io/gorm"
)

// Log rows are append-only; aggregation reads them back joined with their
// catalog entry.

type FoodLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	FoodID   uint      `gorm:"index;not null" json:"food_id"`
	Portion  int       `gorm:"default:1" json:"portion"`
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`

	Food Food `gorm:"foreignKey:FoodID" json:"food"`
}

type ActivityLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	ActivityID uint      `gorm:"index;not null" json:"activity_id"`
	LoggedAt   time.Time `gorm:"index;not null" json:"logged_at"`

	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity"`
}

type StepLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Steps    int       `gorm:"not null" json:"steps"`
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
}

type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Amount   int       `gorm:"not null" json:"amount"` // ml
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
}
