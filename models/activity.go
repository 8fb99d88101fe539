package models

import "gorm.io/gorm"

type ActivityCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Activity is a catalog entry; an activity log burns CaloriesBurned once per occurrence.
type Activity struct {
	gorm.Model
	Name           string  `gorm:"index;not null" json:"name"`
	PhotoURL       string  `json:"photo_url"`
	Description    string  `json:"description"`
	CategoryID     *uint   `gorm:"index" json:"category_id"`
	CaloriesBurned float64 `json:"calories_burned"`
	Duration       float64 `json:"duration"`
	DurationUnit   string  `json:"duration_unit"`

	Category *ActivityCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
