package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Article struct {
	gorm.Model
	Title       string `gorm:"index;not null" json:"title"`
	PhotoURL    string `json:"photo_url"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CategoryID  *uint  `gorm:"index" json:"category_id"`

	Category *ArticleCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type EventCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

type Event struct {
	gorm.Model
	Title       string    `gorm:"index;not null" json:"title"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`

	Category *EventCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type Tip struct {
	gorm.Model
	Title   string `gorm:"not null" json:"title"`
	Content string `json:"content"`
}

type Faq struct {
	gorm.Model
	Question string `gorm:"not null" json:"question"`
	Answer   string `json:"answer"`
}

type Carousel struct {
	gorm.Model
	Title     string `json:"title"`
	PhotoURL  string `gorm:"not null" json:"photo_url"`
	TargetURL string `json:"target_url"`
	Position  int    `gorm:"default:0" json:"position"`
}

type Information struct {
	gorm.Model
	Title   string `gorm:"not null" json:"title"`
	Content string `json:"content"`
}
