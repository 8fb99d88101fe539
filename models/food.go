package models

import "gorm.io/gorm"

type FoodCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Food is a catalog entry; nutrient values live here, logs only reference it.
type Food struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	PhotoURL    string  `json:"photo_url"`
	Description string  `json:"description"`
	CategoryID  *uint   `gorm:"index" json:"category_id"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	WeightSize  float64 `json:"weight_size"`
	WeightUnit  string  `json:"weight_unit"`

	Calories  float64 `json:"calories"` // kcal per serving
	Carbs     float64 `json:"carbs"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Sugar     float64 `json:"sugar"`
	Sodium    float64 `json:"sodium"`
	Fiber     float64 `json:"fiber"`
	Potassium float64 `json:"potassium"`

	Category *FoodCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
