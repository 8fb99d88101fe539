package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityVeryHeavy ActivityLevel = "very_heavy"
)

type DiabetesFamily string

const (
	DiabetesFamilyNone         DiabetesFamily = "none"
	DiabetesFamilyFirstDegree  DiabetesFamily = "first_degree"
	DiabetesFamilySecondDegree DiabetesFamily = "second_degree"
)

type User struct {
	gorm.Model
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:user" json:"role"`
	IsActive bool   `json:"is_active"`

	ActivationOTP          string    `json:"-"`
	ActivationOTPExpiresAt time.Time `json:"-"`
	ResetOTP               string    `json:"-"`
	ResetOTPExpiresAt      time.Time `json:"-"`

	// Health questionnaire, overwritten as a whole on every profile setup.
	Gender             Gender         `json:"gender"`
	Age                int            `json:"age"`
	Height             float64        `json:"height"` // cm
	Weight             float64        `json:"weight"` // kg
	WaistCircumference float64        `json:"waist_circumference"` // cm
	BloodPressure      bool           `json:"blood_pressure"`
	BloodSugar         bool           `json:"blood_sugar"`
	EatVegetables      bool           `json:"eat_vegetables"`
	DiabetesFamily     DiabetesFamily `json:"diabetes_family"`
	ActivityLevel      ActivityLevel  `json:"activity_level"`

	// Derived budgets, always recomputed together with the questionnaire.
	BMIScore    float64 `json:"bmi_score"`
	RiskIndex   int     `json:"risk_index"`
	MaxCalories int     `json:"max_calories"`
	MaxCarbs    float64 `json:"max_carbs"`
	MaxProtein  float64 `json:"max_protein"`
	MaxFat      float64 `json:"max_fat"`
	MaxSugar    float64 `json:"max_sugar"`
}

// RefreshToken keeps issued refresh tokens server-side so logout can revoke them.
type RefreshToken struct {
	gorm.Model
	Token  string `gorm:"uniqueIndex;not null"`
	UserID uint   `gorm:"index;not null"`
}
