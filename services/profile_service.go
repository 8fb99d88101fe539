package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ProfileSetupInput struct {
	Gender             models.Gender         `json:"gender" binding:"required"`
	Age                int                   `json:"age" binding:"required,min=1,max=120"`
	Height             float64               `json:"height" binding:"required,min=50,max=250"`
	Weight             float64               `json:"weight" binding:"required,min=10,max=300"`
	WaistCircumference float64               `json:"waist_circumference" binding:"required,min=30,max=200"`
	BloodPressure      *bool                 `json:"blood_pressure" binding:"required"`
	BloodSugar         *bool                 `json:"blood_sugar" binding:"required"`
	EatVegetables      *bool                 `json:"eat_vegetables" binding:"required"`
	DiabetesFamily     models.DiabetesFamily `json:"diabetes_family" binding:"required"`
	ActivityLevel      models.ActivityLevel  `json:"activity_level" binding:"required"`
}

// DerivedProfile is the full recomputed budget set. It replaces the stored
// values as a unit on every setup, never field by field.
type DerivedProfile struct {
	BMI         float64 `json:"bmi"`
	RiskIndex   int     `json:"risk_index"`
	MaxCalories int     `json:"max_calories"`
	MaxCarbs    float64 `json:"max_carbs"`
	MaxProtein  float64 `json:"max_protein"`
	MaxFat      float64 `json:"max_fat"`
	MaxSugar    float64 `json:"max_sugar"`
}

type ProfileSetupView struct {
	ID          uint    `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	BMIScore    float64 `json:"bmi_score"`
	RiskIndex   int     `json:"risk_index"`
	MaxCalories int     `json:"max_calories"`
	MaxCarbs    float64 `json:"max_carbs"`
	MaxProtein  float64 `json:"max_protein"`
	MaxFat      float64 `json:"max_fat"`
	MaxSugar    float64 `json:"max_sugar"`
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (input ProfileSetupInput) validate() error {
	switch input.Gender {
	case models.GenderMale, models.GenderFemale:
	default:
		return NewValidationError("invalid gender: %q", input.Gender)
	}

	switch input.DiabetesFamily {
	case models.DiabetesFamilyNone, models.DiabetesFamilyFirstDegree, models.DiabetesFamilySecondDegree:
	default:
		return NewValidationError("invalid diabetes_family: %q", input.DiabetesFamily)
	}

	switch input.ActivityLevel {
	case models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
		models.ActivityHeavy, models.ActivityVeryHeavy:
	default:
		return NewValidationError("invalid activity_level: %q", input.ActivityLevel)
	}

	return nil
}

func (input ProfileSetupInput) healthInput() utils.HealthInput {
	return utils.HealthInput{
		Gender:             input.Gender,
		Age:                input.Age,
		Height:             input.Height,
		Weight:             input.Weight,
		WaistCircumference: input.WaistCircumference,
		BloodPressure:      *input.BloodPressure,
		BloodSugar:         *input.BloodSugar,
		EatVegetables:      *input.EatVegetables,
		DiabetesFamily:     input.DiabetesFamily,
		ActivityLevel:      input.ActivityLevel,
	}
}

func deriveProfile(input utils.HealthInput) DerivedProfile {
	bmi := utils.CalculateBMI(input.Weight, input.Height)
	riskIndex := utils.CalculateRiskIndex(input, bmi)
	maxCalories := utils.CalculateCalories(input, riskIndex)
	nutrients := utils.CalculateNutrients(maxCalories)

	return DerivedProfile{
		BMI:         bmi,
		RiskIndex:   riskIndex,
		MaxCalories: maxCalories,
		MaxCarbs:    nutrients.Carbs,
		MaxProtein:  nutrients.Protein,
		MaxFat:      nutrients.Fat,
		MaxSugar:    nutrients.Sugar,
	}
}

// SetupProfile stores the questionnaire and the recomputed budgets as one
// overwrite. Re-running setup replaces everything.
func (s *ProfileService) SetupProfile(userID uint, input ProfileSetupInput) (*DerivedProfile, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("user not found")
		}
		return nil, err
	}

	derived := deriveProfile(input.healthInput())

	user.Gender = input.Gender
	user.Age = input.Age
	user.Height = input.Height
	user.Weight = input.Weight
	user.WaistCircumference = input.WaistCircumference
	user.BloodPressure = *input.BloodPressure
	user.BloodSugar = *input.BloodSugar
	user.EatVegetables = *input.EatVegetables
	user.DiabetesFamily = input.DiabetesFamily
	user.ActivityLevel = input.ActivityLevel

	user.BMIScore = derived.BMI
	user.RiskIndex = derived.RiskIndex
	user.MaxCalories = derived.MaxCalories
	user.MaxCarbs = derived.MaxCarbs
	user.MaxProtein = derived.MaxProtein
	user.MaxFat = derived.MaxFat
	user.MaxSugar = derived.MaxSugar

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &derived, nil
}

func (s *ProfileService) GetProfileSetup(userID uint) (*ProfileSetupView, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("profile not found")
		}
		return nil, err
	}

	return &ProfileSetupView{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		BMIScore:    user.BMIScore,
		RiskIndex:   user.RiskIndex,
		MaxCalories: user.MaxCalories,
		MaxCarbs:    user.MaxCarbs,
		MaxProtein:  user.MaxProtein,
		MaxFat:      user.MaxFat,
		MaxSugar:    user.MaxSugar,
	}, nil
}
