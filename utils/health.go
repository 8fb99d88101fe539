package utils

import (
	"math"

	"backend/models"
)

// HealthInput is the questionnaire the score and budget calculators run on.
type HealthInput struct {
	Gender             models.Gender
	Age                int
	Height             float64 // cm
	Weight             float64 // kg
	WaistCircumference float64 // cm
	BloodPressure      bool
	BloodSugar         bool
	EatVegetables      bool
	DiabetesFamily     models.DiabetesFamily
	ActivityLevel      models.ActivityLevel
}

// NutrientBudget is the daily macro budget in grams. Sugar overlaps the carbs
// budget rather than adding to it.
type NutrientBudget struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Sugar   float64 `json:"sugar"`
}

var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityHeavy:     1.725,
	models.ActivityVeryHeavy: 1.9,
}

// CalculateBMI expects weight in kilograms and height in centimeters.
// Range checks are the caller's job.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return round2(weightKg / (h * h))
}

// CalculateRiskIndex scores every factor independently and sums the points.
// The thresholds are a product heuristic, not a clinical standard; keep them
// exactly as they are for compatibility with stored profiles.
func CalculateRiskIndex(input HealthInput, bmi float64) int {
	risk := 0

	switch {
	case input.Age >= 45 && input.Age <= 54:
		risk += 2
	case input.Age >= 55 && input.Age <= 64:
		risk += 3
	case input.Age > 64:
		risk += 4
	}

	switch {
	case bmi >= 25 && bmi <= 30:
		risk += 1
	case bmi > 30:
		risk += 3
	}

	if input.Gender == models.GenderMale {
		switch {
		case input.WaistCircumference >= 94 && input.WaistCircumference <= 101:
			risk += 3
		case input.WaistCircumference >= 102:
			risk += 4
		}
	} else {
		switch {
		case input.WaistCircumference >= 80 && input.WaistCircumference <= 87:
			risk += 3
		case input.WaistCircumference >= 88:
			risk += 4
		}
	}

	if input.BloodPressure {
		risk += 2
	}
	if input.BloodSugar {
		risk += 5
	}
	if input.ActivityLevel == models.ActivitySedentary {
		risk += 2
	}
	if !input.EatVegetables {
		risk += 1
	}

	switch input.DiabetesFamily {
	case models.DiabetesFamilyFirstDegree:
		risk += 5
	case models.DiabetesFamilySecondDegree:
		risk += 3
	}

	return risk
}

// CalculateCalories derives the daily calorie budget from the Mifflin-St Jeor
// BMR, then applies activity, age and risk multipliers in that order. An
// unrecognized activity level falls back to the sedentary factor.
func CalculateCalories(input HealthInput, riskIndex int) int {
	var bmr float64
	if input.Gender == models.GenderMale {
		bmr = 10*input.Weight + 6.25*input.Height - 5*float64(input.Age) + 5
	} else {
		bmr = 10*input.Weight + 6.25*input.Height - 5*float64(input.Age) - 161
	}

	factor, ok := activityFactors[input.ActivityLevel]
	if !ok {
		factor = 1.2
	}
	bmr *= factor

	switch {
	case input.Age >= 40 && input.Age <= 59:
		bmr *= 0.95
	case input.Age >= 60 && input.Age <= 69:
		bmr *= 0.9
	case input.Age >= 70:
		bmr *= 0.85
	}

	if riskIndex > 13 {
		bmr *= 0.75
	}

	return int(math.Round(bmr))
}

// CalculateNutrients splits the calorie budget into fixed macro ratios:
// carbs 60% at 4 kcal/g, protein 15% at 4 kcal/g, fat 25% at 9 kcal/g and a
// sugar sub-budget of 10% at 4 kcal/g.
func CalculateNutrients(maxCalories int) NutrientBudget {
	cal := float64(maxCalories)
	return NutrientBudget{
		Carbs:   round2(0.6 * cal / 4),
		Protein: round2(0.15 * cal / 4),
		Fat:     round2(0.25 * cal / 9),
		Sugar:   round2(0.1 * cal / 4),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
