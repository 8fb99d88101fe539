package utils

import (
	"testing"

	"backend/models"
)

func baseInput() HealthInput {
	return HealthInput{
		Gender:             models.GenderMale,
		Age:                30,
		Height:             175,
		Weight:             70,
		WaistCircumference: 80,
		BloodPressure:      false,
		BloodSugar:         false,
		EatVegetables:      true,
		DiabetesFamily:     models.DiabetesFamilyNone,
		ActivityLevel:      models.ActivityModerate,
	}
}

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   float64
	}{
		{"normal", 70, 175, 22.86},
		{"obese", 80, 160, 31.25},
		{"underweight", 45, 170, 15.57},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateBMI(tt.weight, tt.height); got != tt.want {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
			}
		})
	}
}

func TestCalculateRiskIndex(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HealthInput)
		bmi    float64
		want   int
	}{
		{
			name:   "young healthy male scores zero",
			mutate: func(in *HealthInput) {},
			bmi:    22,
			want:   0,
		},
		{
			name: "middle aged sedentary with central obesity and hypertension",
			mutate: func(in *HealthInput) {
				in.Age = 50
				in.WaistCircumference = 95
				in.BloodPressure = true
				in.ActivityLevel = models.ActivitySedentary
			},
			bmi:  26,
			want: 10, // 2 age + 1 bmi + 3 waist + 2 bp + 2 sedentary
		},
		{
			name: "female waist band",
			mutate: func(in *HealthInput) {
				in.Gender = models.GenderFemale
				in.WaistCircumference = 85
			},
			bmi:  22,
			want: 3,
		},
		{
			name: "everything elevated",
			mutate: func(in *HealthInput) {
				in.Gender = models.GenderFemale
				in.Age = 70
				in.WaistCircumference = 90
				in.BloodPressure = true
				in.BloodSugar = true
				in.EatVegetables = false
				in.DiabetesFamily = models.DiabetesFamilyFirstDegree
				in.ActivityLevel = models.ActivitySedentary
			},
			bmi:  31,
			want: 26, // 4 + 3 + 4 + 2 + 5 + 2 + 1 + 5
		},
		{
			name: "second degree family history",
			mutate: func(in *HealthInput) {
				in.DiabetesFamily = models.DiabetesFamilySecondDegree
			},
			bmi:  22,
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(&input)
			if got := CalculateRiskIndex(input, tt.bmi); got != tt.want {
				t.Errorf("CalculateRiskIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateCalories(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*HealthInput)
		riskIndex int
		want      int
	}{
		{
			name:      "male moderate",
			mutate:    func(in *HealthInput) {},
			riskIndex: 0,
			want:      2556, // (700 + 1093.75 - 150 + 5) * 1.55
		},
		{
			name: "female moderate",
			mutate: func(in *HealthInput) {
				in.Gender = models.GenderFemale
			},
			riskIndex: 0,
			want:      2298,
		},
		{
			name:      "high risk takes a quarter off",
			mutate:    func(in *HealthInput) {},
			riskIndex: 14,
			want:      1917,
		},
		{
			name: "age sixty five applies the senior factor",
			mutate: func(in *HealthInput) {
				in.Age = 65
			},
			riskIndex: 0,
			want:      2056,
		},
		{
			name: "unknown activity level falls back to sedentary",
			mutate: func(in *HealthInput) {
				in.ActivityLevel = models.ActivityLevel("jogging")
			},
			riskIndex: 0,
			want:      1979, // 1648.75 * 1.2, rounded half up
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(&input)
			if got := CalculateCalories(input, tt.riskIndex); got != tt.want {
				t.Errorf("CalculateCalories() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateCaloriesRiskBoundary(t *testing.T) {
	input := baseInput()
	at13 := CalculateCalories(input, 13)
	at14 := CalculateCalories(input, 14)
	if at13 != 2556 {
		t.Errorf("risk 13 should not reduce the budget, got %d", at13)
	}
	if at14 >= at13 {
		t.Errorf("risk above 13 must reduce the budget: %d >= %d", at14, at13)
	}
}

func TestCalculateCaloriesIncreasesWithWeight(t *testing.T) {
	input := baseInput()
	prev := CalculateCalories(input, 0)
	for w := 75.0; w <= 95; w += 10 {
		input.Weight = w
		got := CalculateCalories(input, 0)
		if got <= prev {
			t.Fatalf("budget should grow with weight: %d at %vkg, %d before", got, w, prev)
		}
		prev = got
	}
}

func TestCalculateNutrients(t *testing.T) {
	budget := CalculateNutrients(2000)
	if budget.Carbs != 300 {
		t.Errorf("Carbs = %v, want 300", budget.Carbs)
	}
	if budget.Protein != 75 {
		t.Errorf("Protein = %v, want 75", budget.Protein)
	}
	if budget.Fat != 55.56 {
		t.Errorf("Fat = %v, want 55.56", budget.Fat)
	}
	if budget.Sugar != 50 {
		t.Errorf("Sugar = %v, want 50", budget.Sugar)
	}
}
