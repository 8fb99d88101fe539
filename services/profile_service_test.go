package services

import (
	"testing"

	"backend/models"
	"backend/utils"
)

func boolPtr(b bool) *bool { return &b }

func validSetupInput() ProfileSetupInput {
	return ProfileSetupInput{
		Gender:             models.GenderMale,
		Age:                30,
		Height:             175,
		Weight:             70,
		WaistCircumference: 80,
		BloodPressure:      boolPtr(false),
		BloodSugar:         boolPtr(false),
		EatVegetables:      boolPtr(true),
		DiabetesFamily:     models.DiabetesFamilyNone,
		ActivityLevel:      models.ActivityModerate,
	}
}

func TestDeriveProfile(t *testing.T) {
	derived := deriveProfile(utils.HealthInput{
		Gender:             models.GenderMale,
		Age:                30,
		Height:             175,
		Weight:             70,
		WaistCircumference: 80,
		EatVegetables:      true,
		DiabetesFamily:     models.DiabetesFamilyNone,
		ActivityLevel:      models.ActivityModerate,
	})

	if derived.BMI != 22.86 {
		t.Errorf("BMI = %v, want 22.86", derived.BMI)
	}
	if derived.RiskIndex != 0 {
		t.Errorf("RiskIndex = %d, want 0", derived.RiskIndex)
	}
	if derived.MaxCalories != 2556 {
		t.Errorf("MaxCalories = %d, want 2556", derived.MaxCalories)
	}
	if derived.MaxCarbs != 383.4 {
		t.Errorf("MaxCarbs = %v, want 383.4", derived.MaxCarbs)
	}
	if derived.MaxProtein != 95.85 {
		t.Errorf("MaxProtein = %v, want 95.85", derived.MaxProtein)
	}
	if derived.MaxFat != 71 {
		t.Errorf("MaxFat = %v, want 71", derived.MaxFat)
	}
	if derived.MaxSugar != 63.9 {
		t.Errorf("MaxSugar = %v, want 63.9", derived.MaxSugar)
	}
}

func TestProfileSetupInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProfileSetupInput)
		wantErr bool
	}{
		{"valid", func(in *ProfileSetupInput) {}, false},
		{"female is valid", func(in *ProfileSetupInput) { in.Gender = models.GenderFemale }, false},
		{"unknown gender", func(in *ProfileSetupInput) { in.Gender = "other" }, true},
		{"unknown diabetes family", func(in *ProfileSetupInput) { in.DiabetesFamily = "cousin" }, true},
		{"unknown activity level", func(in *ProfileSetupInput) { in.ActivityLevel = "jogging" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSetupInput()
			tt.mutate(&input)
			err := input.validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !IsValidation(err) {
					t.Errorf("expected validation error, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
