package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type FoodLogRequest struct {
	FoodID  uint `json:"food_id" binding:"required"`
	Portion int  `json:"portion" binding:"omitempty,min=1"`
}

type ActivityLogRequest struct {
	ActivityID uint `json:"activity_id" binding:"required"`
}

type LogRatios struct {
	CaloriesRatio *float64 `json:"calories_ratio"`
	SugarRatio    *float64 `json:"sugar_ratio"`
}

type FoodLogResult struct {
	Logs   []models.FoodLog `json:"logs"`
	Totals NutrientTotals   `json:"totals"`
	Ratios LogRatios        `json:"ratios"`
}

type ActivityLogResult struct {
	Logs        []models.ActivityLog `json:"logs"`
	TotalBurned float64              `json:"total_burned"`
}

// LogService appends log rows. Entries are immutable once written; the
// aggregator only ever reads them back.
type LogService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewLogService(db *gorm.DB, loc *time.Location) *LogService {
	return &LogService{db: db, loc: loc, now: time.Now}
}

// LogFoods inserts one row per request entry and reports the nutrient totals
// of the batch plus how far they take the user into the daily calorie and
// sugar budgets.
func (s *LogService) LogFoods(userID uint, requests []FoodLogRequest) (*FoodLogResult, error) {
	if len(requests) == 0 {
		return nil, NewValidationError("at least one food entry is required")
	}

	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.FoodID)
	}

	var foods []models.Food
	if err := s.db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, &UpstreamError{Stream: "foods", Err: err}
	}
	foodsByID := make(map[uint]models.Food, len(foods))
	for _, f := range foods {
		foodsByID[f.ID] = f
	}

	now := s.now().In(s.loc)
	logs := make([]models.FoodLog, 0, len(requests))
	var totals NutrientTotals

	for _, r := range requests {
		food, ok := foodsByID[r.FoodID]
		if !ok {
			return nil, NewNotFoundError("food %d not found", r.FoodID)
		}

		portion := r.Portion
		if portion < 1 {
			portion = 1
		}

		logs = append(logs, models.FoodLog{
			UserID:   userID,
			FoodID:   r.FoodID,
			Portion:  portion,
			LoggedAt: now,
		})

		p := float64(portion)
		totals.Calories += food.Calories * p
		totals.Carbs += food.Carbs * p
		totals.Protein += food.Protein * p
		totals.Fat += food.Fat * p
		totals.Sugar += food.Sugar * p
		totals.Sodium += food.Sodium * p
		totals.Fiber += food.Fiber * p
		totals.Potassium += food.Potassium * p
	}

	if err := s.db.Create(&logs).Error; err != nil {
		return nil, err
	}

	totals.Calories = round2(totals.Calories)
	totals.Carbs = round2(totals.Carbs)
	totals.Protein = round2(totals.Protein)
	totals.Fat = round2(totals.Fat)
	totals.Sugar = round2(totals.Sugar)
	totals.Sodium = round2(totals.Sodium)
	totals.Fiber = round2(totals.Fiber)
	totals.Potassium = round2(totals.Potassium)

	var user models.User
	ratios := LogRatios{}
	if err := s.db.Select("max_calories", "max_sugar").First(&user, userID).Error; err == nil {
		if user.MaxCalories > 0 {
			r := totals.Calories / float64(user.MaxCalories)
			ratios.CaloriesRatio = &r
		}
		if user.MaxSugar > 0 {
			r := totals.Sugar / user.MaxSugar
			ratios.SugarRatio = &r
		}
	}

	return &FoodLogResult{Logs: logs, Totals: totals, Ratios: ratios}, nil
}

// LogActivities inserts one row per entry; each occurrence burns the catalog
// value once, there is no portion multiplier on activities.
func (s *LogService) LogActivities(userID uint, requests []ActivityLogRequest) (*ActivityLogResult, error) {
	if len(requests) == 0 {
		return nil, NewValidationError("at least one activity entry is required")
	}

	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ActivityID)
	}

	var activities []models.Activity
	if err := s.db.Where("id IN ?", ids).Find(&activities).Error; err != nil {
		return nil, &UpstreamError{Stream: "activities", Err: err}
	}
	activitiesByID := make(map[uint]models.Activity, len(activities))
	for _, a := range activities {
		activitiesByID[a.ID] = a
	}

	now := s.now().In(s.loc)
	logs := make([]models.ActivityLog, 0, len(requests))
	var burned float64

	for _, r := range requests {
		activity, ok := activitiesByID[r.ActivityID]
		if !ok {
			return nil, NewNotFoundError("activity %d not found", r.ActivityID)
		}

		logs = append(logs, models.ActivityLog{
			UserID:     userID,
			ActivityID: r.ActivityID,
			LoggedAt:   now,
		})
		burned += activity.CaloriesBurned
	}

	if err := s.db.Create(&logs).Error; err != nil {
		return nil, err
	}

	return &ActivityLogResult{Logs: logs, TotalBurned: round2(burned)}, nil
}

func (s *LogService) LogSteps(userID uint, steps int) (*models.StepLog, error) {
	if steps < 1 {
		return nil, NewValidationError("steps must be at least 1")
	}

	log := models.StepLog{UserID: userID, Steps: steps, LoggedAt: s.now().In(s.loc)}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) LogWater(userID uint, amount int) (*models.WaterLog, error) {
	if amount < 1 {
		return nil, NewValidationError("amount must be at least 1")
	}

	log := models.WaterLog{UserID: userID, Amount: amount, LoggedAt: s.now().In(s.loc)}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}
