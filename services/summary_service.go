package services

import (
	"math"
	"time"
)

const defaultHistoryLimit = 3

type NutrientTotals struct {
	Calories  float64 `json:"calories"`
	Carbs     float64 `json:"carbs"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Sugar     float64 `json:"sugar"`
	Sodium    float64 `json:"sodium"`
	Fiber     float64 `json:"fiber"`
	Potassium float64 `json:"potassium"`
}

type ActivityTotals struct {
	Burned float64 `json:"burned"`
}

// DailySummary is recomputed from raw logs on every request; it is never
// stored. Zero logs produce zero values, not nulls.
type DailySummary struct {
	Date       string         `json:"date"`
	Nutrients  NutrientTotals `json:"nutrients"`
	Activities ActivityTotals `json:"activities"`
	Steps      int            `json:"steps"`
	Water      int            `json:"water"`
}

type AllSummary struct {
	Daily   *DailySummary  `json:"daily"`
	Weekly  []DailySummary `json:"weekly"`
	Monthly []DailySummary `json:"monthly"`
}

type FoodHistoryEntry struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	WeightSize  float64   `json:"weight_size"`
	WeightUnit  string    `json:"weight_unit"`
	Calories    float64   `json:"calories"` // catalog calories x portion
	Portion     int       `json:"portion"`
	Time        time.Time `json:"time"`
}

type ActivityHistoryEntry struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	PhotoURL       string    `json:"photo_url"`
	Description    string    `json:"description"`
	CategoryID     *uint     `json:"category_id"`
	CaloriesBurned float64   `json:"calories_burned"`
	Duration       float64   `json:"duration"`
	DurationUnit   string    `json:"duration_unit"`
	Time           time.Time `json:"time"`
}

type HistoryDay struct {
	Date       string                 `json:"date"`
	Foods      []FoodHistoryEntry     `json:"foods"`
	Activities []ActivityHistoryEntry `json:"activities"`
}

// SummaryService aggregates the four log streams into per-day, weekly and
// monthly views. Day boundaries are resolved in one fixed zone for every
// view; mixing zones would attribute boundary logs inconsistently between
// "today" and "history".
type SummaryService struct {
	store SummaryStore
	loc   *time.Location
	now   func() time.Time
}

func NewSummaryService(store SummaryStore, loc *time.Location) *SummaryService {
	return &SummaryService{store: store, loc: loc, now: time.Now}
}

// GetSummaryForRange sums every log stream over [start 00:00:00, end
// 23:59:59] local time. The summary is labeled with the start date.
func (s *SummaryService) GetSummaryForRange(userID uint, start, end time.Time) (*DailySummary, error) {
	from := s.dayStart(start)
	to := s.dayEnd(end)
	return s.summarize(userID, from, to, from.Format("2006-01-02"))
}

func (s *SummaryService) GetTodaySummary(userID uint) (*DailySummary, error) {
	today := s.now().In(s.loc)
	return s.GetSummaryForRange(userID, today, today)
}

// GetWeeklySummary returns 7 per-day summaries ending today, oldest first.
// Each day is an independent windowed query; nothing is derived from the
// daily view.
func (s *SummaryService) GetWeeklySummary(userID uint) ([]DailySummary, error) {
	today := s.now().In(s.loc)

	results := make([]DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		summary, err := s.GetSummaryForRange(userID, day, day)
		if err != nil {
			return nil, err
		}
		results = append(results, *summary)
	}
	return results, nil
}

// GetMonthlySummary returns 7 per-month summaries ending with the current
// month, labeled YYYY-MM, oldest first.
func (s *SummaryService) GetMonthlySummary(userID uint) ([]DailySummary, error) {
	today := s.now().In(s.loc)

	results := make([]DailySummary, 0, 7)
	for i := 6; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, s.loc)
		last := first.AddDate(0, 1, -1)

		summary, err := s.summarize(userID, first, s.dayEnd(last), first.Format("2006-01"))
		if err != nil {
			return nil, err
		}
		results = append(results, *summary)
	}
	return results, nil
}

// GetAllSummary composes the three views as independent computations.
func (s *SummaryService) GetAllSummary(userID uint) (*AllSummary, error) {
	daily, err := s.GetTodaySummary(userID)
	if err != nil {
		return nil, err
	}
	weekly, err := s.GetWeeklySummary(userID)
	if err != nil {
		return nil, err
	}
	monthly, err := s.GetMonthlySummary(userID)
	if err != nil {
		return nil, err
	}
	return &AllSummary{Daily: daily, Weekly: weekly, Monthly: monthly}, nil
}

// GetHistory returns the raw food and activity entries of the most recent
// `limit` calendar days, newest day first. Days without logs still appear,
// with empty slices.
func (s *SummaryService) GetHistory(userID uint, limit int) ([]HistoryDay, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	today := s.now().In(s.loc)

	results := make([]HistoryDay, 0, limit)
	for i := 0; i < limit; i++ {
		day := today.AddDate(0, 0, -i)
		from := s.dayStart(day)
		to := s.dayEnd(day)

		foodLogs, err := s.store.FoodLogsInRange(userID, from, to)
		if err != nil {
			return nil, &UpstreamError{Stream: "food logs", Err: err}
		}
		activityLogs, err := s.store.ActivityLogsInRange(userID, from, to)
		if err != nil {
			return nil, &UpstreamError{Stream: "activity logs", Err: err}
		}

		foods := make([]FoodHistoryEntry, 0, len(foodLogs))
		for _, log := range foodLogs {
			portion := log.Portion
			if portion < 1 {
				portion = 1
			}
			foods = append(foods, FoodHistoryEntry{
				ID:          log.Food.ID,
				Name:        log.Food.Name,
				PhotoURL:    log.Food.PhotoURL,
				Description: log.Food.Description,
				ServingSize: log.Food.ServingSize,
				ServingUnit: log.Food.ServingUnit,
				WeightSize:  log.Food.WeightSize,
				WeightUnit:  log.Food.WeightUnit,
				Calories:    round2(log.Food.Calories * float64(portion)),
				Portion:     portion,
				Time:        log.LoggedAt,
			})
		}

		activities := make([]ActivityHistoryEntry, 0, len(activityLogs))
		for _, log := range activityLogs {
			activities = append(activities, ActivityHistoryEntry{
				ID:             log.Activity.ID,
				Name:           log.Activity.Name,
				PhotoURL:       log.Activity.PhotoURL,
				Description:    log.Activity.Description,
				CategoryID:     log.Activity.CategoryID,
				CaloriesBurned: round2(log.Activity.CaloriesBurned),
				Duration:       log.Activity.Duration,
				DurationUnit:   log.Activity.DurationUnit,
				Time:           log.LoggedAt,
			})
		}

		results = append(results, HistoryDay{
			Date:       from.Format("2006-01-02"),
			Foods:      foods,
			Activities: activities,
		})
	}
	return results, nil
}

func (s *SummaryService) summarize(userID uint, from, to time.Time, label string) (*DailySummary, error) {
	foodLogs, err := s.store.FoodLogsInRange(userID, from, to)
	if err != nil {
		return nil, &UpstreamError{Stream: "food logs", Err: err}
	}
	activityLogs, err := s.store.ActivityLogsInRange(userID, from, to)
	if err != nil {
		return nil, &UpstreamError{Stream: "activity logs", Err: err}
	}
	stepLogs, err := s.store.StepLogsInRange(userID, from, to)
	if err != nil {
		return nil, &UpstreamError{Stream: "step logs", Err: err}
	}
	waterLogs, err := s.store.WaterLogsInRange(userID, from, to)
	if err != nil {
		return nil, &UpstreamError{Stream: "water logs", Err: err}
	}

	var nutrients NutrientTotals
	for _, log := range foodLogs {
		portion := float64(log.Portion)
		if portion < 1 {
			portion = 1
		}
		nutrients.Calories += log.Food.Calories * portion
		nutrients.Carbs += log.Food.Carbs * portion
		nutrients.Protein += log.Food.Protein * portion
		nutrients.Fat += log.Food.Fat * portion
		nutrients.Sugar += log.Food.Sugar * portion
		nutrients.Sodium += log.Food.Sodium * portion
		nutrients.Fiber += log.Food.Fiber * portion
		nutrients.Potassium += log.Food.Potassium * portion
	}

	var burned float64
	for _, log := range activityLogs {
		burned += log.Activity.CaloriesBurned
	}

	steps := 0
	for _, log := range stepLogs {
		steps += log.Steps
	}

	water := 0
	for _, log := range waterLogs {
		water += log.Amount
	}

	// Round once, after summing; intermediate rounding would drift.
	nutrients.Calories = round2(nutrients.Calories)
	nutrients.Carbs = round2(nutrients.Carbs)
	nutrients.Protein = round2(nutrients.Protein)
	nutrients.Fat = round2(nutrients.Fat)
	nutrients.Sugar = round2(nutrients.Sugar)
	nutrients.Sodium = round2(nutrients.Sodium)
	nutrients.Fiber = round2(nutrients.Fiber)
	nutrients.Potassium = round2(nutrients.Potassium)

	return &DailySummary{
		Date:       label,
		Nutrients:  nutrients,
		Activities: ActivityTotals{Burned: round2(burned)},
		Steps:      steps,
		Water:      water,
	}, nil
}

func (s *SummaryService) dayStart(t time.Time) time.Time {
	tt := t.In(s.loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, s.loc)
}

func (s *SummaryService) dayEnd(t time.Time) time.Time {
	tt := t.In(s.loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
