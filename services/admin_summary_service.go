package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type genderAverage struct {
	Male    float64 `json:"male"`
	Female  float64 `json:"female"`
	Overall float64 `json:"overall"`
}

type monthGrowth struct {
	Month int   `json:"month"`
	Users int64 `json:"users"`
}

type UserStats struct {
	TotalUsers         int64          `json:"total_users"`
	GenderDistribution map[string]int `json:"gender_distribution"`
	AvgHeight          genderAverage  `json:"avg_height"`
	AvgWeight          genderAverage  `json:"avg_weight"`
	AvgBMI             genderAverage  `json:"avg_bmi"`
	AvgRiskIndex       genderAverage  `json:"avg_risk_index"`
	GrowthThisYear     []monthGrowth  `json:"growth_this_year"`
}

type DailyNutritionStat struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Sugar    float64 `json:"sugar"`
}

// AdminSummaryService computes population-level views for the admin
// dashboard; the per-user engine lives in SummaryService.
type AdminSummaryService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewAdminSummaryService(db *gorm.DB, loc *time.Location) *AdminSummaryService {
	return &AdminSummaryService{db: db, loc: loc, now: time.Now}
}

func (s *AdminSummaryService) GetUserStats() (*UserStats, error) {
	var users []models.User
	err := s.db.Select("gender", "height", "weight", "bmi_score", "risk_index", "created_at").
		Where("role = ?", "user").
		Find(&users).Error
	if err != nil {
		return nil, &UpstreamError{Stream: "users", Err: err}
	}

	var male, female []models.User
	for _, u := range users {
		if u.Gender == models.GenderMale {
			male = append(male, u)
		} else if u.Gender == models.GenderFemale {
			female = append(female, u)
		}
	}

	averages := func(pick func(models.User) float64) genderAverage {
		return genderAverage{
			Male:    round2(mean(male, pick)),
			Female:  round2(mean(female, pick)),
			Overall: round2(mean(users, pick)),
		}
	}

	currentYear := s.now().In(s.loc).Year()
	growth := make([]monthGrowth, 12)
	for i := range growth {
		growth[i] = monthGrowth{Month: i + 1}
	}
	for _, u := range users {
		created := u.CreatedAt.In(s.loc)
		if created.Year() == currentYear {
			growth[int(created.Month())-1].Users++
		}
	}

	return &UserStats{
		TotalUsers:         int64(len(users)),
		GenderDistribution: map[string]int{"male": len(male), "female": len(female)},
		AvgHeight:          averages(func(u models.User) float64 { return u.Height }),
		AvgWeight:          averages(func(u models.User) float64 { return u.Weight }),
		AvgBMI:             averages(func(u models.User) float64 { return u.BMIScore }),
		AvgRiskIndex:       averages(func(u models.User) float64 { return float64(u.RiskIndex) }),
		GrowthThisYear:     growth,
	}, nil
}

// GetNutritionStats sums global food-log calories and sugar per day over the
// trailing window, zero-filling quiet days.
func (s *AdminSummaryService) GetNutritionStats(days int) ([]DailyNutritionStat, error) {
	if days < 1 {
		days = 7
	}

	today := s.now().In(s.loc)
	end := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -(days - 1))

	var logs []models.FoodLog
	err := s.db.Preload("Food").
		Where("logged_at BETWEEN ? AND ?", start, end).
		Find(&logs).Error
	if err != nil {
		return nil, &UpstreamError{Stream: "food logs", Err: err}
	}

	byDate := make(map[string]*DailyNutritionStat, days)
	stats := make([]DailyNutritionStat, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		stats = append(stats, DailyNutritionStat{Date: date})
	}
	for i := range stats {
		byDate[stats[i].Date] = &stats[i]
	}

	for _, log := range logs {
		date := log.LoggedAt.In(s.loc).Format("2006-01-02")
		stat, ok := byDate[date]
		if !ok {
			continue
		}
		portion := float64(log.Portion)
		if portion < 1 {
			portion = 1
		}
		stat.Calories += log.Food.Calories * portion
		stat.Sugar += log.Food.Sugar * portion
	}

	for i := range stats {
		stats[i].Calories = round2(stats[i].Calories)
		stats[i].Sugar = round2(stats[i].Sugar)
	}
	return stats, nil
}

func mean(users []models.User, pick func(models.User) float64) float64 {
	if len(users) == 0 {
		return 0
	}
	sum := 0.0
	for _, u := range users {
		sum += pick(u)
	}
	return sum / float64(len(users))
}
