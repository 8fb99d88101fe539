package services

import (
	"errors"
	"testing"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// stubSummaryStore serves logs from memory, filtering by user and window the
// way the real store's queries do.
type stubSummaryStore struct {
	foodLogs     []models.FoodLog
	activityLogs []models.ActivityLog
	stepLogs     []models.StepLog
	waterLogs    []models.WaterLog

	foodErr     error
	activityErr error
	stepErr     error
	waterErr    error
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (s *stubSummaryStore) FoodLogsInRange(userID uint, start, end time.Time) ([]models.FoodLog, error) {
	if s.foodErr != nil {
		return nil, s.foodErr
	}
	var out []models.FoodLog
	for _, log := range s.foodLogs {
		if log.UserID == userID && inRange(log.LoggedAt, start, end) {
			out = append(out, log)
		}
	}
	return out, nil
}

func (s *stubSummaryStore) ActivityLogsInRange(userID uint, start, end time.Time) ([]models.ActivityLog, error) {
	if s.activityErr != nil {
		return nil, s.activityErr
	}
	var out []models.ActivityLog
	for _, log := range s.activityLogs {
		if log.UserID == userID && inRange(log.LoggedAt, start, end) {
			out = append(out, log)
		}
	}
	return out, nil
}

func (s *stubSummaryStore) StepLogsInRange(userID uint, start, end time.Time) ([]models.StepLog, error) {
	if s.stepErr != nil {
		return nil, s.stepErr
	}
	var out []models.StepLog
	for _, log := range s.stepLogs {
		if log.UserID == userID && inRange(log.LoggedAt, start, end) {
			out = append(out, log)
		}
	}
	return out, nil
}

func (s *stubSummaryStore) WaterLogsInRange(userID uint, start, end time.Time) ([]models.WaterLog, error) {
	if s.waterErr != nil {
		return nil, s.waterErr
	}
	var out []models.WaterLog
	for _, log := range s.waterLogs {
		if log.UserID == userID && inRange(log.LoggedAt, start, end) {
			out = append(out, log)
		}
	}
	return out, nil
}

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestSummaryService(store SummaryStore) *SummaryService {
	svc := NewSummaryService(store, time.UTC)
	svc.now = func() time.Time { return testNow }
	return svc
}

func testFood(id uint, calories float64) models.Food {
	return models.Food{
		Model:    gorm.Model{ID: id},
		Name:     "test food",
		Calories: calories,
		Carbs:    20,
		Sugar:    5,
	}
}

func TestTodaySummaryNoLogs(t *testing.T) {
	svc := newTestSummaryService(&stubSummaryStore{})

	summary, err := svc.GetTodaySummary(1)
	if err != nil {
		t.Fatalf("GetTodaySummary: %v", err)
	}
	if summary.Date != "2025-03-15" {
		t.Errorf("Date = %q, want 2025-03-15", summary.Date)
	}
	if summary.Nutrients != (NutrientTotals{}) {
		t.Errorf("Nutrients = %+v, want all zero", summary.Nutrients)
	}
	if summary.Activities.Burned != 0 || summary.Steps != 0 || summary.Water != 0 {
		t.Errorf("expected zero activity, steps and water, got %+v", summary)
	}
}

func TestTodaySummaryTotals(t *testing.T) {
	food := testFood(1, 100)
	store := &stubSummaryStore{
		foodLogs: []models.FoodLog{
			{UserID: 1, FoodID: 1, Portion: 1, LoggedAt: testNow.Add(-2 * time.Hour), Food: food},
			{UserID: 1, FoodID: 1, Portion: 2, LoggedAt: testNow.Add(-time.Hour), Food: food},
			// other user's log must not leak in
			{UserID: 2, FoodID: 1, Portion: 5, LoggedAt: testNow, Food: food},
		},
		activityLogs: []models.ActivityLog{
			{UserID: 1, LoggedAt: testNow, Activity: models.Activity{CaloriesBurned: 250.5}},
			{UserID: 1, LoggedAt: testNow, Activity: models.Activity{CaloriesBurned: 100.25}},
		},
		stepLogs: []models.StepLog{
			{UserID: 1, Steps: 1000, LoggedAt: testNow},
			{UserID: 1, Steps: 2000, LoggedAt: testNow},
		},
		waterLogs: []models.WaterLog{
			{UserID: 1, Amount: 250, LoggedAt: testNow},
			{UserID: 1, Amount: 500, LoggedAt: testNow},
		},
	}
	svc := newTestSummaryService(store)

	summary, err := svc.GetTodaySummary(1)
	if err != nil {
		t.Fatalf("GetTodaySummary: %v", err)
	}
	if summary.Nutrients.Calories != 300 {
		t.Errorf("Calories = %v, want 300", summary.Nutrients.Calories)
	}
	if summary.Nutrients.Carbs != 60 {
		t.Errorf("Carbs = %v, want 60", summary.Nutrients.Carbs)
	}
	if summary.Nutrients.Sugar != 15 {
		t.Errorf("Sugar = %v, want 15", summary.Nutrients.Sugar)
	}
	if summary.Activities.Burned != 350.75 {
		t.Errorf("Burned = %v, want 350.75", summary.Activities.Burned)
	}
	if summary.Steps != 3000 {
		t.Errorf("Steps = %d, want 3000", summary.Steps)
	}
	if summary.Water != 750 {
		t.Errorf("Water = %d, want 750", summary.Water)
	}
}

func TestSummaryPortionFloor(t *testing.T) {
	store := &stubSummaryStore{
		foodLogs: []models.FoodLog{
			{UserID: 1, FoodID: 1, Portion: 0, LoggedAt: testNow, Food: testFood(1, 100)},
		},
	}
	svc := newTestSummaryService(store)

	summary, err := svc.GetTodaySummary(1)
	if err != nil {
		t.Fatalf("GetTodaySummary: %v", err)
	}
	if summary.Nutrients.Calories != 100 {
		t.Errorf("portion 0 should count as 1, got Calories = %v", summary.Nutrients.Calories)
	}
}

func TestWeeklySummaryWindow(t *testing.T) {
	food := testFood(1, 100)
	store := &stubSummaryStore{
		foodLogs: []models.FoodLog{
			{UserID: 1, FoodID: 1, Portion: 1, LoggedAt: time.Date(2025, time.March, 13, 9, 0, 0, 0, time.UTC), Food: food},
			// one day before the window opens
			{UserID: 1, FoodID: 1, Portion: 1, LoggedAt: time.Date(2025, time.March, 8, 9, 0, 0, 0, time.UTC), Food: food},
		},
	}
	svc := newTestSummaryService(store)

	weekly, err := svc.GetWeeklySummary(1)
	if err != nil {
		t.Fatalf("GetWeeklySummary: %v", err)
	}
	if len(weekly) != 7 {
		t.Fatalf("len(weekly) = %d, want 7", len(weekly))
	}

	wantDates := []string{
		"2025-03-09", "2025-03-10", "2025-03-11", "2025-03-12",
		"2025-03-13", "2025-03-14", "2025-03-15",
	}
	var total float64
	for i, day := range weekly {
		if day.Date != wantDates[i] {
			t.Errorf("weekly[%d].Date = %q, want %q", i, day.Date, wantDates[i])
		}
		total += day.Nutrients.Calories
		if day.Date == "2025-03-13" && day.Nutrients.Calories != 100 {
			t.Errorf("calories on 2025-03-13 = %v, want 100", day.Nutrients.Calories)
		}
	}
	if total != 100 {
		t.Errorf("total weekly calories = %v, want 100 (out-of-window log leaked in)", total)
	}
}

func TestMonthlySummaryLabels(t *testing.T) {
	food := testFood(1, 100)
	store := &stubSummaryStore{
		foodLogs: []models.FoodLog{
			{UserID: 1, FoodID: 1, Portion: 3, LoggedAt: time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC), Food: food},
		},
	}
	svc := newTestSummaryService(store)

	monthly, err := svc.GetMonthlySummary(1)
	if err != nil {
		t.Fatalf("GetMonthlySummary: %v", err)
	}
	if len(monthly) != 7 {
		t.Fatalf("len(monthly) = %d, want 7", len(monthly))
	}

	wantLabels := []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02", "2025-03"}
	for i, month := range monthly {
		if month.Date != wantLabels[i] {
			t.Errorf("monthly[%d].Date = %q, want %q", i, month.Date, wantLabels[i])
		}
	}
	if monthly[5].Nutrients.Calories != 300 {
		t.Errorf("february calories = %v, want 300", monthly[5].Nutrients.Calories)
	}
}

func TestAllSummaryComposes(t *testing.T) {
	svc := newTestSummaryService(&stubSummaryStore{})

	all, err := svc.GetAllSummary(1)
	if err != nil {
		t.Fatalf("GetAllSummary: %v", err)
	}
	if all.Daily == nil || all.Daily.Date != "2025-03-15" {
		t.Errorf("Daily = %+v, want labeled 2025-03-15", all.Daily)
	}
	if len(all.Weekly) != 7 {
		t.Errorf("len(Weekly) = %d, want 7", len(all.Weekly))
	}
	if len(all.Monthly) != 7 {
		t.Errorf("len(Monthly) = %d, want 7", len(all.Monthly))
	}
}

func TestHistoryDefaultLimitAndOrder(t *testing.T) {
	food := testFood(7, 100)
	store := &stubSummaryStore{
		foodLogs: []models.FoodLog{
			{UserID: 1, FoodID: 7, Portion: 2, LoggedAt: time.Date(2025, time.March, 14, 19, 0, 0, 0, time.UTC), Food: food},
		},
		activityLogs: []models.ActivityLog{
			{UserID: 1, LoggedAt: time.Date(2025, time.March, 15, 7, 0, 0, 0, time.UTC), Activity: models.Activity{
				Model:          gorm.Model{ID: 3},
				Name:           "running",
				CaloriesBurned: 320,
				Duration:       30,
				DurationUnit:   "minutes",
			}},
		},
	}
	svc := newTestSummaryService(store)

	history, err := svc.GetHistory(1, 0)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want default 3", len(history))
	}

	wantDates := []string{"2025-03-15", "2025-03-14", "2025-03-13"}
	for i, day := range history {
		if day.Date != wantDates[i] {
			t.Errorf("history[%d].Date = %q, want %q", i, day.Date, wantDates[i])
		}
		if day.Foods == nil || day.Activities == nil {
			t.Errorf("history[%d] has nil slices; empty days must serialize as []", i)
		}
	}

	if len(history[0].Activities) != 1 {
		t.Fatalf("today's activities = %d, want 1", len(history[0].Activities))
	}
	if history[0].Activities[0].Name != "running" || history[0].Activities[0].CaloriesBurned != 320 {
		t.Errorf("activity entry = %+v", history[0].Activities[0])
	}

	if len(history[1].Foods) != 1 {
		t.Fatalf("yesterday's foods = %d, want 1", len(history[1].Foods))
	}
	entry := history[1].Foods[0]
	if entry.Calories != 200 {
		t.Errorf("entry.Calories = %v, want catalog 100 x portion 2 = 200", entry.Calories)
	}
	if entry.Portion != 2 || entry.ID != 7 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestSummaryUpstreamError(t *testing.T) {
	cause := errors.New("connection refused")
	store := &stubSummaryStore{stepErr: cause}
	svc := newTestSummaryService(store)

	_, err := svc.GetTodaySummary(1)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %T: %v", err, err)
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("errors.As failed on %v", err)
	}
	if upstream.Stream != "step logs" {
		t.Errorf("Stream = %q, want %q", upstream.Stream, "step logs")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}

	// multi-bucket views abort on the first failure too
	if _, err := svc.GetWeeklySummary(1); err == nil {
		t.Error("GetWeeklySummary should propagate the store failure")
	}
	if _, err := svc.GetAllSummary(1); err == nil {
		t.Error("GetAllSummary should propagate the store failure")
	}
}
