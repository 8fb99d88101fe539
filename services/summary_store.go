package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// SummaryStore is the narrow read contract the aggregator runs on. The range
// is inclusive on both ends; rows come back joined with their catalog entry.
type SummaryStore interface {
	FoodLogsInRange(userID uint, start, end time.Time) ([]models.FoodLog, error)
	ActivityLogsInRange(userID uint, start, end time.Time) ([]models.ActivityLog, error)
	StepLogsInRange(userID uint, start, end time.Time) ([]models.StepLog, error)
	WaterLogsInRange(userID uint, start, end time.Time) ([]models.WaterLog, error)
}

type GormSummaryStore struct {
	db *gorm.DB
}

func NewGormSummaryStore(db *gorm.DB) *GormSummaryStore {
	return &GormSummaryStore{db: db}
}

func (s *GormSummaryStore) FoodLogsInRange(userID uint, start, end time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.Preload("Food").
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *GormSummaryStore) ActivityLogsInRange(userID uint, start, end time.Time) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := s.db.Preload("Activity").
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Order("logged_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *GormSummaryStore) StepLogsInRange(userID uint, start, end time.Time) ([]models.StepLog, error) {
	var logs []models.StepLog
	err := s.db.
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Find(&logs).Error
	return logs, err
}

func (s *GormSummaryStore) WaterLogsInRange(userID uint, start, end time.Time) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := s.db.
		Where("user_id = ? AND logged_at BETWEEN ? AND ?", userID, start, end).
		Find(&logs).Error
	return logs, err
}
