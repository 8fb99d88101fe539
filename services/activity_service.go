package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ActivityInput struct {
	Name           string  `json:"name" binding:"required"`
	PhotoURL       string  `json:"photo_url"`
	PhotoBase64    string  `json:"photo_base64"`
	Description    string  `json:"description"`
	CategoryID     *uint   `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	CaloriesBurned float64 `json:"calories_burned"`
	Duration       float64 `json:"duration"`
	DurationUnit   string  `json:"duration_unit"`
}

type ActivityPatch struct {
	Name           *string  `json:"name"`
	PhotoURL       *string  `json:"photo_url"`
	PhotoBase64    *string  `json:"photo_base64"`
	Description    *string  `json:"description"`
	CategoryID     *uint    `json:"category_id"`
	CaloriesBurned *float64 `json:"calories_burned"`
	Duration       *float64 `json:"duration"`
	DurationUnit   *string  `json:"duration_unit"`
}

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) ListCategories(q string, page, limit int) ([]models.ActivityCategory, *PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.ActivityCategory{})
	if q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var categories []models.ActivityCategory
	if err := query.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	return categories, &PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (s *ActivityService) CreateCategory(name string) (*models.ActivityCategory, error) {
	var existing models.ActivityCategory
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.ActivityCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ActivityService) UpdateCategory(id uint, name string) (*models.ActivityCategory, error) {
	var category models.ActivityCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("activity category not found")
		}
		return nil, err
	}

	category.Name = name
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ActivityService) DeleteCategory(id uint) error {
	return s.db.Delete(&models.ActivityCategory{}, id).Error
}

func (s *ActivityService) resolveCategory(id *uint, name string) (*uint, error) {
	if id != nil {
		var category models.ActivityCategory
		if err := s.db.First(&category, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("activity category not found")
			}
			return nil, err
		}
		return id, nil
	}
	if name != "" {
		category, err := s.CreateCategory(name)
		if err != nil {
			return nil, err
		}
		return &category.ID, nil
	}
	return nil, nil
}

func (s *ActivityService) ListActivities(q CatalogListQuery) ([]models.Activity, *PageMeta, error) {
	q.normalize()

	query := s.db.Model(&models.Activity{}).Preload("Category")
	if q.Q != "" {
		pattern := "%" + q.Q + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.CategoryID != 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	} else if q.CategoryName != "" {
		var category models.ActivityCategory
		if err := s.db.Where("name = ?", q.CategoryName).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.Activity{}, &PageMeta{Page: q.Page, Limit: q.Limit}, nil
			}
			return nil, nil, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var activities []models.Activity
	err := query.Order(orderClause(q.Sort, "created_at")).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&activities).Error
	if err != nil {
		return nil, nil, err
	}
	return activities, &PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *ActivityService) GetActivityByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Preload("Category").First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("activity not found")
		}
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) CreateActivity(input ActivityInput) (*models.Activity, error) {
	categoryID, err := s.resolveCategory(input.CategoryID, input.CategoryName)
	if err != nil {
		return nil, err
	}

	photoURL := input.PhotoURL
	if input.PhotoBase64 != "" {
		photoURL, err = utils.UploadBase64ImageToS3(input.PhotoBase64, "activities")
		if err != nil {
			return nil, err
		}
	}

	activity := models.Activity{
		Name:           input.Name,
		PhotoURL:       photoURL,
		Description:    input.Description,
		CategoryID:     categoryID,
		CaloriesBurned: input.CaloriesBurned,
		Duration:       input.Duration,
		DurationUnit:   input.DurationUnit,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) UpdateActivity(id uint, patch ActivityPatch) (*models.Activity, error) {
	activity, err := s.GetActivityByID(id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		categoryID, err := s.resolveCategory(patch.CategoryID, "")
		if err != nil {
			return nil, err
		}
		activity.CategoryID = categoryID
	}
	if patch.PhotoBase64 != nil && *patch.PhotoBase64 != "" {
		photoURL, err := utils.UploadBase64ImageToS3(*patch.PhotoBase64, "activities")
		if err != nil {
			return nil, err
		}
		activity.PhotoURL = photoURL
	} else if patch.PhotoURL != nil {
		activity.PhotoURL = *patch.PhotoURL
	}

	if patch.Name != nil {
		activity.Name = *patch.Name
	}
	if patch.Description != nil {
		activity.Description = *patch.Description
	}
	if patch.CaloriesBurned != nil {
		activity.CaloriesBurned = *patch.CaloriesBurned
	}
	if patch.Duration != nil {
		activity.Duration = *patch.Duration
	}
	if patch.DurationUnit != nil {
		activity.DurationUnit = *patch.DurationUnit
	}

	if err := s.db.Save(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) DeleteActivity(id uint) error {
	return s.db.Delete(&models.Activity{}, id).Error
}
