package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type EventInput struct {
	Title        string    `json:"title" binding:"required"`
	PhotoURL     string    `json:"photo_url"`
	PhotoBase64  string    `json:"photo_base64"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	Location     string    `json:"location"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	CategoryID   *uint     `json:"category_id"`
	CategoryName string    `json:"category_name"`
}

type EventPatch struct {
	Title       *string    `json:"title"`
	PhotoURL    *string    `json:"photo_url"`
	PhotoBase64 *string    `json:"photo_base64"`
	Description *string    `json:"description"`
	Content     *string    `json:"content"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	CategoryID  *uint      `json:"category_id"`
}

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) ListCategories(q string, page, limit int) ([]models.EventCategory, *PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.EventCategory{})
	if q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var categories []models.EventCategory
	if err := query.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	return categories, &PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (s *EventService) CreateCategory(name string) (*models.EventCategory, error) {
	var existing models.EventCategory
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.EventCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *EventService) DeleteCategory(id uint) error {
	return s.db.Delete(&models.EventCategory{}, id).Error
}

func (s *EventService) ListEvents(q CatalogListQuery) ([]models.Event, *PageMeta, error) {
	q.normalize()

	query := s.db.Model(&models.Event{}).Preload("Category")
	if q.Q != "" {
		pattern := "%" + q.Q + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.CategoryID != 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var events []models.Event
	err := query.Order(orderClause(q.Sort, "created_at")).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&events).Error
	if err != nil {
		return nil, nil, err
	}
	return events, &PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *EventService) GetEventByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Category").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("event not found")
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) CreateEvent(input EventInput) (*models.Event, error) {
	var categoryID *uint
	if input.CategoryID != nil {
		categoryID = input.CategoryID
	} else if input.CategoryName != "" {
		category, err := s.CreateCategory(input.CategoryName)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	photoURL := input.PhotoURL
	if input.PhotoBase64 != "" {
		var err error
		photoURL, err = utils.UploadBase64ImageToS3(input.PhotoBase64, "events")
		if err != nil {
			return nil, err
		}
	}

	event := models.Event{
		Title:       input.Title,
		PhotoURL:    photoURL,
		Description: input.Description,
		Content:     input.Content,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CategoryID:  categoryID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) UpdateEvent(id uint, patch EventPatch) (*models.Event, error) {
	event, err := s.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	if patch.PhotoBase64 != nil && *patch.PhotoBase64 != "" {
		photoURL, err := utils.UploadBase64ImageToS3(*patch.PhotoBase64, "events")
		if err != nil {
			return nil, err
		}
		event.PhotoURL = photoURL
	} else if patch.PhotoURL != nil {
		event.PhotoURL = *patch.PhotoURL
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Content != nil {
		event.Content = *patch.Content
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.StartsAt != nil {
		event.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		event.EndsAt = *patch.EndsAt
	}
	if patch.CategoryID != nil {
		event.CategoryID = patch.CategoryID
	}

	if err := s.db.Save(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(id uint) error {
	return s.db.Delete(&models.Event{}, id).Error
}
