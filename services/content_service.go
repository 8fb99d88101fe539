package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// The small content catalogs (tips, FAQs, carousels, informations) share one
// service; they are flat lists without categories or search.

type TipInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type FaqInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
}

type CarouselInput struct {
	Title       string `json:"title"`
	PhotoURL    string `json:"photo_url"`
	PhotoBase64 string `json:"photo_base64"`
	TargetURL   string `json:"target_url"`
	Position    int    `json:"position"`
}

type InformationInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// ---------- tips ----------

func (s *ContentService) ListTips(page, limit int) ([]models.Tip, *PageMeta, error) {
	return listFlat[models.Tip](s.db, page, limit, "created_at DESC")
}

func (s *ContentService) CreateTip(input TipInput) (*models.Tip, error) {
	tip := models.Tip{Title: input.Title, Content: input.Content}
	if err := s.db.Create(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *ContentService) UpdateTip(id uint, input TipInput) (*models.Tip, error) {
	var tip models.Tip
	if err := s.db.First(&tip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("tip not found")
		}
		return nil, err
	}

	tip.Title = input.Title
	tip.Content = input.Content
	if err := s.db.Save(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *ContentService) DeleteTip(id uint) error {
	return s.db.Delete(&models.Tip{}, id).Error
}

// ---------- FAQs ----------

func (s *ContentService) ListFaqs(page, limit int) ([]models.Faq, *PageMeta, error) {
	return listFlat[models.Faq](s.db, page, limit, "id ASC")
}

func (s *ContentService) CreateFaq(input FaqInput) (*models.Faq, error) {
	faq := models.Faq{Question: input.Question, Answer: input.Answer}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *ContentService) UpdateFaq(id uint, input FaqInput) (*models.Faq, error) {
	var faq models.Faq
	if err := s.db.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("faq not found")
		}
		return nil, err
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	if err := s.db.Save(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *ContentService) DeleteFaq(id uint) error {
	return s.db.Delete(&models.Faq{}, id).Error
}

// ---------- carousels ----------

func (s *ContentService) ListCarousels(page, limit int) ([]models.Carousel, *PageMeta, error) {
	return listFlat[models.Carousel](s.db, page, limit, "position ASC")
}

func (s *ContentService) CreateCarousel(input CarouselInput) (*models.Carousel, error) {
	photoURL := input.PhotoURL
	if input.PhotoBase64 != "" {
		var err error
		photoURL, err = utils.UploadBase64ImageToS3(input.PhotoBase64, "carousels")
		if err != nil {
			return nil, err
		}
	}
	if photoURL == "" {
		return nil, NewValidationError("carousel photo is required")
	}

	carousel := models.Carousel{
		Title:     input.Title,
		PhotoURL:  photoURL,
		TargetURL: input.TargetURL,
		Position:  input.Position,
	}
	if err := s.db.Create(&carousel).Error; err != nil {
		return nil, err
	}
	return &carousel, nil
}

func (s *ContentService) DeleteCarousel(id uint) error {
	return s.db.Delete(&models.Carousel{}, id).Error
}

// ---------- informations ----------

func (s *ContentService) ListInformations(page, limit int) ([]models.Information, *PageMeta, error) {
	return listFlat[models.Information](s.db, page, limit, "created_at DESC")
}

func (s *ContentService) CreateInformation(input InformationInput) (*models.Information, error) {
	info := models.Information{Title: input.Title, Content: input.Content}
	if err := s.db.Create(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *ContentService) UpdateInformation(id uint, input InformationInput) (*models.Information, error) {
	var info models.Information
	if err := s.db.First(&info, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("information not found")
		}
		return nil, err
	}

	info.Title = input.Title
	info.Content = input.Content
	if err := s.db.Save(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *ContentService) DeleteInformation(id uint) error {
	return s.db.Delete(&models.Information{}, id).Error
}

func listFlat[T any](db *gorm.DB, page, limit int, order string) ([]T, *PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var model T
	query := db.Model(&model)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var rows []T
	if err := query.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	return rows, &PageMeta{Page: page, Limit: limit, Total: total}, nil
}
