package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ArticleInput struct {
	Title        string `json:"title" binding:"required"`
	PhotoURL     string `json:"photo_url"`
	PhotoBase64  string `json:"photo_base64"`
	Description  string `json:"description"`
	Content      string `json:"content"`
	CategoryID   *uint  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type ArticlePatch struct {
	Title       *string `json:"title"`
	PhotoURL    *string `json:"photo_url"`
	PhotoBase64 *string `json:"photo_base64"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	CategoryID  *uint   `json:"category_id"`
}

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

func (s *ArticleService) ListCategories(q string, page, limit int) ([]models.ArticleCategory, *PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.ArticleCategory{})
	if q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var categories []models.ArticleCategory
	if err := query.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	return categories, &PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (s *ArticleService) CreateCategory(name string) (*models.ArticleCategory, error) {
	var existing models.ArticleCategory
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.ArticleCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ArticleService) DeleteCategory(id uint) error {
	return s.db.Delete(&models.ArticleCategory{}, id).Error
}

func (s *ArticleService) ListArticles(q CatalogListQuery) ([]models.Article, *PageMeta, error) {
	q.normalize()

	query := s.db.Model(&models.Article{}).Preload("Category")
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

	var articles []models.Article
	err := query.Order(orderClause(q.Sort, "created_at")).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, nil, err
	}
	return articles, &PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *ArticleService) GetArticleByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := s.db.Preload("Category").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("article not found")
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) CreateArticle(input ArticleInput) (*models.Article, error) {
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
		photoURL, err = utils.UploadBase64ImageToS3(input.PhotoBase64, "articles")
		if err != nil {
			return nil, err
		}
	}

	article := models.Article{
		Title:       input.Title,
		PhotoURL:    photoURL,
		Description: input.Description,
		Content:     input.Content,
		CategoryID:  categoryID,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) UpdateArticle(id uint, patch ArticlePatch) (*models.Article, error) {
	article, err := s.GetArticleByID(id)
	if err != nil {
		return nil, err
	}

	if patch.PhotoBase64 != nil && *patch.PhotoBase64 != "" {
		photoURL, err := utils.UploadBase64ImageToS3(*patch.PhotoBase64, "articles")
		if err != nil {
			return nil, err
		}
		article.PhotoURL = photoURL
	} else if patch.PhotoURL != nil {
		article.PhotoURL = *patch.PhotoURL
	}
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Description != nil {
		article.Description = *patch.Description
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		article.CategoryID = patch.CategoryID
	}

	if err := s.db.Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(id uint) error {
	return s.db.Delete(&models.Article{}, id).Error
}
