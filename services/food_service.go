package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type CatalogListQuery struct {
	Q            string `form:"q"`
	CategoryID   uint   `form:"category_id"`
	CategoryName string `form:"category_name"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	Sort         string `form:"sort"` // field.direction, e.g. created_at.desc
}

func (q *CatalogListQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	if q.Sort == "" {
		q.Sort = "created_at.desc"
	}
}

var sortableColumns = map[string]bool{
	"created_at": true,
	"name":       true,
	"title":      true,
	"calories":   true,
}

func orderClause(sort, fallback string) string {
	field := fallback
	direction := "desc"
	if parts := strings.SplitN(sort, ".", 2); parts[0] != "" {
		if sortableColumns[parts[0]] {
			field = parts[0]
		}
		if len(parts) == 2 && parts[1] == "asc" {
			direction = "asc"
		}
	}
	return field + " " + direction
}

type FoodInput struct {
	Name         string  `json:"name" binding:"required"`
	PhotoURL     string  `json:"photo_url"`
	PhotoBase64  string  `json:"photo_base64"`
	Description  string  `json:"description"`
	CategoryID   *uint   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	ServingSize  float64 `json:"serving_size"`
	ServingUnit  string  `json:"serving_unit"`
	WeightSize   float64 `json:"weight_size"`
	WeightUnit   string  `json:"weight_unit"`
	Calories     float64 `json:"calories"`
	Carbs        float64 `json:"carbs"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Fiber        float64 `json:"fiber"`
	Potassium    float64 `json:"potassium"`
}

// FoodPatch applies only the fields that are present, per the explicit-patch
// rule for partial updates.
type FoodPatch struct {
	Name        *string  `json:"name"`
	PhotoURL    *string  `json:"photo_url"`
	PhotoBase64 *string  `json:"photo_base64"`
	Description *string  `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	ServingSize *float64 `json:"serving_size"`
	ServingUnit *string  `json:"serving_unit"`
	WeightSize  *float64 `json:"weight_size"`
	WeightUnit  *string  `json:"weight_unit"`
	Calories    *float64 `json:"calories"`
	Carbs       *float64 `json:"carbs"`
	Protein     *float64 `json:"protein"`
	Fat         *float64 `json:"fat"`
	Sugar       *float64 `json:"sugar"`
	Sodium      *float64 `json:"sodium"`
	Fiber       *float64 `json:"fiber"`
	Potassium   *float64 `json:"potassium"`
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// ---------- categories ----------

func (s *FoodService) ListCategories(q string, page, limit int) ([]models.FoodCategory, *PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.FoodCategory{})
	if q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var categories []models.FoodCategory
	if err := query.Order("id ASC").Offset((page - 1) * limit).Limit(limit).Find(&categories).Error; err != nil {
		return nil, nil, err
	}
	return categories, &PageMeta{Page: page, Limit: limit, Total: total}, nil
}

func (s *FoodService) CreateCategory(name string) (*models.FoodCategory, error) {
	var existing models.FoodCategory
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.FoodCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *FoodService) UpdateCategory(id uint, name string) (*models.FoodCategory, error) {
	var category models.FoodCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("food category not found")
		}
		return nil, err
	}

	category.Name = name
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *FoodService) DeleteCategory(id uint) error {
	return s.db.Delete(&models.FoodCategory{}, id).Error
}

func (s *FoodService) resolveCategory(id *uint, name string) (*uint, error) {
	if id != nil {
		var category models.FoodCategory
		if err := s.db.First(&category, *id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("food category not found")
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

// ---------- foods ----------

func (s *FoodService) ListFoods(q CatalogListQuery) ([]models.Food, *PageMeta, error) {
	q.normalize()

	query := s.db.Model(&models.Food{}).Preload("Category")
	if q.Q != "" {
		pattern := "%" + q.Q + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.CategoryID != 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	} else if q.CategoryName != "" {
		var category models.FoodCategory
		if err := s.db.Where("name = ?", q.CategoryName).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []models.Food{}, &PageMeta{Page: q.Page, Limit: q.Limit}, nil
			}
			return nil, nil, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var foods []models.Food
	err := query.Order(orderClause(q.Sort, "created_at")).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&foods).Error
	if err != nil {
		return nil, nil, err
	}
	return foods, &PageMeta{Page: q.Page, Limit: q.Limit, Total: total}, nil
}

func (s *FoodService) GetFoodByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.Preload("Category").First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("food not found")
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) CreateFood(input FoodInput) (*models.Food, error) {
	categoryID, err := s.resolveCategory(input.CategoryID, input.CategoryName)
	if err != nil {
		return nil, err
	}

	photoURL := input.PhotoURL
	if input.PhotoBase64 != "" {
		photoURL, err = utils.UploadBase64ImageToS3(input.PhotoBase64, "foods")
		if err != nil {
			return nil, err
		}
	}

	food := models.Food{
		Name:        input.Name,
		PhotoURL:    photoURL,
		Description: input.Description,
		CategoryID:  categoryID,
		ServingSize: input.ServingSize,
		ServingUnit: input.ServingUnit,
		WeightSize:  input.WeightSize,
		WeightUnit:  input.WeightUnit,
		Calories:    input.Calories,
		Carbs:       input.Carbs,
		Protein:     input.Protein,
		Fat:         input.Fat,
		Sugar:       input.Sugar,
		Sodium:      input.Sodium,
		Fiber:       input.Fiber,
		Potassium:   input.Potassium,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) UpdateFood(id uint, patch FoodPatch) (*models.Food, error) {
	food, err := s.GetFoodByID(id)
	if err != nil {
		return nil, err
	}

	if patch.CategoryID != nil {
		categoryID, err := s.resolveCategory(patch.CategoryID, "")
		if err != nil {
			return nil, err
		}
		food.CategoryID = categoryID
	}
	if patch.PhotoBase64 != nil && *patch.PhotoBase64 != "" {
		photoURL, err := utils.UploadBase64ImageToS3(*patch.PhotoBase64, "foods")
		if err != nil {
			return nil, err
		}
		food.PhotoURL = photoURL
	} else if patch.PhotoURL != nil {
		food.PhotoURL = *patch.PhotoURL
	}

	if patch.Name != nil {
		food.Name = *patch.Name
	}
	if patch.Description != nil {
		food.Description = *patch.Description
	}
	if patch.ServingSize != nil {
		food.ServingSize = *patch.ServingSize
	}
	if patch.ServingUnit != nil {
		food.ServingUnit = *patch.ServingUnit
	}
	if patch.WeightSize != nil {
		food.WeightSize = *patch.WeightSize
	}
	if patch.WeightUnit != nil {
		food.WeightUnit = *patch.WeightUnit
	}
	if patch.Calories != nil {
		food.Calories = *patch.Calories
	}
	if patch.Carbs != nil {
		food.Carbs = *patch.Carbs
	}
	if patch.Protein != nil {
		food.Protein = *patch.Protein
	}
	if patch.Fat != nil {
		food.Fat = *patch.Fat
	}
	if patch.Sugar != nil {
		food.Sugar = *patch.Sugar
	}
	if patch.Sodium != nil {
		food.Sodium = *patch.Sodium
	}
	if patch.Fiber != nil {
		food.Fiber = *patch.Fiber
	}
	if patch.Potassium != nil {
		food.Potassium = *patch.Potassium
	}

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) DeleteFood(id uint) error {
	return s.db.Delete(&models.Food{}, id).Error
}
