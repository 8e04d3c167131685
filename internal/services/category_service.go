package services

import (
	"errors"
	"fmt"
	"net/url"

	"gorm.io/gorm"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/metrics"
	"dealflow/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db      *gorm.DB
	metrics *metrics.DealMetrics
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, m *metrics.DealMetrics) CategoryServicer {
	return &categoryService{db: db, metrics: m}
}

// CreateCategory creates a new category. Categories default to active.
func (s *categoryService) CreateCategory(name, description, imageURL string, isActive *bool) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	category := &models.Category{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
	}
	if isActive != nil {
		category.IsActive = *isActive
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetAllCategories retrieves every category, each augmented with its derived
// route key (the percent-encoded name, usable as a URL path segment).
func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range categories {
		categories[i].RouteKey = url.PathEscape(categories[i].Name)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
				fmt.Sprintf("Category with ID %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category. Empty strings mean "leave
// unchanged". When the name changes, the new name is propagated to the cached
// category_name on every deal referencing this category before returning, so
// callers never observe a half-applied rename.
func (s *categoryService) UpdateCategory(id, name, description, imageURL string, isActive *bool) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	renamed := name != "" && name != category.Name

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if imageURL != "" {
		updates["image_url"] = imageURL
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if renamed {
		// Bulk rewrite of the denormalized name, single column only.
		res := s.db.Model(&models.Deal{}).
			Where("category_id = ?", id).
			Update("category_name", name)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		s.metrics.RecordRenameCascade(res.RowsAffected)
	}

	return category, nil
}

// DeleteCategory hard-deletes a category. Deletion is refused while any deal
// still references the category.
func (s *categoryService) DeleteCategory(id string) error {
	var dealCount int64
	if err := s.db.Model(&models.Deal{}).Where("category_id = ?", id).Count(&dealCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if dealCount > 0 {
		return apperrors.WithMessage(apperrors.ErrCategoryHasDeals,
			fmt.Sprintf("Cannot delete category with ID %s because it has associated deals", id))
	}

	res := s.db.Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrCategoryNotFound,
			fmt.Sprintf("Category with ID %s not found", id))
	}
	return nil
}
