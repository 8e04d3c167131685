package services

import (
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
	"gorm.io/gorm"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/metrics"
	"dealflow/internal/models"
	"dealflow/internal/pagination"
)

const (
	generatedCodeLength = 12
	defaultSampleLimit  = 5
)

// dealService handles deal-related business logic.
type dealService struct {
	db      *gorm.DB
	details DealDetailServicer
	metrics *metrics.DealMetrics
}

// NewDealService creates a new DealServicer.
func NewDealService(db *gorm.DB, details DealDetailServicer, m *metrics.DealMetrics) DealServicer {
	return &dealService{db: db, details: details, metrics: m}
}

// CreateDeal creates a deal after resolving its category, denormalizing the
// category name onto the record. When detail input is supplied, the linked
// DealDetail is created sequentially after the deal. The two writes are not
// atomic: if the detail step fails, the deal stays persisted and is returned
// together with the error so callers can observe the partial state.
func (s *dealService) CreateDeal(input CreateDealInput, detail *CreateDealDetailInput) (*models.Deal, *models.DealDetail, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
				fmt.Sprintf("Category with ID %s not found", input.CategoryID))
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	code := input.Code
	if code == "" {
		generate, err := nanoid.Standard(generatedCodeLength)
		if err != nil {
			return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		code = generate()
	}

	var codeCount int64
	if err := s.db.Model(&models.Deal{}).Where("code = ?", code).Count(&codeCount).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if codeCount > 0 {
		return nil, nil, apperrors.WithMessage(apperrors.ErrDuplicateDealCode,
			fmt.Sprintf("A deal with code %s already exists", code))
	}

	status := input.Status
	if status == "" {
		status = models.DealStatusActive
	}

	deal := &models.Deal{
		Title:                 input.Title,
		Code:                  code,
		CategoryID:            category.ID,
		CategoryName:          category.Name,
		AssetType:             input.AssetType,
		YieldSource:           input.YieldSource,
		ExpectedRevenueMinPct: input.ExpectedRevenueMinPct,
		ExpectedRevenueMaxPct: input.ExpectedRevenueMaxPct,
		ExpectedIrrMinPct:     input.ExpectedIrrMinPct,
		ExpectedIrrMaxPct:     input.ExpectedIrrMaxPct,
		MinimumInvestmentUSD:  input.MinimumInvestmentUSD,
		TotalAssetValueUSD:    input.TotalAssetValueUSD,
		Geography:             input.Geography,
		QualificationCriteria: input.QualificationCriteria,
		Status:                status,
		ImageURL:              input.ImageURL,
		Tags:                  input.Tags,
	}

	if err := s.db.Create(deal).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.RecordDealCreated(category.Name)

	if detail == nil {
		return deal, nil, nil
	}

	detail.DealID = deal.ID
	created, err := s.details.CreateDealDetail(*detail)
	if err != nil {
		// The deal is already durable at this point; surface the detail
		// failure instead of rolling back or swallowing it.
		return deal, nil, err
	}

	return deal, created, nil
}

// GetActiveDeals retrieves all deals with status "Active".
func (s *dealService) GetActiveDeals() ([]models.Deal, error) {
	var deals []models.Deal
	if err := s.db.Where("status = ?", models.DealStatusActive).Find(&deals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return deals, nil
}

// GetDealByID retrieves a deal by ID regardless of its status.
func (s *dealService) GetDealByID(id string) (*models.Deal, error) {
	var deal models.Deal
	if err := s.db.First(&deal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrDealNotFound,
				fmt.Sprintf("Deal with ID %s not found", id))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deal, nil
}

// GetDealByCode retrieves an active deal by its unique code. Unlike the ID
// lookup, inactive deals are not reachable by code.
func (s *dealService) GetDealByCode(code string) (*models.Deal, error) {
	var deal models.Deal
	err := s.db.Where("code = ? AND status = ?", code, models.DealStatusActive).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrDealNotFound,
				fmt.Sprintf("Deal with code %s not found", code))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deal, nil
}

// GetDealByIDOrCode resolves a deal by trying the ID lookup first and falling
// back to the code lookup. Two sequential round trips, not a combined query:
// the two lookups have different status semantics.
func (s *dealService) GetDealByIDOrCode(idOrCode string) (*models.Deal, error) {
	deal, err := s.GetDealByID(idOrCode)
	if err == nil {
		return deal, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	deal, err = s.GetDealByCode(idOrCode)
	if err == nil {
		return deal, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	return nil, apperrors.WithMessage(apperrors.ErrDealNotFound,
		fmt.Sprintf("Deal with ID or code %s not found", idOrCode))
}

// GetDealWithDetail resolves a deal by ID or code and fetches its detail
// record. A missing detail propagates as not found: details are mandatory for
// this composed read.
func (s *dealService) GetDealWithDetail(idOrCode string) (*models.Deal, *models.DealDetail, error) {
	deal, err := s.GetDealByIDOrCode(idOrCode)
	if err != nil {
		return nil, nil, err
	}

	dealID := deal.ID
	if dealID == "" {
		dealID = idOrCode
	}

	detail, err := s.details.GetDealDetailByDealID(dealID)
	if err != nil {
		return nil, nil, err
	}
	return deal, detail, nil
}

// UpdateDeal applies a partial update. When the category changes, the new
// category is resolved first and its name overwrites the cached
// category_name; clients can never set category_name independently.
func (s *dealService) UpdateDeal(id string, patch UpdateDealInput) (*models.Deal, error) {
	var categoryName *string
	if patch.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *patch.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
					fmt.Sprintf("Category with ID %s not found", *patch.CategoryID))
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		categoryName = &category.Name
	}

	deal, err := s.GetDealByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Code != nil && *patch.Code != deal.Code {
		var codeCount int64
		if err := s.db.Model(&models.Deal{}).Where("code = ?", *patch.Code).Count(&codeCount).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if codeCount > 0 {
			return nil, apperrors.WithMessage(apperrors.ErrDuplicateDealCode,
				fmt.Sprintf("A deal with code %s already exists", *patch.Code))
		}
	}

	var cols []string
	setString := func(col string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			cols = append(cols, col)
		}
	}
	setNullable := func(col string, dst **float64, src *float64) {
		if src != nil {
			*dst = src
			cols = append(cols, col)
		}
	}

	setString("title", &deal.Title, patch.Title)
	setString("code", &deal.Code, patch.Code)
	setString("category_id", &deal.CategoryID, patch.CategoryID)
	setString("category_name", &deal.CategoryName, categoryName)
	setString("asset_type", &deal.AssetType, patch.AssetType)
	setString("yield_source", &deal.YieldSource, patch.YieldSource)
	setNullable("expected_revenue_min_pct", &deal.ExpectedRevenueMinPct, patch.ExpectedRevenueMinPct)
	setNullable("expected_revenue_max_pct", &deal.ExpectedRevenueMaxPct, patch.ExpectedRevenueMaxPct)
	setNullable("expected_irr_min_pct", &deal.ExpectedIrrMinPct, patch.ExpectedIrrMinPct)
	setNullable("expected_irr_max_pct", &deal.ExpectedIrrMaxPct, patch.ExpectedIrrMaxPct)
	setNullable("total_asset_value_usd", &deal.TotalAssetValueUSD, patch.TotalAssetValueUSD)
	setString("geography", &deal.Geography, patch.Geography)
	setString("qualification_criteria", &deal.QualificationCriteria, patch.QualificationCriteria)
	setString("status", &deal.Status, patch.Status)
	setString("image_url", &deal.ImageURL, patch.ImageURL)
	if patch.MinimumInvestmentUSD != nil {
		deal.MinimumInvestmentUSD = *patch.MinimumInvestmentUSD
		cols = append(cols, "minimum_investment_usd")
	}
	if patch.Tags != nil {
		deal.Tags = patch.Tags
		cols = append(cols, "tags")
	}

	if len(cols) == 0 {
		return deal, nil
	}

	res := s.db.Model(&models.Deal{}).Where("id = ?", id).Select(cols).Updates(deal)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		// Deleted between the existence check and the update.
		return nil, apperrors.WithMessage(apperrors.ErrDealNotFound,
			fmt.Sprintf("Deal with ID %s not found", id))
	}

	return s.GetDealByID(id)
}

// DeleteDeal hard-deletes a deal by ID.
func (s *dealService) DeleteDeal(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Deal{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrDealNotFound,
			fmt.Sprintf("Deal with ID %s not found", id))
	}
	s.metrics.RecordDealDeleted()
	return nil
}

// GetDealsByCategory retrieves a page of active deals for a category name,
// newest first.
func (s *dealService) GetDealsByCategory(categoryName string, page pagination.PageRequest) (*pagination.PageResponse[models.Deal], error) {
	page.Defaults()

	base := s.db.Model(&models.Deal{}).
		Where("category_name = ? AND status = ?", categoryName, models.DealStatusActive)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var deals []models.Deal
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&deals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(deals, page.Page, page.Limit, totalItems)
	return &result, nil
}

// GetRandomDealsByCategories draws up to limit uniformly random active deals
// for every category, keyed by category name. Categories without active deals
// map to an empty list. Results vary per call.
func (s *dealService) GetRandomDealsByCategories(limit int) (map[string][]models.Deal, error) {
	if limit < 1 {
		limit = defaultSampleLimit
	}

	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	dealsByCategory := make(map[string][]models.Deal, len(categories))
	for _, category := range categories {
		var deals []models.Deal
		err := s.db.
			Where("category_name = ? AND status = ?", category.Name, models.DealStatusActive).
			Order("RANDOM()").
			Limit(limit).
			Find(&deals).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if deals == nil {
			deals = []models.Deal{}
		}
		dealsByCategory[category.Name] = deals
	}

	return dealsByCategory, nil
}

// isNotFound reports whether err is a not-found AppError.
func isNotFound(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.StatusCode == apperrors.ErrNotFound.StatusCode
}
