package services

import (
	"time"

	"dealflow/internal/models"
	"dealflow/internal/pagination"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description, imageURL string, isActive *bool) (*models.Category, error)
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name, description, imageURL string, isActive *bool) (*models.Category, error)
	DeleteCategory(id string) error
}

// CreateDealInput holds the fields for creating a deal. Code may be left
// empty, in which case the service generates one. CategoryName is always
// resolved from CategoryID, never taken from the caller.
type CreateDealInput struct {
	Title                 string
	Code                  string
	CategoryID            string
	AssetType             string
	YieldSource           string
	ExpectedRevenueMinPct *float64
	ExpectedRevenueMaxPct *float64
	ExpectedIrrMinPct     *float64
	ExpectedIrrMaxPct     *float64
	MinimumInvestmentUSD  float64
	TotalAssetValueUSD    *float64
	Geography             string
	QualificationCriteria string
	Status                string
	ImageURL              string
	Tags                  []string
}

// UpdateDealInput holds a partial deal update. Nil fields are left unchanged;
// a nil Tags slice likewise means "do not touch tags".
type UpdateDealInput struct {
	Title                 *string
	Code                  *string
	CategoryID            *string
	AssetType             *string
	YieldSource           *string
	ExpectedRevenueMinPct *float64
	ExpectedRevenueMaxPct *float64
	ExpectedIrrMinPct     *float64
	ExpectedIrrMaxPct     *float64
	MinimumInvestmentUSD  *float64
	TotalAssetValueUSD    *float64
	Geography             *string
	QualificationCriteria *string
	Status                *string
	ImageURL              *string
	Tags                  []string
}

// DealServicer defines the contract for deal-related business logic,
// including the composed deal-with-detail read.
type DealServicer interface {
	CreateDeal(input CreateDealInput, detail *CreateDealDetailInput) (*models.Deal, *models.DealDetail, error)
	GetActiveDeals() ([]models.Deal, error)
	GetDealByID(id string) (*models.Deal, error)
	GetDealByCode(code string) (*models.Deal, error)
	GetDealByIDOrCode(idOrCode string) (*models.Deal, error)
	GetDealWithDetail(idOrCode string) (*models.Deal, *models.DealDetail, error)
	UpdateDeal(id string, patch UpdateDealInput) (*models.Deal, error)
	DeleteDeal(id string) error
	GetDealsByCategory(categoryName string, page pagination.PageRequest) (*pagination.PageResponse[models.Deal], error)
	GetRandomDealsByCategories(limit int) (map[string][]models.Deal, error)
}

// CreateDealDetailInput holds the fields for creating a deal detail record.
type CreateDealDetailInput struct {
	DealID                  string
	BusinessModel           string
	RevenueSource           string
	ExpectedApyMinPct       *float64
	ExpectedApyMaxPct       *float64
	CapitalGainsBasis       string
	InvestmentValueNote     string
	YieldDistributionFormat string
	MinimumInvestment       string
	LiquidityNote           string
	OtherDetails            *string
	DetailsOfAsset          string
	AvgLoanToValuePct       *float64
	ExpectedPossessionDate  *time.Time
	FundTermYears           *float64
	LastThirdPartyValuation *time.Time
}

// UpdateDealDetailInput holds a partial deal detail update keyed by deal ID.
// Nil fields are left unchanged.
type UpdateDealDetailInput struct {
	BusinessModel           *string
	RevenueSource           *string
	ExpectedApyMinPct       *float64
	ExpectedApyMaxPct       *float64
	CapitalGainsBasis       *string
	InvestmentValueNote     *string
	YieldDistributionFormat *string
	MinimumInvestment       *string
	LiquidityNote           *string
	OtherDetails            *string
	DetailsOfAsset          *string
	AvgLoanToValuePct       *float64
	ExpectedPossessionDate  *time.Time
	FundTermYears           *float64
	LastThirdPartyValuation *time.Time
}

// DealDetailServicer defines the contract for deal-detail business logic.
// All operations except creation are keyed by deal ID, not the record's own ID.
type DealDetailServicer interface {
	CreateDealDetail(input CreateDealDetailInput) (*models.DealDetail, error)
	GetDealDetailByDealID(dealID string) (*models.DealDetail, error)
	UpdateDealDetail(dealID string, patch UpdateDealDetailInput) (*models.DealDetail, error)
	DeleteDealDetail(dealID string) error
}
