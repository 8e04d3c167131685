package models

// DealStatusActive is the status that makes a deal visible in listings.
// Status is free-form (capped at 40 chars); only "Active" has filter
// semantics.
const DealStatusActive = "Active"

// Deal represents an investment offering.
//
// CategoryName is a denormalized copy of the referenced category's name. It
// is resolved from CategoryID on every create and category change, and kept
// consistent by the rename cascade in the category service; it is never
// client-settable directly.
type Deal struct {
	Base
	Title                 string   `gorm:"size:120;not null" json:"title"`
	Code                  string   `gorm:"size:16;uniqueIndex;not null" json:"code"`
	CategoryID            string   `gorm:"type:uuid;not null;index" json:"category_id"`
	CategoryName          string   `gorm:"size:120" json:"category_name"`
	AssetType             string   `gorm:"size:120;not null" json:"asset_type"`
	YieldSource           string   `gorm:"size:120;not null" json:"yield_source"`
	ExpectedRevenueMinPct *float64 `json:"expected_revenue_min_pct"`
	ExpectedRevenueMaxPct *float64 `json:"expected_revenue_max_pct"`
	ExpectedIrrMinPct     *float64 `json:"expected_irr_min_pct"`
	ExpectedIrrMaxPct     *float64 `json:"expected_irr_max_pct"`
	MinimumInvestmentUSD  float64  `gorm:"not null" json:"minimum_investment_usd"`
	TotalAssetValueUSD    *float64 `json:"total_asset_value_usd"`
	Geography             string   `gorm:"size:120" json:"geography"`
	QualificationCriteria string   `json:"qualification_criteria"`
	Status                string   `gorm:"size:40;not null;default:Active" json:"status"`
	ImageURL              string   `json:"image_url"`
	Tags                  []string `gorm:"serializer:json" json:"tags"`

	// Relationships
	Category *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Detail   *DealDetail `gorm:"foreignKey:DealID" json:"detail,omitempty"`
}
