package models

import "time"

// DealDetail holds the extended financial attributes of a single deal.
// At most one record may exist per DealID; the service layer enforces this
// with a check-then-insert rather than a unique constraint, matching the
// write-time contract of the detail create path.
type DealDetail struct {
	Base
	DealID                  string     `gorm:"type:uuid;not null;index" json:"deal_id"`
	BusinessModel           string     `gorm:"not null" json:"business_model"`
	RevenueSource           string     `gorm:"not null" json:"revenue_source"`
	ExpectedApyMinPct       *float64   `json:"expected_apy_min_pct"`
	ExpectedApyMaxPct       *float64   `json:"expected_apy_max_pct"`
	CapitalGainsBasis       string     `json:"capital_gains_basis"`
	InvestmentValueNote     string     `json:"investment_value_note"`
	YieldDistributionFormat string     `json:"yield_distribution_format"`
	MinimumInvestment       string     `json:"minimum_investment"`
	LiquidityNote           string     `json:"liquidity_note"`
	OtherDetails            *string    `json:"other_details"`
	DetailsOfAsset          string     `json:"details_of_asset"`
	AvgLoanToValuePct       *float64   `json:"avg_loan_to_value_pct"`
	ExpectedPossessionDate  *time.Time `json:"expected_possession_date"`
	FundTermYears           *float64   `json:"fund_term_years"`
	LastThirdPartyValuation *time.Time `json:"last_third_party_valuation"`
}
