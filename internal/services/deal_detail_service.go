package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/models"
)

// dealDetailService handles the 1:1 detail record attached to a deal.
type dealDetailService struct {
	db *gorm.DB
}

// NewDealDetailService creates a new DealDetailServicer.
func NewDealDetailService(db *gorm.DB) DealDetailServicer {
	return &dealDetailService{db: db}
}

// CreateDealDetail creates the detail record for a deal. The parent deal must
// exist and must not already have a detail record; uniqueness is enforced
// here with a check-then-insert.
func (s *dealDetailService) CreateDealDetail(input CreateDealDetailInput) (*models.DealDetail, error) {
	if input.BusinessModel == "" || input.RevenueSource == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"Business model and revenue source are required")
	}

	var dealCount int64
	if err := s.db.Model(&models.Deal{}).Where("id = ?", input.DealID).Count(&dealCount).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if dealCount == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDealNotFound,
			fmt.Sprintf("Deal with ID %s not found", input.DealID))
	}

	var existing int64
	if err := s.db.Model(&models.DealDetail{}).Where("deal_id = ?", input.DealID).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if existing > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDealDetailExists,
			fmt.Sprintf("Deal detail for deal ID %s already exists", input.DealID))
	}

	detail := &models.DealDetail{
		DealID:                  input.DealID,
		BusinessModel:           input.BusinessModel,
		RevenueSource:           input.RevenueSource,
		ExpectedApyMinPct:       input.ExpectedApyMinPct,
		ExpectedApyMaxPct:       input.ExpectedApyMaxPct,
		CapitalGainsBasis:       input.CapitalGainsBasis,
		InvestmentValueNote:     input.InvestmentValueNote,
		YieldDistributionFormat: input.YieldDistributionFormat,
		MinimumInvestment:       input.MinimumInvestment,
		LiquidityNote:           input.LiquidityNote,
		OtherDetails:            input.OtherDetails,
		DetailsOfAsset:          input.DetailsOfAsset,
		AvgLoanToValuePct:       input.AvgLoanToValuePct,
		ExpectedPossessionDate:  input.ExpectedPossessionDate,
		FundTermYears:           input.FundTermYears,
		LastThirdPartyValuation: input.LastThirdPartyValuation,
	}

	if err := s.db.Create(detail).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return detail, nil
}

// GetDealDetailByDealID retrieves the detail record for a deal.
func (s *dealDetailService) GetDealDetailByDealID(dealID string) (*models.DealDetail, error) {
	var detail models.DealDetail
	if err := s.db.Where("deal_id = ?", dealID).First(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrDealDetailNotFound,
				fmt.Sprintf("Deal detail for deal ID %s not found", dealID))
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &detail, nil
}

// UpdateDealDetail applies a partial update to the detail record keyed by
// deal ID.
func (s *dealDetailService) UpdateDealDetail(dealID string, patch UpdateDealDetailInput) (*models.DealDetail, error) {
	detail, err := s.GetDealDetailByDealID(dealID)
	if err != nil {
		return nil, err
	}

	var cols []string
	setString := func(col string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			cols = append(cols, col)
		}
	}

	setString("business_model", &detail.BusinessModel, patch.BusinessModel)
	setString("revenue_source", &detail.RevenueSource, patch.RevenueSource)
	setString("capital_gains_basis", &detail.CapitalGainsBasis, patch.CapitalGainsBasis)
	setString("investment_value_note", &detail.InvestmentValueNote, patch.InvestmentValueNote)
	setString("yield_distribution_format", &detail.YieldDistributionFormat, patch.YieldDistributionFormat)
	setString("minimum_investment", &detail.MinimumInvestment, patch.MinimumInvestment)
	setString("liquidity_note", &detail.LiquidityNote, patch.LiquidityNote)
	setString("details_of_asset", &detail.DetailsOfAsset, patch.DetailsOfAsset)
	if patch.ExpectedApyMinPct != nil {
		detail.ExpectedApyMinPct = patch.ExpectedApyMinPct
		cols = append(cols, "expected_apy_min_pct")
	}
	if patch.ExpectedApyMaxPct != nil {
		detail.ExpectedApyMaxPct = patch.ExpectedApyMaxPct
		cols = append(cols, "expected_apy_max_pct")
	}
	if patch.OtherDetails != nil {
		detail.OtherDetails = patch.OtherDetails
		cols = append(cols, "other_details")
	}
	if patch.AvgLoanToValuePct != nil {
		detail.AvgLoanToValuePct = patch.AvgLoanToValuePct
		cols = append(cols, "avg_loan_to_value_pct")
	}
	if patch.ExpectedPossessionDate != nil {
		detail.ExpectedPossessionDate = patch.ExpectedPossessionDate
		cols = append(cols, "expected_possession_date")
	}
	if patch.FundTermYears != nil {
		detail.FundTermYears = patch.FundTermYears
		cols = append(cols, "fund_term_years")
	}
	if patch.LastThirdPartyValuation != nil {
		detail.LastThirdPartyValuation = patch.LastThirdPartyValuation
		cols = append(cols, "last_third_party_valuation")
	}

	if len(cols) == 0 {
		return detail, nil
	}

	res := s.db.Model(&models.DealDetail{}).Where("deal_id = ?", dealID).Select(cols).Updates(detail)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrDealDetailNotFound,
			fmt.Sprintf("Deal detail for deal ID %s not found", dealID))
	}

	return s.GetDealDetailByDealID(dealID)
}

// DeleteDealDetail removes the detail record keyed by deal ID.
func (s *dealDetailService) DeleteDealDetail(dealID string) error {
	res := s.db.Where("deal_id = ?", dealID).Delete(&models.DealDetail{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.WithMessage(apperrors.ErrDealDetailNotFound,
			fmt.Sprintf("Deal detail for deal ID %s not found", dealID))
	}
	return nil
}
