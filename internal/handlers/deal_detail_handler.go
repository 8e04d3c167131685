package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/services"
)

// DealDetailHandler handles deal-detail requests.
type DealDetailHandler struct {
	detailService services.DealDetailServicer
}

// NewDealDetailHandler creates a new DealDetailHandler.
func NewDealDetailHandler(detailService services.DealDetailServicer) *DealDetailHandler {
	return &DealDetailHandler{detailService: detailService}
}

// DealDetailBody holds the writable detail fields, shared between the
// standalone create endpoint and the nested detail block on deal creation.
type DealDetailBody struct {
	BusinessModel           string     `json:"business_model" binding:"required"`
	RevenueSource           string     `json:"revenue_source" binding:"required"`
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

// CreateDealDetailRequest represents the request payload for creating a deal
// detail on its own, after the deal already exists.
type CreateDealDetailRequest struct {
	DealID string `json:"deal_id" binding:"required,uuid"`
	DealDetailBody
}

// UpdateDealDetailRequest represents a partial deal detail update.
type UpdateDealDetailRequest struct {
	BusinessModel           *string    `json:"business_model"`
	RevenueSource           *string    `json:"revenue_source"`
	ExpectedApyMinPct       *float64   `json:"expected_apy_min_pct"`
	ExpectedApyMaxPct       *float64   `json:"expected_apy_max_pct"`
	CapitalGainsBasis       *string    `json:"capital_gains_basis"`
	InvestmentValueNote     *string    `json:"investment_value_note"`
	YieldDistributionFormat *string    `json:"yield_distribution_format"`
	MinimumInvestment       *string    `json:"minimum_investment"`
	LiquidityNote           *string    `json:"liquidity_note"`
	OtherDetails            *string    `json:"other_details"`
	DetailsOfAsset          *string    `json:"details_of_asset"`
	AvgLoanToValuePct       *float64   `json:"avg_loan_to_value_pct"`
	ExpectedPossessionDate  *time.Time `json:"expected_possession_date"`
	FundTermYears           *float64   `json:"fund_term_years"`
	LastThirdPartyValuation *time.Time `json:"last_third_party_valuation"`
}

// toDetailInput maps a validated detail body to the service input.
func toDetailInput(dealID string, body DealDetailBody) services.CreateDealDetailInput {
	return services.CreateDealDetailInput{
		DealID:                  dealID,
		BusinessModel:           body.BusinessModel,
		RevenueSource:           body.RevenueSource,
		ExpectedApyMinPct:       body.ExpectedApyMinPct,
		ExpectedApyMaxPct:       body.ExpectedApyMaxPct,
		CapitalGainsBasis:       body.CapitalGainsBasis,
		InvestmentValueNote:     body.InvestmentValueNote,
		YieldDistributionFormat: body.YieldDistributionFormat,
		MinimumInvestment:       body.MinimumInvestment,
		LiquidityNote:           body.LiquidityNote,
		OtherDetails:            body.OtherDetails,
		DetailsOfAsset:          body.DetailsOfAsset,
		AvgLoanToValuePct:       body.AvgLoanToValuePct,
		ExpectedPossessionDate:  body.ExpectedPossessionDate,
		FundTermYears:           body.FundTermYears,
		LastThirdPartyValuation: body.LastThirdPartyValuation,
	}
}

// CreateDealDetail handles the creation of a deal detail record
// @Summary     Create deal detail
// @Description Create the 1:1 detail record for an existing deal; at most one per deal
// @Tags        deal-details
// @Accept      json
// @Produce     json
// @Param       request body CreateDealDetailRequest true "Deal detail"
// @Success     201 {object} map[string]interface{} "Deal detail created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Failure     409 {object} ErrorResponse "Deal detail already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deal-details [post]
func (h *DealDetailHandler) CreateDealDetail(c *gin.Context) {
	var req CreateDealDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	detail, err := h.detailService.CreateDealDetail(toDetailInput(req.DealID, req.DealDetailBody))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"deal_detail": detail})
}

// GetDealDetail handles the retrieval of a deal's detail record
// @Summary     Get deal detail
// @Description Get the detail record for a deal by deal ID
// @Tags        deal-details
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} map[string]interface{} "Deal detail"
// @Failure     400 {object} ErrorResponse "Invalid deal ID"
// @Failure     404 {object} ErrorResponse "Deal detail not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id}/detail [get]
func (h *DealDetailHandler) GetDealDetail(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.detailService.GetDealDetailByDealID(dealID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal_detail": detail})
}

// UpdateDealDetail handles updating a deal's detail record
// @Summary     Update deal detail
// @Description Partially update the detail record keyed by deal ID
// @Tags        deal-details
// @Accept      json
// @Produce     json
// @Param       id path string true "Deal ID"
// @Param       request body UpdateDealDetailRequest true "Updated detail fields"
// @Success     200 {object} map[string]interface{} "Updated deal detail"
// @Failure     400 {object} ErrorResponse "Invalid input or deal ID"
// @Failure     404 {object} ErrorResponse "Deal detail not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id}/detail [patch]
func (h *DealDetailHandler) UpdateDealDetail(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDealDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.UpdateDealDetailInput{
		BusinessModel:           req.BusinessModel,
		RevenueSource:           req.RevenueSource,
		ExpectedApyMinPct:       req.ExpectedApyMinPct,
		ExpectedApyMaxPct:       req.ExpectedApyMaxPct,
		CapitalGainsBasis:       req.CapitalGainsBasis,
		InvestmentValueNote:     req.InvestmentValueNote,
		YieldDistributionFormat: req.YieldDistributionFormat,
		MinimumInvestment:       req.MinimumInvestment,
		LiquidityNote:           req.LiquidityNote,
		OtherDetails:            req.OtherDetails,
		DetailsOfAsset:          req.DetailsOfAsset,
		AvgLoanToValuePct:       req.AvgLoanToValuePct,
		ExpectedPossessionDate:  req.ExpectedPossessionDate,
		FundTermYears:           req.FundTermYears,
		LastThirdPartyValuation: req.LastThirdPartyValuation,
	}

	detail, err := h.detailService.UpdateDealDetail(dealID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal_detail": detail})
}

// DeleteDealDetail handles deleting a deal's detail record
// @Summary     Delete deal detail
// @Description Delete the detail record keyed by deal ID
// @Tags        deal-details
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} MessageResponse "Deal detail deleted"
// @Failure     400 {object} ErrorResponse "Invalid deal ID"
// @Failure     404 {object} ErrorResponse "Deal detail not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id}/detail [delete]
func (h *DealDetailHandler) DeleteDealDetail(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.detailService.DeleteDealDetail(dealID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deal detail deleted successfully"})
}
