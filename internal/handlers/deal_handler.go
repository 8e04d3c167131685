package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/pagination"
	"dealflow/internal/services"
)

// DealHandler handles deal-related requests.
type DealHandler struct {
	dealService services.DealServicer
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealService services.DealServicer) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// CreateDealRequest represents the request payload for creating a deal.
// Code is optional: when omitted, the server generates one. An optional
// nested detail block creates the linked DealDetail in the same request.
type CreateDealRequest struct {
	Title                 string          `json:"title" binding:"required,max=120"`
	Code                  string          `json:"code" binding:"omitempty,deal_code"`
	CategoryID            string          `json:"category_id" binding:"required,uuid"`
	AssetType             string          `json:"asset_type" binding:"required,max=120"`
	YieldSource           string          `json:"yield_source" binding:"required,max=120"`
	ExpectedRevenueMinPct *float64        `json:"expected_revenue_min_pct"`
	ExpectedRevenueMaxPct *float64        `json:"expected_revenue_max_pct"`
	ExpectedIrrMinPct     *float64        `json:"expected_irr_min_pct"`
	ExpectedIrrMaxPct     *float64        `json:"expected_irr_max_pct"`
	MinimumInvestmentUSD  *float64        `json:"minimum_investment_usd" binding:"required,gte=0"`
	TotalAssetValueUSD    *float64        `json:"total_asset_value_usd"`
	Geography             string          `json:"geography" binding:"omitempty,max=120"`
	QualificationCriteria string          `json:"qualification_criteria"`
	Status                string          `json:"status" binding:"omitempty,max=40"`
	ImageURL              string          `json:"image_url" binding:"omitempty,url"`
	Tags                  []string        `json:"tags"`
	Detail                *DealDetailBody `json:"detail"`
}

// UpdateDealRequest represents a partial deal update. Nil fields are left
// unchanged. category_name is not accepted: it always follows category_id.
type UpdateDealRequest struct {
	Title                 *string  `json:"title" binding:"omitempty,max=120"`
	Code                  *string  `json:"code" binding:"omitempty,deal_code"`
	CategoryID            *string  `json:"category_id" binding:"omitempty,uuid"`
	AssetType             *string  `json:"asset_type" binding:"omitempty,max=120"`
	YieldSource           *string  `json:"yield_source" binding:"omitempty,max=120"`
	ExpectedRevenueMinPct *float64 `json:"expected_revenue_min_pct"`
	ExpectedRevenueMaxPct *float64 `json:"expected_revenue_max_pct"`
	ExpectedIrrMinPct     *float64 `json:"expected_irr_min_pct"`
	ExpectedIrrMaxPct     *float64 `json:"expected_irr_max_pct"`
	MinimumInvestmentUSD  *float64 `json:"minimum_investment_usd" binding:"omitempty,gte=0"`
	TotalAssetValueUSD    *float64 `json:"total_asset_value_usd"`
	Geography             *string  `json:"geography" binding:"omitempty,max=120"`
	QualificationCriteria *string  `json:"qualification_criteria"`
	Status                *string  `json:"status" binding:"omitempty,max=40"`
	ImageURL              *string  `json:"image_url" binding:"omitempty,url"`
	Tags                  []string `json:"tags"`
}

// CreateDeal handles the creation of a new deal
// @Summary     Create a deal
// @Description Create a new deal, optionally together with its detail record
// @Tags        deals
// @Accept      json
// @Produce     json
// @Param       request body CreateDealRequest true "Deal details"
// @Success     201 {object} map[string]interface{} "Deal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate deal code"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.CreateDealInput{
		Title:                 req.Title,
		Code:                  req.Code,
		CategoryID:            req.CategoryID,
		AssetType:             req.AssetType,
		YieldSource:           req.YieldSource,
		ExpectedRevenueMinPct: req.ExpectedRevenueMinPct,
		ExpectedRevenueMaxPct: req.ExpectedRevenueMaxPct,
		ExpectedIrrMinPct:     req.ExpectedIrrMinPct,
		ExpectedIrrMaxPct:     req.ExpectedIrrMaxPct,
		MinimumInvestmentUSD:  *req.MinimumInvestmentUSD,
		TotalAssetValueUSD:    req.TotalAssetValueUSD,
		Geography:             req.Geography,
		QualificationCriteria: req.QualificationCriteria,
		Status:                req.Status,
		ImageURL:              req.ImageURL,
		Tags:                  req.Tags,
	}

	var detailInput *services.CreateDealDetailInput
	if req.Detail != nil {
		in := toDetailInput("", *req.Detail)
		detailInput = &in
	}

	deal, detail, err := h.dealService.CreateDeal(input, detailInput)
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := gin.H{"deal": deal}
	if detail != nil {
		response["deal_detail"] = detail
	}
	c.JSON(http.StatusCreated, response)
}

// GetActiveDeals handles the retrieval of all active deals
// @Summary     List active deals
// @Description Get all deals with status "Active"
// @Tags        deals
// @Produce     json
// @Success     200 {object} map[string]interface{} "List of deals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals [get]
func (h *DealHandler) GetActiveDeals(c *gin.Context) {
	deals, err := h.dealService.GetActiveDeals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

// GetDealByID handles the retrieval of a specific deal
// @Summary     Get deal by ID
// @Description Get a deal by ID, regardless of status
// @Tags        deals
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} map[string]interface{} "Deal"
// @Failure     400 {object} ErrorResponse "Invalid deal ID"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id} [get]
func (h *DealHandler) GetDealByID(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deal, err := h.dealService.GetDealByID(dealID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

// GetDealWithDetail handles the composed deal+detail read
// @Summary     Get deal with detail
// @Description Resolve a deal by ID or code and return it together with its detail record
// @Tags        deals
// @Produce     json
// @Param       idOrCode path string true "Deal ID or code"
// @Success     200 {object} map[string]interface{} "Deal and its detail"
// @Failure     404 {object} ErrorResponse "Deal or detail not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deal-details/{idOrCode} [get]
func (h *DealHandler) GetDealWithDetail(c *gin.Context) {
	deal, detail, err := h.dealService.GetDealWithDetail(c.Param("idOrCode"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal": deal, "deal_detail": detail})
}

// UpdateDeal handles updating a deal
// @Summary     Update deal
// @Description Partially update a deal; changing category_id re-resolves the cached category name
// @Tags        deals
// @Accept      json
// @Produce     json
// @Param       id path string true "Deal ID"
// @Param       request body UpdateDealRequest true "Updated deal fields"
// @Success     200 {object} map[string]interface{} "Updated deal"
// @Failure     400 {object} ErrorResponse "Invalid input or deal ID"
// @Failure     404 {object} ErrorResponse "Deal or category not found"
// @Failure     409 {object} ErrorResponse "Duplicate deal code"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id} [patch]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.UpdateDealInput{
		Title:                 req.Title,
		Code:                  req.Code,
		CategoryID:            req.CategoryID,
		AssetType:             req.AssetType,
		YieldSource:           req.YieldSource,
		ExpectedRevenueMinPct: req.ExpectedRevenueMinPct,
		ExpectedRevenueMaxPct: req.ExpectedRevenueMaxPct,
		ExpectedIrrMinPct:     req.ExpectedIrrMinPct,
		ExpectedIrrMaxPct:     req.ExpectedIrrMaxPct,
		MinimumInvestmentUSD:  req.MinimumInvestmentUSD,
		TotalAssetValueUSD:    req.TotalAssetValueUSD,
		Geography:             req.Geography,
		QualificationCriteria: req.QualificationCriteria,
		Status:                req.Status,
		ImageURL:              req.ImageURL,
		Tags:                  req.Tags,
	}

	deal, err := h.dealService.UpdateDeal(dealID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

// DeleteDeal handles deleting a deal
// @Summary     Delete deal
// @Description Hard-delete a deal by ID
// @Tags        deals
// @Produce     json
// @Param       id path string true "Deal ID"
// @Success     200 {object} MessageResponse "Deal deleted"
// @Failure     400 {object} ErrorResponse "Invalid deal ID"
// @Failure     404 {object} ErrorResponse "Deal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	dealID, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dealService.DeleteDeal(dealID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted successfully"})
}

// GetDealsByCategory handles the paginated listing of deals in a category
// @Summary     List deals by category
// @Description Get a page of active deals for a category name, newest first
// @Tags        deals
// @Produce     json
// @Param       categoryName path string true "Category name"
// @Param       page query int false "Page number (default 1)"
// @Param       limit query int false "Page size (default 10)"
// @Success     200 {object} map[string]interface{} "Page of deals"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals/category/{categoryName} [get]
func (h *DealHandler) GetDealsByCategory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.dealService.GetDealsByCategory(c.Param("categoryName"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deals": result})
}

// GetRandomDealsByCategories handles the per-category random sample read
// @Summary     Sample deals by category
// @Description For every category, draw up to limit random active deals, keyed by category name
// @Tags        deals
// @Produce     json
// @Param       limit query int false "Sample size per category (default 5)"
// @Success     200 {object} map[string]interface{} "Deals grouped by category name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /deals-by-categories [get]
func (h *DealHandler) GetRandomDealsByCategories(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit"))
		return
	}

	dealsByCategory, err := h.dealService.GetRandomDealsByCategories(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deals_by_category": dealsByCategory})
}
