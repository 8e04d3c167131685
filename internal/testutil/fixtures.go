package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"dealflow/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates an active category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates an active category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:        name,
		Description: "Category fixture",
		IsActive:    true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestDeal creates an Active deal in the given category with a unique code.
func CreateTestDeal(t *testing.T, db *gorm.DB, category *models.Category) *models.Deal {
	t.Helper()
	return CreateTestDealWithStatus(t, db, category, models.DealStatusActive)
}

// CreateTestDealWithStatus creates a deal with the given status.
func CreateTestDealWithStatus(t *testing.T, db *gorm.DB, category *models.Category, status string) *models.Deal {
	t.Helper()

	n := nextID()
	deal := &models.Deal{
		Title:                fmt.Sprintf("Test Deal %d", n),
		Code:                 fmt.Sprintf("TD%010d", n),
		CategoryID:           category.ID,
		CategoryName:         category.Name,
		AssetType:            "Private Credit",
		YieldSource:          "Interest income",
		MinimumInvestmentUSD: 10000,
		Status:               status,
	}
	if err := db.Create(deal).Error; err != nil {
		t.Fatalf("failed to create test deal: %v", err)
	}
	return deal
}

// CreateTestDealDetail creates a detail record attached to the given deal.
func CreateTestDealDetail(t *testing.T, db *gorm.DB, deal *models.Deal) *models.DealDetail {
	t.Helper()

	detail := &models.DealDetail{
		DealID:        deal.ID,
		BusinessModel: "Asset-backed lending",
		RevenueSource: "Borrower interest payments",
	}
	if err := db.Create(detail).Error; err != nil {
		t.Fatalf("failed to create test deal detail: %v", err)
	}
	return detail
}
