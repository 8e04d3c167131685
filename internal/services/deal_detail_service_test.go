package services

import (
	"testing"
	"time"

	"dealflow/internal/testutil"
)

func TestCreateDealDetail(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)

		apy := 8.5
		detail, err := svc.CreateDealDetail(CreateDealDetailInput{
			DealID:            deal.ID,
			BusinessModel:     "Bridge lending",
			RevenueSource:     "Loan interest",
			ExpectedApyMinPct: &apy,
		})
		testutil.AssertNoError(t, err)

		if detail.ID == "" {
			t.Fatal("expected non-empty detail ID")
		}
		if detail.DealID != deal.ID {
			t.Errorf("expected deal ID %s, got %s", deal.ID, detail.DealID)
		}
		if detail.ExpectedApyMinPct == nil || *detail.ExpectedApyMinPct != 8.5 {
			t.Errorf("expected APY min 8.5, got %v", detail.ExpectedApyMinPct)
		}
	})

	t.Run("missing_deal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		_, err := svc.CreateDealDetail(CreateDealDetailInput{
			DealID:        "0198da49-7e7c-7f2a-9737-7cd0e8f0e72b",
			BusinessModel: "x",
			RevenueSource: "y",
		})
		testutil.AssertAppError(t, err, "DEAL_NOT_FOUND")
	})

	t.Run("second_detail_conflicts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)
		testutil.CreateTestDealDetail(t, db, deal)

		_, err := svc.CreateDealDetail(CreateDealDetailInput{
			DealID:        deal.ID,
			BusinessModel: "x",
			RevenueSource: "y",
		})
		testutil.AssertAppError(t, err, "DEAL_DETAIL_EXISTS")
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)

		_, err := svc.CreateDealDetail(CreateDealDetailInput{DealID: deal.ID})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetDealDetailByDealID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)
		created := testutil.CreateTestDealDetail(t, db, deal)

		detail, err := svc.GetDealDetailByDealID(deal.ID)
		testutil.AssertNoError(t, err)

		if detail.ID != created.ID {
			t.Errorf("expected detail %s, got %s", created.ID, detail.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		_, err := svc.GetDealDetailByDealID("0198da49-7e7c-7f2a-9737-7cd0e8f0e72b")
		testutil.AssertAppError(t, err, "DEAL_DETAIL_NOT_FOUND")
	})
}

func TestUpdateDealDetail(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)
		testutil.CreateTestDealDetail(t, db, deal)

		model := "Updated model"
		term := 3.0
		possession := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
		detail, err := svc.UpdateDealDetail(deal.ID, UpdateDealDetailInput{
			BusinessModel:          &model,
			FundTermYears:          &term,
			ExpectedPossessionDate: &possession,
		})
		testutil.AssertNoError(t, err)

		if detail.BusinessModel != "Updated model" {
			t.Errorf("expected updated business model, got %q", detail.BusinessModel)
		}
		if detail.FundTermYears == nil || *detail.FundTermYears != 3 {
			t.Errorf("expected fund term 3, got %v", detail.FundTermYears)
		}
		if detail.RevenueSource == "" {
			t.Error("expected untouched revenue source to survive")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		model := "x"
		_, err := svc.UpdateDealDetail("0198da49-7e7c-7f2a-9737-7cd0e8f0e72b", UpdateDealDetailInput{
			BusinessModel: &model,
		})
		testutil.AssertAppError(t, err, "DEAL_DETAIL_NOT_FOUND")
	})
}

func TestDeleteDealDetail(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		cat := testutil.CreateTestCategory(t, db)
		deal := testutil.CreateTestDeal(t, db, cat)
		testutil.CreateTestDealDetail(t, db, deal)

		testutil.AssertNoError(t, svc.DeleteDealDetail(deal.ID))

		_, err := svc.GetDealDetailByDealID(deal.ID)
		testutil.AssertAppError(t, err, "DEAL_DETAIL_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDealDetailService(db)

		err := svc.DeleteDealDetail("0198da49-7e7c-7f2a-9737-7cd0e8f0e72b")
		testutil.AssertAppError(t, err, "DEAL_DETAIL_NOT_FOUND")
	})
}
