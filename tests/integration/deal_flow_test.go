package integration

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

func TestDealFlow_CreateWithDetailAndLookup(t *testing.T) {
	app := setupApp(t)
	categoryID := app.createCategory(t, "Real Estate")

	// Step 1: Create a deal with a nested detail block
	rec := app.request("POST", "/api/v1/deals", fmt.Sprintf(
		`{"title":"Austin Multifamily","code":"ATX-MF-01","category_id":%q,"asset_type":"Real Estate","yield_source":"Rental income","minimum_investment_usd":25000,"tags":["texas","multifamily"],"detail":{"business_model":"Buy and hold","revenue_source":"Tenant rent"}}`,
		categoryID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	deal := result["deal"].(map[string]interface{})
	dealID := deal["id"].(string)
	if deal["category_name"] != "Real Estate" {
		t.Errorf("expected denormalized category name, got %v", deal["category_name"])
	}
	if deal["status"] != "Active" {
		t.Errorf("expected default status Active, got %v", deal["status"])
	}
	detail := result["deal_detail"].(map[string]interface{})
	if detail["deal_id"] != dealID {
		t.Errorf("expected detail keyed by deal, got %v", detail["deal_id"])
	}

	// Step 2: Composed read by code
	rec = app.request("GET", "/api/v1/deal-details/ATX-MF-01", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["deal"].(map[string]interface{})["id"] != dealID {
		t.Error("expected composed read to resolve the same deal")
	}

	// Step 3: Composed read by ID resolves the same pair
	rec = app.request("GET", "/api/v1/deal-details/"+dealID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 4: A second detail for the same deal conflicts
	rec = app.request("POST", "/api/v1/deal-details", fmt.Sprintf(
		`{"deal_id":%q,"business_model":"x","revenue_source":"y"}`, dealID))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 5: Deactivate the deal; ID lookup still works, code lookup stops
	rec = app.request("PATCH", "/api/v1/deals/"+dealID, `{"status":"Closed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/deals/"+dealID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for ID lookup of closed deal, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/deal-details/ATX-MF-01", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for code lookup of closed deal, got %d", rec.Code)
	}
}

func TestDealFlow_CategoryRenameCascade(t *testing.T) {
	app := setupApp(t)
	categoryID := app.createCategory(t, "Venture Debt")

	dealID1, _ := app.createDeal(t, categoryID, "Deal One")
	dealID2, _ := app.createDeal(t, categoryID, "Deal Two")

	// Rename the category
	rec := app.request("PATCH", "/api/v1/categories/"+categoryID, `{"name":"Private Debt"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Both deals carry the new name
	for _, id := range []string{dealID1, dealID2} {
		rec = app.request("GET", "/api/v1/deals/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		deal := parseJSON(t, rec)["deal"].(map[string]interface{})
		if deal["category_name"] != "Private Debt" {
			t.Errorf("deal %s: expected cascaded name, got %v", id, deal["category_name"])
		}
	}

	// Listing under the new name finds them
	rec = app.request("GET", "/api/v1/deals/category/"+url.PathEscape("Private Debt"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	paged := parseJSON(t, rec)["deals"].(map[string]interface{})
	if paged["total"].(float64) != 2 {
		t.Errorf("expected 2 deals under new name, got %v", paged["total"])
	}

	// Nothing is left under the old name
	rec = app.request("GET", "/api/v1/deals/category/"+url.PathEscape("Venture Debt"), "")
	paged = parseJSON(t, rec)["deals"].(map[string]interface{})
	if paged["total"].(float64) != 0 {
		t.Errorf("expected 0 deals under old name, got %v", paged["total"])
	}
}

func TestDealFlow_CategoryDeleteGuard(t *testing.T) {
	app := setupApp(t)
	categoryID := app.createCategory(t, "Guarded")
	dealID, _ := app.createDeal(t, categoryID, "Blocker")

	// Delete is refused while a deal references the category
	rec := app.request("DELETE", "/api/v1/categories/"+categoryID, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	// Remove the deal, then the delete goes through
	rec = app.request("DELETE", "/api/v1/deals/"+dealID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/categories/"+categoryID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/categories/"+categoryID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestDealFlow_PaginationAndSampling(t *testing.T) {
	app := setupApp(t)
	categoryID := app.createCategory(t, "Paged")
	for i := 0; i < 7; i++ {
		app.createDeal(t, categoryID, fmt.Sprintf("Deal %d", i))
	}

	// Page 2 with limit 3 holds 3 of the 7 deals
	rec := app.request("GET", "/api/v1/deals/category/Paged?page=2&limit=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	paged := parseJSON(t, rec)["deals"].(map[string]interface{})
	if paged["total"].(float64) != 7 {
		t.Errorf("expected total 7, got %v", paged["total"])
	}
	if paged["total_pages"].(float64) != 3 {
		t.Errorf("expected 3 pages, got %v", paged["total_pages"])
	}
	if len(paged["data"].([]interface{})) != 3 {
		t.Errorf("expected 3 deals on page 2, got %d", len(paged["data"].([]interface{})))
	}

	// Random sampling caps at the requested limit per category
	rec = app.request("GET", "/api/v1/deals-by-categories?limit=4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	byCat := parseJSON(t, rec)["deals_by_category"].(map[string]interface{})
	if len(byCat["Paged"].([]interface{})) != 4 {
		t.Errorf("expected 4 sampled deals, got %d", len(byCat["Paged"].([]interface{})))
	}
}
