package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "dealflow/internal/errors"
	"dealflow/internal/models"
	"dealflow/internal/services"
	"dealflow/internal/validator"
)

// testUUID is a well-formed UUID for path parameters.
const testUUID = "0198da49-7e7c-7f2a-9737-7cd0e8f0e72b"

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn   func(name, description, imageURL string, isActive *bool) (*models.Category, error)
	getAllCategoriesFn func() ([]models.Category, error)
	getCategoryByIDFn  func(id string) (*models.Category, error)
	updateCategoryFn   func(id, name, description, imageURL string, isActive *bool) (*models.Category, error)
	deleteCategoryFn   func(id string) error
}

func (m *mockCategoryService) CreateCategory(name, description, imageURL string, isActive *bool) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(name, description, imageURL, isActive)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetAllCategories() ([]models.Category, error) {
	if m.getAllCategoriesFn != nil {
		return m.getAllCategoriesFn()
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) GetCategoryByID(id string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(id)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(id, name, description, imageURL string, isActive *bool) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(id, name, description, imageURL, isActive)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.POST("/categories", handler.CreateCategory)
	r.GET("/categories", handler.GetAllCategories)
	r.GET("/categories/:id", handler.GetCategoryByID)
	r.PATCH("/categories/:id", handler.UpdateCategory)
	r.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(name, description, imageURL string, _ *bool) (*models.Category, error) {
				return &models.Category{
					Base:        models.Base{ID: testUUID},
					Name:        name,
					Description: description,
					IsActive:    true,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "POST", "/categories",
			`{"name":"Real Estate","description":"Property deals"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		cat := result["category"].(map[string]interface{})
		if cat["name"] != "Real Estate" {
			t.Errorf("expected Real Estate, got %v", cat["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"description":"no name"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed image url", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"X","image_url":"not a url"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetAllCategories(t *testing.T) {
	t.Run("returns categories with route keys", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getAllCategoriesFn: func() ([]models.Category, error) {
				return []models.Category{
					{Base: models.Base{ID: testUUID}, Name: "Private Credit", RouteKey: "Private%20Credit"},
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		cats := result["categories"].([]interface{})
		if len(cats) != 1 {
			t.Fatalf("expected 1 category, got %d", len(cats))
		}
		first := cats[0].(map[string]interface{})
		if first["route_key"] != "Private%20Credit" {
			t.Errorf("expected escaped route key, got %v", first["route_key"])
		}
	})
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/categories/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryByIDFn: func(id string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "GET", "/categories/"+testUUID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 409 when category has deals", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(id string) error {
				return apperrors.ErrCategoryHasDeals
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc))

		rec := doRequest(r, "DELETE", "/categories/"+testUUID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_HAS_DEALS")
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "DELETE", "/categories/"+testUUID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Category deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})
}
