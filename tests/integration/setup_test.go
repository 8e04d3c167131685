package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dealflow/internal/handlers"
	"dealflow/internal/logger"
	"dealflow/internal/metrics"
	"dealflow/internal/middleware"
	"dealflow/internal/models"
	"dealflow/internal/services"
	"dealflow/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Category{},
		&models.Deal{},
		&models.DealDetail{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	m := metrics.New(prometheus.NewRegistry())

	// Services
	detailService := services.NewDealDetailService(db)
	dealService := services.NewDealService(db, detailService, m)
	categoryService := services.NewCategoryService(db, m)

	// Handlers
	dealHandler := handlers.NewDealHandler(dealService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	detailHandler := handlers.NewDealDetailHandler(detailService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	deals := v1.Group("/deals")
	deals.POST("", dealHandler.CreateDeal)
	deals.GET("", dealHandler.GetActiveDeals)
	deals.GET("/:id", dealHandler.GetDealByID)
	deals.PATCH("/:id", dealHandler.UpdateDeal)
	deals.DELETE("/:id", dealHandler.DeleteDeal)
	deals.GET("/category/:categoryName", dealHandler.GetDealsByCategory)
	deals.GET("/:id/detail", detailHandler.GetDealDetail)
	deals.PATCH("/:id/detail", detailHandler.UpdateDealDetail)
	deals.DELETE("/:id/detail", detailHandler.DeleteDealDetail)

	v1.GET("/deals-by-categories", dealHandler.GetRandomDealsByCategories)

	dealDetails := v1.Group("/deal-details")
	dealDetails.POST("", detailHandler.CreateDealDetail)
	dealDetails.GET("/:idOrCode", dealHandler.GetDealWithDetail)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetAllCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PATCH("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)
	v1.GET("/categories-with-route-keys", categoryHandler.GetAllCategories)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createCategory creates a category and returns its ID.
func (app *testApp) createCategory(t *testing.T, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/categories", fmt.Sprintf(`{"name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	category := result["category"].(map[string]interface{})
	return category["id"].(string)
}

// createDeal creates a minimal deal in the given category and returns its ID and code.
func (app *testApp) createDeal(t *testing.T, categoryID, title string) (id, code string) {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"category_id":%q,"asset_type":"Credit","yield_source":"Interest","minimum_investment_usd":1000}`, title, categoryID)
	rec := app.request("POST", "/api/v1/deals", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create deal failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	deal := result["deal"].(map[string]interface{})
	return deal["id"].(string), deal["code"].(string)
}
