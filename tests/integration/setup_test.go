package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finpro/internal/catalog"
	"finpro/internal/handlers"
	"finpro/internal/logger"
	"finpro/internal/middleware"
	"finpro/internal/models"
	"finpro/internal/scoring"
	"finpro/internal/services"
	"finpro/internal/validator"
)

const testAdminKey = "test-admin-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB          *gorm.DB
	Router      *gin.Engine
	CatalogPath string
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

const defaultCatalogCSV = `ISIN,assetCategory,name,currency
A1,Bond,Gov Bond 2030,EUR
A2,Stock,Acme Corp,USD
A3,Bond,Muni Bond 2028,EUR
A4,MTF,Global Mixed Fund,USD
`

// writeArtifact packs a one-dimensional SVD model whose known user "warm-user"
// prefers A1 over A3 over A2 and has never seen A4.
func writeArtifact(t *testing.T, dir string) string {
	t.Helper()

	artifact := &scoring.Artifact{
		Name:        "SVD",
		GlobalMean:  3.0,
		UserIndex:   map[string]int{"warm-user": 0},
		ItemIndex:   map[string]int{"A1": 0, "A2": 1, "A3": 2},
		UserFactors: [][]float64{{1.0}},
		ItemFactors: [][]float64{{1.5}, {-0.5}, {0.5}},
		UserBias:    []float64{0.0},
		ItemBias:    []float64{0.0, 0.0, 0.0},
	}

	path := filepath.Join(dir, "model_svd.gob")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create artifact: %v", err)
	}
	defer f.Close()
	if err := scoring.Encode(f, artifact); err != nil {
		t.Fatalf("encode artifact: %v", err)
	}
	return path
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

	if err := db.AutoMigrate(&models.RecommendationLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack. withModel controls whether the
// SVD artifact is loaded, mirroring a present or missing model file.
func setupApp(t *testing.T, withModel bool) *testApp {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(catalogPath, []byte(defaultCatalogCSV), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	catalogs := catalog.NewStore(catalogPath, cat)

	var model services.ScoringModel
	if withModel {
		svd, err := scoring.Load(writeArtifact(t, dir))
		if err != nil {
			t.Fatalf("load model: %v", err)
		}
		model = svd
	}

	db := setupIsolatedDB(t)

	// Services
	recommendationService := services.NewRecommendationService(catalogs, model)
	auditService := services.NewAuditService(db)

	// Handlers
	recommendHandler := handlers.NewRecommendHandler(recommendationService, auditService)
	assetHandler := handlers.NewAssetHandler(catalogs)
	adminHandler := handlers.NewAdminHandler(catalogs, auditService)

	// Router mirrors cmd/api wiring
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "FinPro Robo-Advisor is Live"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/recommend", recommendHandler.Recommend)
	v1.GET("/assets", assetHandler.ListAssets)
	v1.GET("/assets/:isin", assetHandler.GetAssetByISIN)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(testAdminKey))
	admin.POST("/catalog/reload", adminHandler.ReloadCatalog)
	admin.GET("/recommendation-logs", adminHandler.ListRecommendationLogs)

	return &testApp{DB: db, Router: router, CatalogPath: catalogPath}
}

// request performs an HTTP request against the test application.
func (app *testApp) request(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
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

func recommendations(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	result := parseJSON(t, rec)
	raw, ok := result["recommendations"].([]interface{})
	if !ok {
		t.Fatalf("expected recommendations array, got %s", rec.Body.String())
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}
