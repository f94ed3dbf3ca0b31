package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"finpro/internal/models"
	"finpro/internal/testutil"
)

func setupAssetRouter(handler *AssetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/assets", handler.ListAssets)
	r.GET("/assets/:isin", handler.GetAssetByISIN)
	return r
}

func TestAssetHandler_ListAssets(t *testing.T) {
	store := testutil.Store(
		testutil.Asset("A1", models.CategoryBond),
		testutil.Asset("A2", models.CategoryStock),
		testutil.Asset("A3", models.CategoryBond),
	)
	handler := NewAssetHandler(store)
	r := setupAssetRouter(handler)

	t.Run("lists all assets in catalog order", func(t *testing.T) {
		rec := doRequest(r, "GET", "/assets", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 3 {
			t.Errorf("expected count 3, got %v", result["count"])
		}
		assets := result["assets"].([]interface{})
		first := assets[0].(map[string]interface{})
		if first["isin"] != "A1" {
			t.Errorf("expected A1 first, got %v", first["isin"])
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		rec := doRequest(r, "GET", "/assets?category=Bond", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", result["count"])
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		rec := doRequest(r, "GET", "/assets?category=Crypto", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INVALID_INPUT")
	})
}

func TestAssetHandler_GetAssetByISIN(t *testing.T) {
	store := testutil.Store(
		models.Asset{ISIN: "A1", Category: models.CategoryBond, Name: "Gov Bond 2030"},
	)
	handler := NewAssetHandler(store)
	r := setupAssetRouter(handler)

	t.Run("returns the asset", func(t *testing.T) {
		rec := doRequest(r, "GET", "/assets/A1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		asset := result["asset"].(map[string]interface{})
		if asset["name"] != "Gov Bond 2030" {
			t.Errorf("expected asset name, got %v", asset["name"])
		}
	})

	t.Run("returns 404 for an unknown ISIN", func(t *testing.T) {
		rec := doRequest(r, "GET", "/assets/ZZ", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "ASSET_NOT_FOUND")
	})
}
