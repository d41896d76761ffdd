package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateProductRejectsMissingSeller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/products", CreateProduct(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products", strings.NewReader(`{"name":"Old Chair","category":"Furniture"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for listing without seller, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "seller is required") {
		t.Fatalf("expected field detail in response, got %s", w.Body.String())
	}
}

func TestDeleteProductRejectsBadObjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/products/:id", DeleteProduct(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/products/not-a-hex-id", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid id") {
		t.Fatalf("expected invalid id message, got %s", w.Body.String())
	}
}

func TestSellerFilterMatchesNameQuery(t *testing.T) {
	filter := sellerFilter("alice@x.com")
	if len(filter) != 1 || filter["seller"] != "alice@x.com" {
		t.Fatalf("unexpected seller filter: %v", filter)
	}
}

// No name query means filtering on the empty seller string, so nothing
// well-formed comes back.
func TestSellerFilterEmptyNameFiltersOnEmptyString(t *testing.T) {
	filter := sellerFilter("")
	if filter["seller"] != "" {
		t.Fatalf("expected empty-string seller filter, got %v", filter)
	}
}

func TestAdvertisedFilterMatchesFlaggedListings(t *testing.T) {
	filter := advertisedFilter()
	if len(filter) != 1 || filter["advertised"] != true {
		t.Fatalf("unexpected advertised filter: %v", filter)
	}
}

func TestCategoryFilterMatchesCategoryName(t *testing.T) {
	filter := categoryFilter("Furniture")
	if len(filter) != 1 || filter["category"] != "Furniture" {
		t.Fatalf("unexpected category filter: %v", filter)
	}
}

func TestAdvertiseProductRejectsBadObjectID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/products/:id", AdvertiseProduct(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/products/xyz", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
}
