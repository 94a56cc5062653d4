package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func serveCategories(t *testing.T) string {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/categories", GetCategories)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	return w.Body.String()
}

// A business write (registration or profile update) must drop the memoized
// category list so the next directory request sees the new category.
func TestCategoriesReloadedAfterInvalidation(t *testing.T) {
	categoriesCache.Invalidate()
	categoriesCache.Get(func() ([]string, error) {
		return []string{"Hair"}, nil
	})

	body := serveCategories(t)
	if !strings.Contains(body, "Hair") {
		t.Fatalf("expected cached categories in response, got %s", body)
	}
	if strings.Contains(body, "Nails") {
		t.Fatalf("unexpected category in response: %s", body)
	}

	InvalidateCategories()
	categoriesCache.Get(func() ([]string, error) {
		return []string{"Hair", "Nails"}, nil
	})

	body = serveCategories(t)
	if !strings.Contains(body, "Nails") {
		t.Fatalf("expected reloaded categories after invalidation, got %s", body)
	}
}
