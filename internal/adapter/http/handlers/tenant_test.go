package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contractor_pipeline/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestRequireTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen entities.Tenant
	r := gin.New()
	r.Use(RequireTenant())
	r.GET("/v1/ping", func(c *gin.Context) {
		seen = tenantOf(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "MISSING_ORGANIZATION" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("blank header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(HeaderOrganizationID, "   ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("tenant resolved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(HeaderOrganizationID, " org-9 ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if seen.OrganizationID() != "org-9" {
			t.Fatalf("unexpected tenant %q", seen)
		}
	})
}

func TestTenantOf_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if !tenantOf(c).IsZero() {
		t.Fatalf("expected zero tenant")
	}
}
