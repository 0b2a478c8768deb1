package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contractor_pipeline/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const testOrg = "org-1"

var testTenant = entities.MustTenant(testOrg)

func newTenantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireTenant())
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderOrganizationID, testOrg)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response %q: %v", w.Body.String(), err)
	}
	return out
}

func transitionEvent(entityType entities.EntityType, id, from, to string) entities.StateTransitionEvent {
	return entities.StateTransitionEvent{
		OrganizationID: testOrg,
		EntityType:     entityType,
		EntityID:       id,
		FromState:      from,
		ToState:        to,
		OccurredAtUtc:  t0,
	}
}
