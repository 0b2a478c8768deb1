package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: apperr.Validation("quantity_positive", "bad"), status: http.StatusBadRequest, code: "VALIDATION_FAILED"},
		{name: "transition", err: apperr.TransitionConflict("job", "j-1", "completed", "in_progress"), status: http.StatusConflict, code: "INVALID_TRANSITION"},
		{name: "conflict", err: apperr.Conflict("invoice", "i-1", "not a draft"), status: http.StatusConflict, code: "CONFLICT"},
		{name: "not found", err: apperr.NotFound("lead", "l-1"), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "gateway bad request", err: fmt.Errorf("wrap: %w", usecase.ErrPaymentGatewayBadRequest), status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "gateway customer", err: usecase.ErrPaymentGatewayCustomerNotFound, status: http.StatusBadRequest, code: "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{name: "gateway invalid users", err: usecase.ErrPaymentGatewayInvalidUsers, status: http.StatusBadRequest, code: "PAYMENT_PROVIDER_INVALID_USERS"},
		{name: "gateway unauthorized", err: usecase.ErrPaymentGatewayUnauthorized, status: http.StatusBadGateway, code: "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{name: "gateway missing", err: usecase.ErrPaymentGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "PAYMENT_PROVIDER_UNAVAILABLE"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
