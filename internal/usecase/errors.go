package usecase

import (
	"errors"

	"contractor_pipeline/internal/domain/apperr"
)

var errUnitOfWorkNotConfigured = errors.New("unit of work not configured")

var (
	ErrInvalidPaymentPayload = apperr.Validation("payment_payload", "invalid mercado pago payload")

	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)
