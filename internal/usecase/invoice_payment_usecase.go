package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"contractor_pipeline/internal/domain/apperr"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase/interfaces"
)

// PaymentSettings configures how payments are sent to Mercado Pago.
type PaymentSettings struct {
	// MockMode skips the gateway and records an approved payment.
	MockMode bool
	// AccessToken is only inspected for the "TEST-" sandbox prefix.
	AccessToken        string
	SandboxPayerEmail  string
	SandboxPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

type CollectPaymentResult struct {
	Payment entities.InvoicePayment
	Invoice entities.Invoice
	Events  []entities.StateTransitionEvent
}

// IInvoicePaymentUseCase collects an invoice through the payment gateway.
//
// An approved provider payment is recorded and marks the invoice Paid in the
// same unit of work; other provider outcomes are recorded without a transition.
type IInvoicePaymentUseCase interface {
	CollectPayment(ctx context.Context, tenant entities.Tenant, invoiceID string, mpPayload json.RawMessage) (CollectPaymentResult, error)
	ListPayments(ctx context.Context, tenant entities.Tenant, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	pipeline
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(uow interfaces.IUnitOfWork, sink interfaces.IEventSink, gateway interfaces.IPaymentGateway, settings PaymentSettings, opts ...Option) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{pipeline: newPipeline(uow, sink, opts...), gateway: gateway, settings: settings}
}

func (u *InvoicePaymentUseCase) CollectPayment(ctx context.Context, tenant entities.Tenant, invoiceID string, mpPayload json.RawMessage) (CollectPaymentResult, error) {
	log.Printf("[payment][usecase] collect start org=%s raw_invoice_id=%q payload_len=%d", tenant, invoiceID, len(mpPayload))
	mockMode := u.settings.MockMode
	invoiceID, err := requireID(entities.EntityTypeInvoice, invoiceID)
	if err != nil {
		return CollectPaymentResult{}, err
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload invoice_id=%s", invoiceID)
			return CollectPaymentResult{}, ErrInvalidPaymentPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", invoiceID)
		return CollectPaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := u.loadPayable(ctx, tenant, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] invoice not payable invoice_id=%s err=%v", invoiceID, err)
		return CollectPaymentResult{}, err
	}
	log.Printf("[payment][usecase] invoice loaded invoice_id=%s status=%s amount=%s", invoiceID, inv.Status, inv.Amount.StringFixed(2))

	mpPayload, err = u.enrichPayload(inv, mpPayload)
	if err != nil {
		return CollectPaymentResult{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway invoice_id=%s", invoiceID)
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(inv, mpPayload)
	} else {
		log.Printf("[payment][usecase] calling payment gateway invoice_id=%s", invoiceID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
			err = mapGatewayError(err)
		}
	}
	if err != nil {
		return CollectPaymentResult{}, err
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	now := u.now()
	payment := &entities.InvoicePayment{
		ID:                 u.newID(),
		InvoiceID:          invoiceID,
		Amount:             inv.Amount,
		Date:               now,
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	var paid *entities.Invoice
	events, err := u.run(ctx, tenant, "collect-payment", func(ctx context.Context, tx interfaces.ITx, ch *changes) error {
		if err := tx.Payments().Create(ctx, payment); err != nil {
			return err
		}
		if payment.Status != entities.PaymentStatusApproved {
			var err error
			paid, err = tx.Invoices().Get(ctx, invoiceID)
			return err
		}
		var err error
		paid, err = markPaid(ctx, tx, invoiceID, now, ch)
		return err
	})
	if err != nil {
		log.Printf("[payment][usecase] persisting payment failed invoice_id=%s provider_payment_id=%s err=%v", invoiceID, providerPaymentID, err)
		return CollectPaymentResult{}, err
	}
	log.Printf("[payment][usecase] collect success invoice_id=%s payment_id=%s status=%s invoice_status=%s", invoiceID, payment.ID, payment.Status, paid.Status)
	return CollectPaymentResult{Payment: *payment, Invoice: *paid, Events: events}, nil
}

func (u *InvoicePaymentUseCase) ListPayments(ctx context.Context, tenant entities.Tenant, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID, err := requireID(entities.EntityTypeInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	var out []entities.InvoicePayment
	_, err = u.run(ctx, tenant, "list-payments", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		if _, err := tx.Invoices().Get(ctx, invoiceID); err != nil {
			return err
		}
		out, err = tx.Payments().ListByInvoiceID(ctx, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// loadPayable reads the invoice outside the payment unit: only Issued and
// Overdue invoices can be collected.
func (u *InvoicePaymentUseCase) loadPayable(ctx context.Context, tenant entities.Tenant, invoiceID string) (*entities.Invoice, error) {
	var inv *entities.Invoice
	_, err := u.run(ctx, tenant, "load-payable-invoice", func(ctx context.Context, tx interfaces.ITx, _ *changes) error {
		var err error
		inv, err = tx.Invoices().Get(ctx, invoiceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	switch inv.Status {
	case entities.InvoiceStatusIssued, entities.InvoiceStatusOverdue:
		return inv, nil
	default:
		return nil, apperr.Conflict(string(entities.EntityTypeInvoice), invoiceID, "cannot collect a %s invoice", inv.Status)
	}
}

// enrichPayload links the request to the invoice. The invoice in the store is
// the source of truth for the amount.
func (u *InvoicePaymentUseCase) enrichPayload(inv *entities.Invoice, mpPayload json.RawMessage) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload unmarshal failed invoice_id=%s err=%v", inv.ID, err)
		if u.settings.MockMode {
			reqMap = map[string]any{}
		} else {
			return nil, ErrInvalidPaymentPayload
		}
	}

	if !u.settings.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id invoice_id=%s", inv.ID)
			return nil, ErrInvalidPaymentPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer invoice_id=%s", inv.ID)
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
	}
	reqMap["transaction_amount"] = inv.Amount.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][usecase] payload enriched invoice_id=%s payload_len=%d", inv.ID, len(b))
	return b, nil
}

func (u *InvoicePaymentUseCase) mockPayment(inv *entities.Invoice, mpPayload json.RawMessage) (string, string, json.RawMessage, error) {
	now := u.now()
	providerPaymentID := strconv.FormatInt(now.UnixNano(), 10)
	mockResp := map[string]any{}
	_ = json.Unmarshal(mpPayload, &mockResp)
	mockResp["id"] = providerPaymentID
	mockResp["status"] = "approved"
	mockResp["status_detail"] = "accredited"
	mockResp["date_created"] = now.Format(time.RFC3339Nano)
	mockResp["date_approved"] = mockResp["date_created"]
	if _, ok := mockResp["external_reference"]; !ok {
		mockResp["external_reference"] = inv.ID
	}
	b, err := json.Marshal(mockResp)
	if err != nil {
		return "", "", nil, err
	}
	return providerPaymentID, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox either payer.id or payer.email may be used; email is only
	// filled when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.settings.SandboxPayerEmail); email != "" {
			payer["email"] = email
		} else if u.settings.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *InvoicePaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.settings.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.SandboxPayerUserID)
	email := strings.TrimSpace(u.settings.SandboxPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
