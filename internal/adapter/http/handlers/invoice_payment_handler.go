package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "contractor_pipeline/internal/adapter/http/dto/response"
	"contractor_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoicePaymentHandler collects invoices through Mercado Pago.
type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// CollectPayment accepts either a bare Mercado Pago payment request or one
// wrapped as {"mp_payload": {...}}. An unreadable body is handed to the use
// case as nil, which rejects it unless the gateway runs in mock mode.
func (h *InvoicePaymentHandler) CollectPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[payment][handler] collect start invoice_id=%s", invoiceID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Printf("[payment][handler] unreadable payload invoice_id=%s err=%v", invoiceID, err)
	}

	res, err := h.usecase.CollectPayment(c.Request.Context(), tenantOf(c), invoiceID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] collect failed invoice_id=%s err=%v", invoiceID, err)
		writeError(c, err)
		return
	}
	log.Printf("[payment][handler] collect success invoice_id=%s payment_id=%s status=%s", invoiceID, res.Payment.ID, res.Payment.Status)

	c.JSON(http.StatusOK, response.CollectPaymentResponse{
		Payment: response.FromInvoicePayment(res.Payment),
		Invoice: response.FromInvoice(res.Invoice),
		Events:  response.FromEvents(res.Events),
	})
}

func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
