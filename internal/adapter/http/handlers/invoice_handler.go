package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	request "contractor_pipeline/internal/adapter/http/dto/request"
	response "contractor_pipeline/internal/adapter/http/dto/response"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.CreateInvoice(c.Request.Context(), tenantOf(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetInvoice(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	invoice, err := h.usecase.UpdateInvoice(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// IssueInvoice accepts an empty body; due_at_utc defaults to 30 days after issue.
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var payload request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	invoice, events, err := h.usecase.IssueInvoice(c.Request.Context(), tenantOf(c), c.Param("id"), payload.DueAtUtc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithEvents(response.FromInvoice(invoice), events))
}

// MarkInvoicePaid is idempotent: paying a paid invoice returns 200 with no events.
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	h.transition(c, h.usecase.MarkInvoicePaid)
}

func (h *InvoiceHandler) MarkInvoiceOverdue(c *gin.Context) {
	h.transition(c, h.usecase.MarkInvoiceOverdue)
}

func (h *InvoiceHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, tenant entities.Tenant, id string) (entities.Invoice, []entities.StateTransitionEvent, error),
) {
	invoice, events, err := apply(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithEvents(response.FromInvoice(invoice), events))
}
