package handlers

import (
	"net/http"

	request "contractor_pipeline/internal/adapter/http/dto/request"
	response "contractor_pipeline/internal/adapter/http/dto/response"
	"contractor_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for leads.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if !bindJSON(c, &payload) {
		return
	}
	lead, err := h.usecase.CreateLead(c.Request.Context(), tenantOf(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetLead(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var payload request.LeadRequest
	if !bindJSON(c, &payload) {
		return
	}
	lead, err := h.usecase.UpdateLead(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// SetLeadStatus moves the lead to the requested status through the lead
// state machine; an unknown status is a 400, a forbidden edge a 409.
func (h *LeadHandler) SetLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	lead, events, err := h.usecase.SetLeadStatus(c.Request.Context(), tenantOf(c), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithEvents(response.FromLead(lead), events))
}

func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.DeleteLead(c.Request.Context(), tenantOf(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
