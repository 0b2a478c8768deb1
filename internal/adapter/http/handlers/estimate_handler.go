package handlers

import (
	"context"
	"net/http"

	request "contractor_pipeline/internal/adapter/http/dto/request"
	response "contractor_pipeline/internal/adapter/http/dto/response"
	"contractor_pipeline/internal/domain/entities"
	"contractor_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), tenantOf(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetEstimate(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.UpdateEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	estimate, err := h.usecase.UpdateEstimate(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.SendEstimate)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.transition(c, h.usecase.RejectEstimate)
}

// AcceptEstimate accepts a sent estimate and schedules its job in the same
// unit of work.
func (h *EstimateHandler) AcceptEstimate(c *gin.Context) {
	var payload request.AcceptEstimateRequest
	if !bindJSON(c, &payload) {
		return
	}
	res, err := h.usecase.AcceptEstimate(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAcceptEstimate(res.Estimate, res.Job, res.Events))
}

func (h *EstimateHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, tenant entities.Tenant, id string) (entities.Estimate, []entities.StateTransitionEvent, error),
) {
	estimate, events, err := apply(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithEvents(response.FromEstimate(estimate), events))
}
