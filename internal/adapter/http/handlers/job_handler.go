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

// JobHandler handles job transitions and the milestone and expense
// sub-resources of a job.
type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetJob(c.Request.Context(), tenantOf(c), c.Param("id"))
	h.respond(c, job, err)
}

func (h *JobHandler) StartJob(c *gin.Context)    { h.transition(c, h.usecase.StartJob) }
func (h *JobHandler) CompleteJob(c *gin.Context) { h.transition(c, h.usecase.CompleteJob) }
func (h *JobHandler) CancelJob(c *gin.Context)   { h.transition(c, h.usecase.CancelJob) }

func (h *JobHandler) AddMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.AddMilestone(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	h.respond(c, job, err)
}

func (h *JobHandler) UpdateMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.UpdateMilestone(c.Request.Context(), tenantOf(c), c.Param("id"), c.Param("milestone_id"), payload.ToInput())
	h.respond(c, job, err)
}

func (h *JobHandler) DeleteMilestone(c *gin.Context) {
	job, err := h.usecase.DeleteMilestone(c.Request.Context(), tenantOf(c), c.Param("id"), c.Param("milestone_id"))
	h.respond(c, job, err)
}

func (h *JobHandler) ReorderMilestones(c *gin.Context) {
	var payload request.ReorderMilestonesRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.ReorderMilestones(c.Request.Context(), tenantOf(c), c.Param("id"), payload.MilestoneIDs)
	h.respond(c, job, err)
}

func (h *JobHandler) CompleteMilestone(c *gin.Context) {
	job, err := h.usecase.CompleteMilestone(c.Request.Context(), tenantOf(c), c.Param("id"), c.Param("milestone_id"))
	h.respond(c, job, err)
}

func (h *JobHandler) AddExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.AddExpense(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	h.respond(c, job, err)
}

func (h *JobHandler) UpdateExpense(c *gin.Context) {
	var payload request.ExpenseRequest
	if !bindJSON(c, &payload) {
		return
	}
	job, err := h.usecase.UpdateExpense(c.Request.Context(), tenantOf(c), c.Param("id"), c.Param("expense_id"), payload.ToInput())
	h.respond(c, job, err)
}

func (h *JobHandler) DeleteExpense(c *gin.Context) {
	job, err := h.usecase.DeleteExpense(c.Request.Context(), tenantOf(c), c.Param("id"), c.Param("expense_id"))
	h.respond(c, job, err)
}

func (h *JobHandler) respond(c *gin.Context, job entities.Job, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, tenant entities.Tenant, id string) (entities.Job, []entities.StateTransitionEvent, error),
) {
	job, events, err := apply(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WithEvents(response.FromJob(job), events))
}
