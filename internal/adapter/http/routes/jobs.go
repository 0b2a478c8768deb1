package routes

import (
	"contractor_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathJobs = "/jobs"

func addJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("/:id/start", jobHandler.StartJob)
		jobs.POST("/:id/complete", jobHandler.CompleteJob)
		jobs.POST("/:id/cancel", jobHandler.CancelJob)

		jobs.POST("/:id/milestones", jobHandler.AddMilestone)
		jobs.PUT("/:id/milestones/order", jobHandler.ReorderMilestones)
		jobs.PUT("/:id/milestones/:milestone_id", jobHandler.UpdateMilestone)
		jobs.DELETE("/:id/milestones/:milestone_id", jobHandler.DeleteMilestone)
		jobs.POST("/:id/milestones/:milestone_id/complete", jobHandler.CompleteMilestone)

		jobs.POST("/:id/expenses", jobHandler.AddExpense)
		jobs.PUT("/:id/expenses/:expense_id", jobHandler.UpdateExpense)
		jobs.DELETE("/:id/expenses/:expense_id", jobHandler.DeleteExpense)
	}
}
