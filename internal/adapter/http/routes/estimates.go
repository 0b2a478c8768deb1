package routes

import (
	"contractor_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id", estimateHandler.UpdateEstimate)
		estimates.POST("/:id/send", estimateHandler.SendEstimate)
		estimates.POST("/:id/accept", estimateHandler.AcceptEstimate)
		estimates.POST("/:id/reject", estimateHandler.RejectEstimate)
	}
}
