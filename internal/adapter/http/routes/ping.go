package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes registers the liveness probe outside the tenant middleware.
func addPingRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
