package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodedGrimoire/ChartGenie/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, diagramHandler *handlers.DiagramHandler, sessionHandler *handlers.SessionHandler) {
	api := router.Group("/api/v1")

	diagramRoutes := NewDiagramRoutes(diagramHandler)
	diagramRoutes.RegisterRoutes(api)

	sessionRoutes := NewSessionRoutes(sessionHandler)
	sessionRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
