package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/CodedGrimoire/ChartGenie/internal/handlers"
)

type DiagramRoutes struct {
	handler *handlers.DiagramHandler
}

func NewDiagramRoutes(handler *handlers.DiagramHandler) *DiagramRoutes {
	return &DiagramRoutes{handler: handler}
}

func (r *DiagramRoutes) RegisterRoutes(router *gin.RouterGroup) {
	diagrams := router.Group("/diagrams")
	{
		diagrams.POST("/generate", r.handler.GenerateDiagram)
	}
}
