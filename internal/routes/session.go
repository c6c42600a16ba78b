package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/CodedGrimoire/ChartGenie/internal/handlers"
)

type SessionRoutes struct {
	handler *handlers.SessionHandler
}

func NewSessionRoutes(handler *handlers.SessionHandler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

func (r *SessionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		sessions.GET("/:id", r.handler.GetSession)
		sessions.DELETE("/:id", r.handler.ClearSession)
	}
}
