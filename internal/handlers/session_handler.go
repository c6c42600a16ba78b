package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CodedGrimoire/ChartGenie/internal/repositories"
	"github.com/CodedGrimoire/ChartGenie/internal/responses"
	"github.com/CodedGrimoire/ChartGenie/internal/services"
)

type SessionHandler struct {
	diagramService *services.DiagramService
}

func NewSessionHandler(diagramService *services.DiagramService) *SessionHandler {
	return &SessionHandler{
		diagramService: diagramService,
	}
}

// GetSession handles GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")

	session, err := h.diagramService.GetSession(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		responses.Fail(c, http.StatusNotFound, nil, "Session not found")
		return
	}
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load session")
		return
	}

	responses.Success(c, http.StatusOK, session, "Session retrieved successfully")
}

// ClearSession handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) ClearSession(c *gin.Context) {
	id := c.Param("id")

	if err := h.diagramService.ClearSession(c.Request.Context(), id); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to clear session")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Session cleared")
}
