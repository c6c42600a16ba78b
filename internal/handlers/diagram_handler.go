package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CodedGrimoire/ChartGenie/internal/diagram"
	"github.com/CodedGrimoire/ChartGenie/internal/responses"
	"github.com/CodedGrimoire/ChartGenie/internal/services"
)

type DiagramHandler struct {
	diagramService   *services.DiagramService
	maxMessageLength int
}

func NewDiagramHandler(diagramService *services.DiagramService, maxMessageLength int) *DiagramHandler {
	return &DiagramHandler{
		diagramService:   diagramService,
		maxMessageLength: maxMessageLength,
	}
}

type GenerateDiagramRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Format    string `json:"format"`
}

// GenerateDiagram handles POST /api/v1/diagrams/generate. Input rejection
// (empty or oversize message, unknown format) is the only failure a caller
// can see for diagram content; everything past this point produces a
// best-effort diagram.
func (h *DiagramHandler) GenerateDiagram(c *gin.Context) {
	var req GenerateDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Message is required")
		return
	}
	if len(message) > h.maxMessageLength {
		responses.Fail(c, http.StatusBadRequest, nil,
			fmt.Sprintf("Message exceeds the maximum length of %d characters", h.maxMessageLength))
		return
	}

	format, ok := diagram.ParseFormat(req.Format)
	if !ok {
		responses.Fail(c, http.StatusBadRequest, nil,
			fmt.Sprintf("Unsupported format %q", req.Format))
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	result, err := h.diagramService.Generate(c.Request.Context(), sessionID, message, format)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate diagram")
		return
	}

	responses.Success(c, http.StatusOK, result, result.Message)
}
