package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodedGrimoire/ChartGenie/internal/repositories"
	"github.com/CodedGrimoire/ChartGenie/internal/responses"
	"github.com/CodedGrimoire/ChartGenie/internal/services"
)

const testMaxMessageLength = 2000

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// nil completer: the service runs on the rule-based path, which is
	// deterministic and offline.
	service := services.NewDiagramService(nil, repositories.NewMemorySessionStore(), nil)
	diagramHandler := NewDiagramHandler(service, testMaxMessageLength)
	sessionHandler := NewSessionHandler(service)

	router := gin.New()
	router.POST("/api/v1/diagrams/generate", diagramHandler.GenerateDiagram)
	router.GET("/api/v1/sessions/:id", sessionHandler.GetSession)
	router.DELETE("/api/v1/sessions/:id", sessionHandler.ClearSession)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/diagrams/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) responses.APIResponse {
	t.Helper()
	var resp responses.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGenerateDiagram_Success(t *testing.T) {
	router := setupRouter()

	rec := postGenerate(t, router, `{"message": "Create a hospital database"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["session_id"])
	assert.Equal(t, "erd", data["format"])
	assert.Equal(t, services.SourceFallbackLLMError, data["source"])
	assert.Contains(t, data["diagram"], "erDiagram")
	assert.Contains(t, data["diagram"], "PATIENT")
}

func TestGenerateDiagram_ReusesSessionID(t *testing.T) {
	router := setupRouter()

	rec := postGenerate(t, router, `{"session_id": "abc-123", "message": "an online store"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeResponse(t, rec).Data.(map[string]interface{})
	assert.Equal(t, "abc-123", data["session_id"])
}

func TestGenerateDiagram_EmptyMessage(t *testing.T) {
	router := setupRouter()

	for _, body := range []string{`{}`, `{"message": "   "}`} {
		rec := postGenerate(t, router, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Equal(t, "error", decodeResponse(t, rec).Status)
	}
}

func TestGenerateDiagram_MessageTooLong(t *testing.T) {
	router := setupRouter()

	long := strings.Repeat("a", testMaxMessageLength+1)
	rec := postGenerate(t, router, `{"message": "`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec).Message, "maximum length")
}

func TestGenerateDiagram_UnsupportedFormat(t *testing.T) {
	router := setupRouter()

	rec := postGenerate(t, router, `{"message": "a shop", "format": "gantt"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeResponse(t, rec).Message, "Unsupported format")
}

func TestGenerateDiagram_InvalidJSON(t *testing.T) {
	router := setupRouter()

	rec := postGenerate(t, router, `{"message": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	router := setupRouter()

	rec := postGenerate(t, router, `{"session_id": "s1", "message": "Create a hospital database"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// retrieve
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1", nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)
	require.Equal(t, http.StatusOK, get.Code)

	data := decodeResponse(t, get).Data.(map[string]interface{})
	assert.Equal(t, "s1", data["id"])
	assert.Contains(t, data["current_diagram"], "PATIENT")

	// clear
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/s1", nil)
	del := httptest.NewRecorder()
	router.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s1", nil)
	gone := httptest.NewRecorder()
	router.ServeHTTP(gone, req)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestGetSession_Missing(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", decodeResponse(t, rec).Status)
}
