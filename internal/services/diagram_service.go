package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/CodedGrimoire/ChartGenie/internal/diagram"
	"github.com/CodedGrimoire/ChartGenie/internal/llm"
	"github.com/CodedGrimoire/ChartGenie/internal/models"
	"github.com/CodedGrimoire/ChartGenie/internal/repositories"
)

// Provenance tags carried on every result. The fallback reasons exist for
// observability; callers get a usable diagram either way.
const (
	SourceLLM                     = "llm"
	SourceFallbackLLMError        = "fallback_llm_error"
	SourceFallbackInvalidResponse = "fallback_invalid_response"
	SourceFallbackNotPreserved    = "fallback_not_preserved"
)

var sourceMessages = map[string]string{
	SourceLLM:                     "Diagram generated successfully",
	SourceFallbackLLMError:        "The model was unavailable; generated a diagram from built-in rules",
	SourceFallbackInvalidResponse: "The model response was unusable; generated a diagram from built-in rules",
	SourceFallbackNotPreserved:    "The model dropped existing entities; applied the change with built-in rules instead",
}

type GenerateResult struct {
	SessionID string `json:"session_id"`
	Diagram   string `json:"diagram"`
	Format    string `json:"format"`
	Source    string `json:"source"`
	Message   string `json:"message"`
}

// DiagramService runs the generation ladder for one request: prompt, LLM
// call, cleanup, validation, fallback. A nil completer or cache disables
// that collaborator; the rule-based path carries every request on its own
// if need be.
type DiagramService struct {
	completer llm.Completer
	sessions  repositories.SessionStore
	cache     repositories.DiagramCache
}

func NewDiagramService(completer llm.Completer, sessions repositories.SessionStore, cache repositories.DiagramCache) *DiagramService {
	return &DiagramService{
		completer: completer,
		sessions:  sessions,
		cache:     cache,
	}
}

// Generate produces a diagram for the user message within the given
// session. Content problems never surface as errors: every failure mode
// degrades into the deterministic fallback. Only session-store failures
// are returned.
func (s *DiagramService) Generate(ctx context.Context, sessionID, message string, format diagram.Format) (*GenerateResult, error) {
	// 1. Load or create the session
	session, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		session = models.NewConversationSession(sessionID)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	isEdit := diagram.IsModification(message, session.CurrentDiagram != "")

	// 2. Opportunistic cache, keyed on everything that shapes the prompt
	key := cacheKey(session.ID, format, message, len(session.History))
	diagramText, source, hit := s.cachedDiagram(ctx, key)
	if !hit {
		diagramText, source = s.generateDiagram(ctx, message, format, session, isEdit)
		if source == SourceLLM && s.cache != nil {
			if err := s.cache.Set(ctx, key, diagramText); err != nil {
				log.Printf("failed to cache diagram: %v", err)
			}
		}
	}

	// 3. Session bookkeeping
	session.CurrentDiagram = diagramText
	session.AppendExchange(message, summarize(diagramText, format))
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &GenerateResult{
		SessionID: session.ID,
		Diagram:   diagramText,
		Format:    string(format),
		Source:    source,
		Message:   sourceMessages[source],
	}, nil
}

func (s *DiagramService) GetSession(ctx context.Context, id string) (*models.ConversationSession, error) {
	return s.sessions.Get(ctx, id)
}

func (s *DiagramService) ClearSession(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// generateDiagram walks the escalation ladder and reports which rung
// produced the text.
func (s *DiagramService) generateDiagram(ctx context.Context, message string, format diagram.Format, session *models.ConversationSession, isEdit bool) (string, string) {
	if s.completer == nil {
		return diagram.Fallback(message, session.CurrentDiagram), SourceFallbackLLMError
	}

	var userPrompt string
	if isEdit {
		userPrompt = editPrompt(message, session.CurrentDiagram, format)
	} else {
		userPrompt = freshPrompt(message, format, session.History)
	}

	raw, err := s.completer.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("completion call failed: %v", err)
		return diagram.Fallback(message, session.CurrentDiagram), SourceFallbackLLMError
	}

	candidate := diagram.CleanResponse(raw)
	if !strings.HasPrefix(candidate, format.RootKeyword()) {
		candidate = diagram.ExtractDiagram(raw, format)
	}
	if !diagram.LooksLikeDiagram(candidate, format) {
		return diagram.Fallback(message, session.CurrentDiagram), SourceFallbackInvalidResponse
	}

	if isEdit && format.Structured() && !diagram.PreservesEntities(candidate, session.CurrentDiagram) {
		// The model's output is assumed poisoned; re-apply the change
		// through heuristic synthesis on the original diagram instead.
		return diagram.Fallback(message, session.CurrentDiagram), SourceFallbackNotPreserved
	}

	return candidate, SourceLLM
}

func (s *DiagramService) cachedDiagram(ctx context.Context, key string) (string, string, bool) {
	if s.cache == nil {
		return "", "", false
	}
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("cache lookup failed: %v", err)
		return "", "", false
	}
	if !ok {
		return "", "", false
	}
	// Only LLM-sourced diagrams are ever cached.
	return value, SourceLLM, true
}

func cacheKey(sessionID string, format diagram.Format, message string, historyLen int) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(message), " "))
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", sessionID, format, normalized, historyLen)))
	return hex.EncodeToString(sum[:])
}

func summarize(diagramText string, format diagram.Format) string {
	if format.Structured() {
		if names := diagram.EntityNames(diagramText); len(names) > 0 {
			return "entities: " + strings.Join(names, ", ")
		}
	}
	return format.RootKeyword() + " diagram"
}
