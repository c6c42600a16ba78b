package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxHistoryLength caps the number of exchanges kept per session; the
// oldest entry is evicted first.
const MaxHistoryLength = 10

// Exchange summarizes one request/response pair in a conversation.
type Exchange struct {
	Message   string    `json:"message"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationSession holds the per-conversation state: bounded history
// and the latest diagram text. Sessions live only in the session store;
// core generation code receives them by value per request.
type ConversationSession struct {
	ID             string     `json:"id"`
	History        []Exchange `json:"history"`
	CurrentDiagram string     `json:"current_diagram,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func NewConversationSession(id string) *ConversationSession {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &ConversationSession{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AppendExchange records an exchange, evicting the oldest entry once the
// history cap is reached.
func (s *ConversationSession) AppendExchange(message, summary string) {
	s.History = append(s.History, Exchange{
		Message:   message,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	})
	if len(s.History) > MaxHistoryLength {
		s.History = s.History[len(s.History)-MaxHistoryLength:]
	}
	s.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy so callers can mutate a session without
// racing the in-memory store.
func (s *ConversationSession) Clone() *ConversationSession {
	cp := *s
	cp.History = make([]Exchange, len(s.History))
	copy(cp.History, s.History)
	return &cp
}
