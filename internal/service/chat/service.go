package chat

import (
	"context"
	"errors"
	"log"

	chatmodel "github.com/ikonnect/website/backend/internal/model/chat"
	"github.com/ikonnect/website/backend/internal/store"
)

var (
	ErrMessageRequired  = errors.New("message and session id are required")
	ErrFeedbackRequired = errors.New("conversation id and satisfaction rating are required")
	ErrTurnNotFound     = errors.New("conversation not found")
	// ErrGenerateFailed is the user-safe failure returned when the
	// generation provider errors. The underlying cause is logged, never
	// surfaced to the caller.
	ErrGenerateFailed = errors.New("failed to process chat message")
)

// Generator produces the assistant reply for one turn given the replayed
// conversation history. Implementations: ai.Service (Ark-backed) and
// StaticResponder (no credential configured).
type Generator interface {
	Generate(ctx context.Context, history []chatmodel.Turn, userMessage string, context map[string]any) (string, error)
}

// Reply is the result of one chat turn.
type Reply struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
}

// Service threads multi-turn conversations through a stateless generator.
type Service struct {
	store *store.Memory
	gen   Generator
}

// NewService wires the threader to its event log and generator.
func NewService(st *store.Memory, gen Generator) *Service {
	return &Service{store: st, gen: gen}
}

// Respond replays the session's prior turns, appends the new user message
// and delegates to the generator. Exactly one turn is persisted per
// successful call; a failed generation stores nothing.
func (s *Service) Respond(ctx context.Context, sessionID, message string, context map[string]any) (Reply, error) {
	if message == "" || sessionID == "" {
		return Reply{}, ErrMessageRequired
	}

	// History must be read before the generation call suspends; the store
	// may grow while we wait, but this call only appends afterwards.
	history := s.store.TurnsForSession(sessionID)

	text, err := s.gen.Generate(ctx, history, message, context)
	if err != nil {
		log.Printf("[chat] generation failed for session=%s: %v", sessionID, err)
		return Reply{}, ErrGenerateFailed
	}

	turn := s.store.AppendTurn(chatmodel.Turn{
		SessionID:   sessionID,
		UserQuery:   message,
		BotResponse: text,
		Context:     context,
	})

	return Reply{Response: text, ConversationID: turn.ID}, nil
}

// RecordFeedback sets the satisfaction rating on an existing turn.
func (s *Service) RecordFeedback(_ context.Context, conversationID string, satisfaction int) (chatmodel.Turn, error) {
	if conversationID == "" || satisfaction < 1 {
		return chatmodel.Turn{}, ErrFeedbackRequired
	}

	turn, ok := s.store.SetSatisfaction(conversationID, satisfaction)
	if !ok {
		return chatmodel.Turn{}, ErrTurnNotFound
	}
	return turn, nil
}
