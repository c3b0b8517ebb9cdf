package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ikonnect/website/backend/internal/engine"
	chatservice "github.com/ikonnect/website/backend/internal/service/chat"
	"github.com/ikonnect/website/backend/pkg/utils"
)

// Handler translates the chat HTTP surface onto the engine.
type Handler struct {
	engine engine.Engine
}

// New creates the chat handler.
func New(eng engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// RegisterRoutes mounts the chat turn and feedback routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Post("/chat/feedback", h.handleFeedback)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string         `json:"message"`
		SessionID string         `json:"sessionId"`
		Context   map[string]any `json:"context"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.engine.Chat(r.Context(), payload.SessionID, payload.Message, payload.Context)
	if err != nil {
		if errors.Is(err, chatservice.ErrMessageRequired) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, chatservice.ErrGenerateFailed.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

func (h *Handler) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ConversationID string `json:"conversationId"`
		Satisfaction   int    `json:"satisfaction"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.engine.ChatFeedback(r.Context(), payload.ConversationID, payload.Satisfaction)
	if err != nil {
		switch {
		case errors.Is(err, chatservice.ErrFeedbackRequired):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, chatservice.ErrTurnNotFound):
			utils.RespondError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to record feedback")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"conversation": turn,
	})
}
