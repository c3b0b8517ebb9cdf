package analytics

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ikonnect/website/backend/internal/engine"
	model "github.com/ikonnect/website/backend/internal/model/analytics"
	"github.com/ikonnect/website/backend/pkg/utils"
)

// Handler translates the analytics HTTP surface onto the engine.
type Handler struct {
	engine engine.Engine
}

// New creates the analytics handler.
func New(eng engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// RegisterRoutes mounts the ingest and admin-gated summary routes.
func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Post("/analytics/event", h.handleIngestEvent)
	r.With(admin).Get("/analytics/summary", h.handleSummary)
}

func (h *Handler) handleIngestEvent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EventType string         `json:"eventType"`
		Page      string         `json:"page"`
		Data      map[string]any `json:"data"`
		SessionID string         `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Provenance fields come from the transport, never the client payload.
	rec := model.InsertEvent{
		EventType: payload.EventType,
		Page:      payload.Page,
		Data:      payload.Data,
		SessionID: payload.SessionID,
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
		Referrer:  r.Referer(),
	}

	event, err := h.engine.IngestEvent(r.Context(), rec)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, event)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.engine.Summary(r.Context())
	if err != nil {
		log.Printf("[analytics] summary failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to get analytics summary")
		return
	}

	utils.RespondJSON(w, http.StatusOK, summary)
}
