package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ikonnect/website/backend/internal/engine"
	analyticsHandler "github.com/ikonnect/website/backend/internal/handler/analytics"
	catalogHandler "github.com/ikonnect/website/backend/internal/handler/catalog"
	chatHandler "github.com/ikonnect/website/backend/internal/handler/chat"
	"github.com/ikonnect/website/backend/internal/handler/stream"
	middlewarePkg "github.com/ikonnect/website/backend/internal/middleware"
	catalogModel "github.com/ikonnect/website/backend/internal/model/catalog"
	aiService "github.com/ikonnect/website/backend/internal/service/ai"
	"github.com/ikonnect/website/backend/internal/store"
	"github.com/ikonnect/website/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the engine and supporting services. aiSvc
// may be nil, in which case the streaming endpoint reports unavailable.
func NewRouter(eng engine.Engine, catalogs catalogModel.Store, aiSvc *aiService.Service, eventLog *store.Memory, adminSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	var streamHandler *stream.Handler
	if aiSvc != nil {
		streamHandler = stream.New(aiSvc, eventLog)
	}

	r.Route("/api", func(api chi.Router) {
		catalogHandler.New(catalogs).RegisterRoutes(api)
		chatHandler.New(eng).RegisterRoutes(api)
		analyticsHandler.New(eng).RegisterRoutes(api, middlewarePkg.AdminOnly(adminSecret))

		api.Get("/chat/stream", func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.URL.Query().Get("sessionId")
			userMessage := r.URL.Query().Get("message")

			if streamHandler == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai streaming unavailable")
				return
			}
			if sessionID == "" || userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "sessionId and message query parameters are required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
			}
		})
	})

	return r
}
