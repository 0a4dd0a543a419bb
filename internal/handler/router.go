package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rmncha/health-assistant/backend/internal/handler/asha"
	"github.com/rmncha/health-assistant/backend/internal/handler/chat"
	"github.com/rmncha/health-assistant/backend/internal/handler/register"
	"github.com/rmncha/health-assistant/backend/internal/handler/scheme"
	"github.com/rmncha/health-assistant/backend/internal/handler/speech"
	"github.com/rmncha/health-assistant/backend/internal/handler/stream"
	middlewarePkg "github.com/rmncha/health-assistant/backend/internal/middleware"
	ashaModel "github.com/rmncha/health-assistant/backend/internal/model/asha"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	schemeModel "github.com/rmncha/health-assistant/backend/internal/model/scheme"
	chatService "github.com/rmncha/health-assistant/backend/internal/service/chat"
	registrationService "github.com/rmncha/health-assistant/backend/internal/service/registration"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Dependencies collects the services the HTTP layer is wired to.
type Dependencies struct {
	Table          *locale.Table
	Chat           *chatService.Service
	Registrations  *registrationService.Service
	Schemes        schemeModel.Store
	Workers        ashaModel.Store
	AllowedOrigins []string
	ResponseDelay  time.Duration
	SpeechEnabled  bool
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	chatHandler := chat.New(deps.Chat, deps.Table)
	streamHandler := stream.New(deps.Chat, deps.Table, deps.ResponseDelay)

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "RMNCHA Health Assistant API"})
		})

		api.Route("/chat", func(cr chi.Router) {
			chatHandler.RegisterRoutes(cr)

			// 打字指示 + 回复的 SSE 流
			cr.Get("/sessions/{sessionID}/stream", func(w http.ResponseWriter, r *http.Request) {
				sessionID := chi.URLParam(r, "sessionID")
				userMessage := r.URL.Query().Get("message")
				if userMessage == "" {
					utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
					return
				}

				if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
					if errors.Is(err, chatService.ErrSessionNotFound) {
						utils.RespondError(w, http.StatusNotFound, "session not found")
						return
					}
					log.Printf("[stream] error handling request: %v", err)
					utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
				}
			})

			if deps.SpeechEnabled {
				wsHandler := chat.NewWebSocketHandler(deps.Chat, deps.Table, middlewarePkg.CheckOrigin(deps.AllowedOrigins))
				wsHandler.RegisterWebSocketRoutes(cr)
			}
		})

		scheme.New(deps.Schemes).RegisterRoutes(api)
		asha.New(deps.Workers).RegisterRoutes(api)
		register.New(deps.Registrations, deps.Table).RegisterRoutes(api)
		speech.New(deps.Chat, deps.SpeechEnabled).RegisterRoutes(api)
	})

	return r
}
