package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"corpassist-backend/internal/handlers"
	"corpassist-backend/internal/middleware"
	"corpassist-backend/internal/websocket"
)

// New wires the HTTP surface. rateLimiter may be nil to disable limiting.
func New(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	wsHub *websocket.Hub,
	rateLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	r.Get("/health", healthHandler.Health)

	// ──── Chat Routes ────
	r.Route("/chat", func(r chi.Router) {
		if rateLimiter != nil {
			r.Use(rateLimiter.Middleware)
		}
		r.Post("/", chatHandler.Chat)
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
