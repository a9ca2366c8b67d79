// Package gateway exposes the session-scoped REST surface and composes
// normalization, routing, translation, and aggregation per endpoint.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matheus3301/wppgw/internal/config"
	"go.uber.org/zap"
)

// Server manages the gateway's HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the router and the HTTP server around it.
func NewServer(cfg *config.Config, h *Handler, logger *zap.Logger) *Server {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.root)
	r.Get("/health", h.health)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/create", h.createSession)
		r.Get("/list", h.listSessions)

		r.Route("/{phone}", func(r chi.Router) {
			r.Delete("/", h.deleteSession)
			r.Get("/status", h.sessionStatus)
			r.Post("/connect", h.connectSession)
			r.Post("/disconnect", h.disconnectSession)

			r.Get("/auth/qr", h.qr)
			r.Get("/auth/status", h.authStatus)
			r.Post("/auth/logout", h.logout)
			r.Post("/auth/pair-phone", h.pairPhone)

			r.Get("/messages", h.messages)
			r.Get("/messages/unread-count", h.unreadCount)
			r.Get("/messages/{chatID}", h.chatMessages)
			r.Post("/messages/read-status", h.readStatus)

			r.Get("/chats", h.chats)
		})
	})

	// Deprecated single-session routes kept for old clients; they resolve
	// to the first available session.
	r.Get("/auth/status", h.legacyAuthStatus)
	r.Get("/messages", h.legacyMessages)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
		// The write timeout must outlast a full backend round trip.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout.Std() + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{httpServer: httpServer, logger: logger}
}

// Start begins serving HTTP requests. Blocks until stopped.
func (s *Server) Start() error {
	s.logger.Info("http server starting", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Stop performs a graceful shutdown.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server stopping")
	return s.httpServer.Shutdown(ctx)
}
