// Package rest exposes the HTTP/JSON API: registration, login and
// owner-scoped tab CRUD, with the session token carried in the x-auth-token
// header.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tabsense/internal/logging"
	"github.com/dmitrijs2005/tabsense/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the public API.
type Server struct {
	address   string
	users     *services.UserService
	tabs      *services.TabService
	logger    logging.Logger
	jwtSecret []byte
}

// NewServer constructs a Server bound to the given address.
func NewServer(addr string, l logging.Logger, us *services.UserService, ts *services.TabService, secretKey string) *Server {
	return &Server{
		address:   addr,
		logger:    l.With("module", "rest_server"),
		users:     us,
		tabs:      ts,
		jwtSecret: []byte(secretKey),
	}
}

// Router assembles the chi route tree. Exposed separately so tests can drive
// the handlers without a listening socket.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Post("/api/auth/register", s.handleRegister)
	r.Post("/api/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/api/auth/me", s.handleMe)
		r.Get("/api/tabs", s.handleListTabs)
		r.Post("/api/tabs", s.handleSaveTab)
		r.Delete("/api/tabs/{id}", s.handleDeleteTab)
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
