// Package api provides the read-only HTTP API for the social network
// record keeper.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/umckinney/social-network-simulator/internal/http/response"
	"github.com/umckinney/social-network-simulator/internal/ratelimit"
	"github.com/umckinney/social-network-simulator/internal/service"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	userService    *service.UserService
	statusService  *service.StatusService
	pictureService *service.PictureService
	limiter        *ratelimit.KeyedRateLimiter
	router         *chi.Mux
	logger         *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	userService *service.UserService,
	statusService *service.StatusService,
	pictureService *service.PictureService,
	limiter *ratelimit.KeyedRateLimiter,
	logger *slog.Logger,
) *Server {
	s := &Server{
		userService:    userService,
		statusService:  statusService,
		pictureService: pictureService,
		limiter:        limiter,
		router:         chi.NewRouter(),
		logger:         logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.rateLimit)
}

// rateLimit rejects clients that exceed their per-IP token bucket.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow(r.RemoteAddr) {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded", s.logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// setupRoutes configures all HTTP routes. The API is read-only; writes
// go through the interactive menu.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Get("/{userID}", s.handleGetUser)
			r.Get("/{userID}/statuses", s.handleListUserStatuses)
			r.Get("/{userID}/images", s.handleListUserPictures)
		})

		r.Route("/statuses", func(r chi.Router) {
			r.Get("/", s.handleListStatuses)
			r.Get("/{statusID}", s.handleGetStatus)
		})

		r.Route("/images", func(r chi.Router) {
			r.Get("/", s.handleListPictures)
			r.Get("/{pictureID}", s.handleGetPicture)
		})

		r.Get("/differences", s.handleGetDifferences)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
