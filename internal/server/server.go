package server

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/clipnote/clipnote/internal/auth"
	"github.com/clipnote/clipnote/internal/comment"
	"github.com/clipnote/clipnote/internal/database"
	"github.com/clipnote/clipnote/internal/httputil"
	"github.com/clipnote/clipnote/internal/page"
	"github.com/clipnote/clipnote/internal/ratelimit"
	"github.com/clipnote/clipnote/internal/validate"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	DB             database.DBTX
	Pinger         Pinger
	Cache          comment.ListCache
	JWTSecret      string
	BaseURL        string
	DefaultVideoID string
}

type Server struct {
	router         chi.Router
	pinger         Pinger
	authHandler    *auth.Handler
	commentHandler *comment.Handler
	pageHandler    *page.Handler
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders(SecurityConfig{BaseURL: cfg.BaseURL}))

	s := &Server{router: r, pinger: cfg.Pinger}

	if cfg.DB != nil {
		jwtSecret := cfg.JWTSecret
		if jwtSecret == "" {
			log.Fatal("JWT_SECRET is required; set the environment variable")
		}

		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}

		secureCookies := strings.HasPrefix(baseURL, "https://")
		s.authHandler = auth.NewHandler(cfg.DB, jwtSecret, secureCookies)
		s.commentHandler = comment.NewHandler(cfg.DB, cfg.Cache)
	}

	defaultVideoID := cfg.DefaultVideoID
	if defaultVideoID == "" {
		defaultVideoID = "76979871"
	}
	s.pageHandler = page.NewHandler(defaultVideoID)

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/limits", s.handleLimits)

	if s.authHandler != nil {
		authLimiter := ratelimit.NewLimiter(0.5, 5)
		s.router.Route("/api/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", s.authHandler.Register)
			r.Post("/login", s.authHandler.Login)
			r.Post("/refresh", s.authHandler.Refresh)
			r.Post("/logout", s.authHandler.Logout)
			r.Group(func(r chi.Router) {
				r.Use(s.authHandler.Middleware)
				r.Get("/me", s.authHandler.Me)
			})
		})
	}

	if s.commentHandler != nil {
		s.router.Route("/api/video-comments", func(r chi.Router) {
			r.Get("/", s.commentHandler.List)
			r.Group(func(r chi.Router) {
				r.Use(s.authHandler.Middleware)
				r.Post("/", s.commentHandler.Create)
				r.Delete("/{id}", s.commentHandler.Delete)
			})
		})
	}

	s.router.Get("/", s.pageHandler.Home)
	s.router.Get("/watch/{videoID}", s.pageHandler.WatchPage)
	s.router.Get("/login", s.pageHandler.LoginPage)
	s.router.Get("/register", s.pageHandler.RegisterPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy","error":"database unreachable"}`))
			return
		}
	}
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleLimits(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, validate.FieldLimits())
}
