// Package http serves document rendering over HTTP.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// Defaults for a Server.
const (
	DefaultCacheSize   = 256
	DefaultMaxBodySize = 4 << 20
	shutdownTimeout    = 10 * time.Second
)

// Server renders JSON descriptors and Markdown to LaTeX. Rendered output
// is cached by route, query and request body.
type Server struct {
	router chi.Router
	cache  *lru.Cache[string, []byte]
	log    zerolog.Logger

	token       string
	indentUnit  string
	cacheSize   int
	maxBodySize int64
}

// Option configures a Server.
type Option func(*Server)

// WithToken requires "Authorization: Bearer <token>" on render routes.
// An empty token disables authentication.
func WithToken(token string) Option {
	return func(s *Server) { s.token = token }
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithCacheSize sets the number of rendered documents kept in memory.
func WithCacheSize(n int) Option {
	return func(s *Server) { s.cacheSize = n }
}

// WithIndentUnit sets the indentation of rendered documents.
func WithIndentUnit(unit string) Option {
	return func(s *Server) { s.indentUnit = unit }
}

// WithMaxBodySize limits request bodies to n bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) { s.maxBodySize = n }
}

// NewServer returns a server with its routes configured.
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{
		log:         zerolog.Nop(),
		cacheSize:   DefaultCacheSize,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New[string, []byte](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	s.cache = cache
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// CacheLen returns the number of cached documents.
func (s *Server) CacheLen() int { return s.cache.Len() }

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.token != "" {
			r.Use(AuthMiddleware(s.token))
		}
		r.Post("/render", s.handleRender)
		r.Post("/markdown", s.handleMarkdown)
	})

	s.router = r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("Listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
