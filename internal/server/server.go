package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hara/internal/logging"
	"hara/internal/manifest"
)

// Options configures a Server.
type Options struct {
	Bind string
	// ManifestPath is served verbatim at /manifest.json.
	ManifestPath string
	Format       manifest.Format
	// Source answers API queries; nil reads ManifestPath.
	Source Source
	// Roots are directories exposed under their own slash-separated path, as
	// record meta and pdf fields reference them.
	Roots []string
	// SiteDir serves every other path, typically the front-end's files.
	SiteDir string
	Logger  *slog.Logger
}

// Server is the preview HTTP server.
type Server struct {
	bind         string
	manifestPath string
	format       manifest.Format
	source       Source
	mounts       []mount
	site         http.Handler
	logger       *slog.Logger
	router       chi.Router
}

// New builds a Server and its routes.
func New(opts Options) *Server {
	s := &Server{
		bind:         strings.TrimSpace(opts.Bind),
		manifestPath: opts.ManifestPath,
		format:       opts.Format,
		source:       opts.Source,
		mounts:       newMounts(opts.Roots),
		logger:       logging.NewComponentLogger(opts.Logger, "server"),
	}
	if s.source == nil {
		s.source = NewManifestSource(opts.ManifestPath, opts.Format)
	}
	if opts.SiteDir != "" {
		s.site = noListing(http.FileServer(http.Dir(opts.SiteDir)))
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/health", s.handleHealth)
	r.Get("/manifest.json", s.handleManifest)
	r.Route("/api/papers", func(r chi.Router) {
		r.Get("/", s.handlePapers)
		r.Get("/{id}", s.handlePaper)
	})
	r.Get("/*", s.handleStatic)
	r.Head("/*", s.handleStatic)
	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.bind == "" {
		return errors.New("serve bind address is empty")
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve handles requests on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()
	s.logger.Info("preview server listening", logging.String("address", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Duration("elapsed", time.Since(started)),
		)
	})
}
