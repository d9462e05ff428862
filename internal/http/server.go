// Package http serves on-demand diagnostics over a small JSON and
// plain-text API. Every request collects a fresh snapshot; nothing is
// cached or stored between requests.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GabrielRod726/hardware-diagnostic/internal/collect"
	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
)

// Collector yields a fresh snapshot of the host.
type Collector func(ctx context.Context, opts collect.Options) (*domain.Snapshot, error)

type Server struct {
	port    int
	opts    collect.Options
	collect Collector
	log     *slog.Logger
	r       *chi.Mux
}

func New(port int, opts collect.Options, collector Collector, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		r:       chi.NewRouter(),
		port:    port,
		opts:    opts,
		collect: collector,
		log:     log,
	}
	s.r.Use(middleware.RequestID)
	s.r.Use(middleware.RealIP)
	s.r.Use(newRequestLogger("/healthz"))
	s.r.Use(middleware.Recoverer)
	s.r.Use(middleware.Timeout(60 * time.Second))
	s.AddDiagnosticRoutes()
	return s
}

// Serve runs the server until ctx is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: s.r}

	if ip := preferredHostIP(); ip != "" {
		s.log.Info("diagnostic server listening", "addr", addr, "url", fmt.Sprintf("http://%s:%d", ip, s.port))
	} else {
		s.log.Info("diagnostic server listening", "addr", addr)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	s.log.Info("diagnostic server stopped")
	return nil
}
