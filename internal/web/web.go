// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package web serves the weather lookup as a JSON API for browser frontends.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wneessen/weather-dash/internal/config"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/presenter"
	"github.com/wneessen/weather-dash/internal/prefs"
	"github.com/wneessen/weather-dash/internal/service"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/weather"
)

const shutdownTimeout = time.Second * 5

// Backend performs the lookups for the API.
type Backend interface {
	Lookup(ctx context.Context, text string) []weather.Location
	FetchByName(ctx context.Context, city string) (*service.Report, error)
	FetchByLocation(ctx context.Context, location weather.Location) (*service.Report, error)
	Snapshot() session.State
	SetTheme(theme prefs.Theme) (session.State, error)
}

type Server struct {
	config    *config.Config
	logger    *logger.Logger
	backend   Backend
	presenter *presenter.Presenter
}

func NewServer(conf *config.Config, log *logger.Logger, backend Backend, pres *presenter.Presenter) *Server {
	return &Server{
		config:    conf,
		logger:    log,
		backend:   backend,
		presenter: pres,
	}
}

// Router returns the HTTP handler of the API.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(s.config.Server.RequestTimeout))

	router.Get("/healthz", s.healthHandler)
	router.Route("/api", func(r chi.Router) {
		r.Get("/suggest", s.suggestHandler)
		r.Get("/weather", s.weatherHandler)
		r.Get("/theme", s.getThemeHandler)
		r.Put("/theme", s.putThemeHandler)
	})
	return router
}

// ListenAndServe serves the API until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.config.Server.Listen,
		Handler:           s.Router(),
		ReadHeaderTimeout: time.Second * 10,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", slog.String("listen", s.config.Server.Listen))
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to serve API: %w", err)
	case <-ctx.Done():
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve API: %w", err)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("handled request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
