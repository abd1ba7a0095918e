// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/vorlif/spreak"

	"github.com/wneessen/weather-dash/internal/config"
	"github.com/wneessen/weather-dash/internal/format"
	"github.com/wneessen/weather-dash/internal/geocode"
	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/locate"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/prefs"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/weather"
)

// Locator resolves the approximate location of the user.
type Locator interface {
	Locate(ctx context.Context) (weather.Location, error)
}

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	scheduler gocron.Scheduler
	t         *spreak.Localizer

	provider weather.Provider
	geocoder geocode.Geocoder
	locator  Locator
	prefs    *prefs.File
	store    *session.Store
}

func New(conf *config.Config, log *logger.Logger, t *spreak.Localizer) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if t == nil {
		return nil, fmt.Errorf("localizer is required")
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	httpClient := http.New(log, http.WithRateLimit(conf.RateLimit.RPS, conf.RateLimit.Burst))
	service := &Service{
		config:    conf,
		logger:    log,
		scheduler: scheduler,
		t:         t,
		locator:   locate.New(httpClient),
		prefs:     prefs.New(conf.Preferences.File),
	}

	service.provider, err = service.selectWeatherProvider(httpClient, t.Language())
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}
	service.geocoder, err = service.selectGeocodeProvider(service.provider, httpClient, t.Language())
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode provider: %w", err)
	}

	theme, err := service.prefs.Load()
	if err != nil {
		log.Warn("failed to load preferences, using default theme", logger.Err(err),
			slog.String("file", service.prefs.Path()))
	}
	service.store = session.NewStore(session.New(format.ParseUnit(conf.Units), theme))

	log.Debug("service initialized", slog.String("weather_provider", service.provider.Name()),
		slog.String("geocoder", service.geocoder.Name()))
	return service, nil
}

// Run starts the periodic refresh of the confirmed location and blocks until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	if s.config.Intervals.Refresh > 0 {
		if err := s.createScheduledJob(ctx, s.config.Intervals.Refresh, s.refreshJob,
			"weather_refresh_job"); err != nil {
			return err
		}
	}
	s.scheduler.Start()

	<-ctx.Done()
	return s.scheduler.Shutdown()
}

// Store returns the session store.
func (s *Service) Store() *session.Store {
	return s.store
}

// Snapshot returns the current session state.
func (s *Service) Snapshot() session.State {
	return s.store.Snapshot()
}

// ProviderName returns the name of the configured weather provider.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string,
) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

func (s *Service) refreshJob(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("failed to refresh weather data", logger.Err(err))
	}
}
