// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the weather-dash terminal dashboard and API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wneessen/weather-dash/internal/config"
	"github.com/wneessen/weather-dash/internal/i18n"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/presenter"
	"github.com/wneessen/weather-dash/internal/service"
	"github.com/wneessen/weather-dash/internal/weather"
	"github.com/wneessen/weather-dash/internal/web"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	confPath string
	city     string
	lat      string
	lon      string
	here     bool
	serve    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	var opts options
	flag.StringVar(&opts.confPath, "config", "", "path to the config file")
	flag.StringVar(&opts.city, "city", "", "show the weather for the city and exit")
	flag.StringVar(&opts.lat, "lat", "", "latitude of the location to show the weather for")
	flag.StringVar(&opts.lon, "lon", "", "longitude of the location to show the weather for")
	flag.BoolVar(&opts.here, "here", false, "show the weather for your approximate location and exit")
	flag.BoolVar(&opts.serve, "serve", false, "serve the JSON API")
	flag.Parse()

	conf, err := loadConfig(opts.confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		conf.NoColor = true
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize weather-dash service", logger.Err(err))
		os.Exit(1)
	}
	pres, err := presenter.New(conf, t)
	if err != nil {
		log.Error("failed to initialize presenter", logger.Err(err))
		os.Exit(1)
	}

	log.Debug("starting weather-dash", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date),
		slog.String("provider", serv.ProviderName()))

	switch {
	case opts.serve:
		err = serve(ctx, conf, log, serv, pres)
	case opts.city != "", opts.lat != "" || opts.lon != "", opts.here:
		err = once(ctx, opts, serv, pres)
	default:
		err = interactive(ctx, conf, log, serv, pres)
	}
	if err != nil {
		log.Error("weather-dash failed", logger.Err(err))
		cancel()
		os.Exit(1)
	}
}

// once fetches the weather for the location given on the command line and prints it.
func once(ctx context.Context, opts options, serv *service.Service, pres *presenter.Presenter) error {
	var err error
	switch {
	case opts.here:
		err = serv.Locate(ctx)
	case opts.lat != "" || opts.lon != "":
		var location weather.Location
		location, err = parseLocation(opts.lat, opts.lon)
		if err != nil {
			return err
		}
		err = serv.Select(ctx, location)
	default:
		err = serv.Search(ctx, opts.city)
	}

	view, rerr := pres.Dashboard(serv.Snapshot())
	if rerr != nil {
		return rerr
	}
	fmt.Print(view)
	return err
}

func interactive(ctx context.Context, conf *config.Config, log *logger.Logger, serv *service.Service,
	pres *presenter.Presenter,
) error {
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(ctx)
	})
	group.Go(func() error {
		defer cancel()
		dash := newDashboard(ctx, serv, pres, log, os.Stdout, conf.Intervals.Debounce)
		return dash.run(ctx, os.Stdin)
	})
	return group.Wait()
}

func serve(ctx context.Context, conf *config.Config, log *logger.Logger, serv *service.Service,
	pres *presenter.Presenter,
) error {
	server := web.NewServer(conf, log, serv, pres)
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serv.Run(ctx)
	})
	group.Go(func() error {
		return server.ListenAndServe(ctx)
	})
	return group.Wait()
}

func loadConfig(confPath string) (*config.Config, error) {
	// If config file was specified, read it
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "weather-dash", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}

func parseLocation(lat, lon string) (weather.Location, error) {
	if lat == "" || lon == "" {
		return weather.Location{}, errors.New("both -lat and -lon are required")
	}
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return weather.Location{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return weather.Location{}, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}
	location := weather.Location{Lat: latitude, Lon: longitude}
	if !location.Coordinate().Valid() {
		return weather.Location{}, fmt.Errorf("coordinates out of range: %f, %f", latitude, longitude)
	}
	return location, nil
}
