// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	const (
		expectDefaultUnits       = "metric"
		expectLogLevel           = slog.LevelInfo
		expectWeatherProvider    = "openweathermap"
		expectGeocoderProvider   = "weather"
		expectSuggestMinChars    = 3
		expectSuggestLimit       = 5
		expectIntervalDebounce   = time.Millisecond * 500
		expectIntervalFetch      = time.Second * 10
		expectIntervalRefresh    = time.Minute * 15
		expectServerListen       = "127.0.0.1:8080"
		expectPreferencesFileEnd = "prefs.toml"
	)
	t.Run("new config with all defaults set", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Units != expectDefaultUnits {
			t.Errorf("expected units to be: %s, got %s", expectDefaultUnits, conf.Units)
		}
		if conf.LogLevel != expectLogLevel {
			t.Errorf("expected log level to be: %s, got %s", expectLogLevel, conf.LogLevel)
		}
		if conf.Weather.Provider != expectWeatherProvider {
			t.Errorf("expected weather provider to be: %s, got %s", expectWeatherProvider, conf.Weather.Provider)
		}
		if conf.GeoCoder.Provider != expectGeocoderProvider {
			t.Errorf("expected geocoder provider to be: %s, got %s", expectGeocoderProvider,
				conf.GeoCoder.Provider)
		}
		if conf.Suggest.MinChars != expectSuggestMinChars {
			t.Errorf("expected suggestion min chars to be: %d, got %d", expectSuggestMinChars,
				conf.Suggest.MinChars)
		}
		if conf.Suggest.Limit != expectSuggestLimit {
			t.Errorf("expected suggestion limit to be: %d, got %d", expectSuggestLimit, conf.Suggest.Limit)
		}
		if conf.Intervals.Debounce != expectIntervalDebounce {
			t.Errorf("expected debounce interval to be: %s, got %s", expectIntervalDebounce,
				conf.Intervals.Debounce)
		}
		if conf.Intervals.FetchTimeout != expectIntervalFetch {
			t.Errorf("expected fetch timeout to be: %s, got %s", expectIntervalFetch, conf.Intervals.FetchTimeout)
		}
		if conf.Intervals.Refresh != expectIntervalRefresh {
			t.Errorf("expected refresh interval to be: %s, got %s", expectIntervalRefresh, conf.Intervals.Refresh)
		}
		if conf.Server.Listen != expectServerListen {
			t.Errorf("expected server listen address to be: %s, got %s", expectServerListen, conf.Server.Listen)
		}
		if !strings.HasSuffix(conf.Preferences.File, expectPreferencesFileEnd) {
			t.Errorf("expected preferences file to end with %s, got %s", expectPreferencesFileEnd,
				conf.Preferences.File)
		}
		if conf.Templates.Current != DefaultCurrentTpl {
			t.Error("expected default current template to be set")
		}
		if conf.Templates.Forecast != DefaultForecastTpl {
			t.Error("expected default forecast template to be set")
		}
	})
	t.Run("new config with values from env", func(t *testing.T) {
		t.Setenv("WEATHERDASH_WEATHER_PROVIDER", "open-meteo")
		t.Setenv("WEATHERDASH_WEATHER_APIKEY", "secret")
		t.Setenv("WEATHERDASH_UNITS", "imperial")
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Weather.Provider != "open-meteo" {
			t.Errorf("expected weather provider from env, got %s", conf.Weather.Provider)
		}
		if conf.Weather.APIKey != "secret" {
			t.Errorf("expected API key from env, got %s", conf.Weather.APIKey)
		}
		if conf.Units != "imperial" {
			t.Errorf("expected units from env, got %s", conf.Units)
		}
	})
	t.Run("new config with invalid values from env", func(t *testing.T) {
		t.Setenv("WEATHERDASH_LOGLEVEL", "invalid")
		_, err := New()
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})

	invalid := []struct {
		name  string
		env   string
		value string
	}{
		{"units", "WEATHERDASH_UNITS", "kelvin"},
		{"weather provider", "WEATHERDASH_WEATHER_PROVIDER", "invalid"},
		{"geocoder provider", "WEATHERDASH_GEOCODER_PROVIDER", "invalid"},
		{"suggestion min chars", "WEATHERDASH_SUGGEST_MIN_CHARS", "0"},
		{"suggestion limit too low", "WEATHERDASH_SUGGEST_LIMIT", "0"},
		{"suggestion limit too high", "WEATHERDASH_SUGGEST_LIMIT", "6"},
		{"debounce interval", "WEATHERDASH_INTERVALS_DEBOUNCE", "0s"},
		{"fetch timeout", "WEATHERDASH_INTERVALS_FETCH_TIMEOUT", "-1s"},
		{"rate limit", "WEATHERDASH_RATELIMIT_RPS", "-1"},
	}
	for _, tt := range invalid {
		t.Run("config validate "+tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := New()
			if err == nil {
				t.Error("expected config to fail, but didn't")
			}
		})
	}
}

func TestNewFromFile(t *testing.T) {
	t.Run("reading config from valid file succeeds", func(t *testing.T) {
		conf, err := NewFromFile("../../etc", "config.toml")
		if err != nil {
			t.Fatalf("failed to load config: %s", err)
		}
		if conf.Weather.Provider != "open-meteo" {
			t.Errorf("expected weather provider to be open-meteo, got %s", conf.Weather.Provider)
		}
		if conf.GeoCoder.CacheHitTTL != time.Hour {
			t.Errorf("expected cache hit TTL to be 1h, got %s", conf.GeoCoder.CacheHitTTL)
		}
		if conf.RateLimit.RPS != 2 {
			t.Errorf("expected rate limit to be 2, got %f", conf.RateLimit.RPS)
		}
	})
	t.Run("reading config from non-existent file fails", func(t *testing.T) {
		_, err := NewFromFile("../../etc", "non-existent.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
	t.Run("reading invalid config file fails", func(t *testing.T) {
		_, err := NewFromFile("../../testdata", "invalid.toml")
		if err == nil {
			t.Error("expected config to fail, but didn't")
		}
	})
}
