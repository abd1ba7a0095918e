// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "WEATHERDASH"

	// MaxSuggestions is the upper bound for the number of location suggestions.
	MaxSuggestions = 5

	DefaultCurrentTpl = "{{.Theme.Accent}}{{.Location}}{{.Theme.Reset}}\n" +
		"{{.Current.ConditionIcon}} {{.Current.Temperature}} {{.Unit}}  {{.Current.Description}}\n" +
		"{{pad (loc \"feelslike\") 12}}{{.Current.FeelsLike}} {{.Unit}}\n" +
		"{{pad (loc \"humidity\") 12}}{{.Current.Humidity}} ({{loc .Current.HumidityCategory}})\n" +
		"{{pad (loc \"wind\") 12}}{{.Current.WindSpeed}} {{.Current.WindDirection}}\n" +
		"{{pad (loc \"visibility\") 12}}{{.Current.Visibility}}\n" +
		"{{pad (loc \"pressure\") 12}}{{.Current.Pressure}}\n" +
		"{{pad (loc \"sunrise\") 12}}{{timeFormat .SunriseTime \"15:04\"}}  " +
		"{{loc \"sunset\"}}: {{timeFormat .SunsetTime \"15:04\"}}\n" +
		"{{pad (loc \"moonphase\") 12}}{{.MoonPhaseIcon}} {{loc .MoonPhase}}"
	DefaultForecastTpl = "{{.Theme.Accent}}{{loc \"forecast\"}}{{.Theme.Reset}}\n" +
		"{{range .Forecast}}{{pad .DayLabel 14}}{{.ConditionIcon}} {{pad .Description 20}}" +
		"{{.TempMax}}° / {{.TempMin}}°\n{{end}}"
)

// Config represents the application's configuration structure.
type Config struct {
	// Allowed values: metric, imperial
	Units    string     `fig:"units" default:"metric"`
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`
	NoColor  bool       `fig:"no_color"`

	Weather struct {
		// Allowed values: openweathermap, open-meteo
		Provider string `fig:"provider" default:"openweathermap"`
		APIKey   string `fig:"apikey"`
		IconURL  string `fig:"icon_url" default:"https://openweathermap.org/img/wn/%s@2x.png"`
	} `fig:"weather"`

	GeoCoder struct {
		// Allowed values: weather (use the weather provider's geocoder), osm-nominatim, opencage
		Provider     string        `fig:"provider" default:"weather"`
		APIKey       string        `fig:"apikey"`
		CacheHitTTL  time.Duration `fig:"cache_hit_ttl" default:"1h"`
		CacheMissTTL time.Duration `fig:"cache_miss_ttl" default:"5m"`
	} `fig:"geocoder"`

	Suggest struct {
		MinChars int `fig:"min_chars" default:"3"`
		// Allowed value: 1 to 5
		Limit int `fig:"limit" default:"5"`
	} `fig:"suggest"`

	Intervals struct {
		Debounce     time.Duration `fig:"debounce" default:"500ms"`
		FetchTimeout time.Duration `fig:"fetch_timeout" default:"10s"`
		Refresh      time.Duration `fig:"refresh" default:"15m"`
	} `fig:"intervals"`

	RateLimit struct {
		// Requests per second to the upstream APIs, 0 disables the limit
		RPS   float64 `fig:"rps" default:"2"`
		Burst int     `fig:"burst" default:"4"`
	} `fig:"ratelimit"`

	Templates struct {
		Current  string `fig:"current"`
		Forecast string `fig:"forecast"`
	} `fig:"templates"`

	Preferences struct {
		File string `fig:"file"`
	} `fig:"preferences"`

	Server struct {
		Listen         string        `fig:"listen" default:"127.0.0.1:8080"`
		RequestTimeout time.Duration `fig:"request_timeout" default:"30s"`
	} `fig:"server"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Units != "metric" && c.Units != "imperial" {
		return fmt.Errorf("invalid units: %s", c.Units)
	}
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	switch strings.ToLower(c.Weather.Provider) {
	case "openweathermap", "open-meteo":
	default:
		return fmt.Errorf("invalid weather provider: %s", c.Weather.Provider)
	}
	switch strings.ToLower(c.GeoCoder.Provider) {
	case "weather", "osm-nominatim", "opencage":
	default:
		return fmt.Errorf("invalid geocoder provider: %s", c.GeoCoder.Provider)
	}
	if c.Suggest.MinChars < 1 {
		return fmt.Errorf("invalid suggestion minimum characters: %d", c.Suggest.MinChars)
	}
	if c.Suggest.Limit < 1 || c.Suggest.Limit > MaxSuggestions {
		return fmt.Errorf("invalid suggestion limit: %d", c.Suggest.Limit)
	}
	if c.Intervals.Debounce <= 0 {
		return fmt.Errorf("invalid debounce interval: %s", c.Intervals.Debounce)
	}
	if c.Intervals.FetchTimeout <= 0 {
		return fmt.Errorf("invalid fetch timeout: %s", c.Intervals.FetchTimeout)
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("invalid rate limit: %f", c.RateLimit.RPS)
	}
	if c.Templates.Current == "" {
		c.Templates.Current = DefaultCurrentTpl
	}
	if c.Templates.Forecast == "" {
		c.Templates.Forecast = DefaultForecastTpl
	}
	if c.Preferences.File == "" {
		home, _ := os.UserHomeDir()
		c.Preferences.File = filepath.Join(home, ".config", "weather-dash", "prefs.toml")
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
