// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/hectormalot/omgo"
	"github.com/nathan-osman/go-sunrise"
	"golang.org/x/text/language"

	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/vartype"
	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	name               = "open-meteo"
	APIGeocodeEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	APITimeout         = time.Second * 10

	// sampleStep is the resolution of the emitted forecast series in hours
	sampleStep      = 3
	msgCityNotFound = "City not found"
)

var hourlyMetrics = []string{
	"temperature_2m", "apparent_temperature", "relative_humidity_2m", "pressure_msl", "visibility",
	"weather_code",
}

// forecaster is the part of the omgo client we use.
type forecaster interface {
	Forecast(ctx context.Context, loc omgo.Location, opts *omgo.Options) (*omgo.Forecast, error)
}

type OpenMeteo struct {
	client forecaster
	http   *http.Client
	lang   language.Tag
	log    *logger.Logger
	now    func() time.Time
}

type geocodeResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		CountryCode string  `json:"country_code"`
		Admin1      string  `json:"admin1"`
	} `json:"results"`
	Reason string `json:"reason"`
}

func New(http *http.Client, log *logger.Logger, lang language.Tag) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	omclient, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}

	return &OpenMeteo{client: omclient, http: http, lang: lang, log: log, now: time.Now}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

// CurrentByName resolves the city through the Open-Meteo geocoding API and returns the current
// conditions for the best match.
func (o *OpenMeteo) CurrentByName(ctx context.Context, city string) (*weather.Conditions, error) {
	locations, err := o.Search(ctx, city, 1)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, &weather.APIError{Provider: name, StatusCode: 404, Message: msgCityNotFound}
	}

	cond, err := o.CurrentByCoords(ctx, locations[0].Coordinate())
	if err != nil {
		return nil, err
	}
	cond.Name = locations[0].Name
	return cond, nil
}

// CurrentByCoords returns the current conditions. Values the current weather block does not
// carry are taken from the hourly series at the current hour.
func (o *OpenMeteo) CurrentByCoords(ctx context.Context, coords weather.Coordinate) (*weather.Conditions, error) {
	forecast, err := o.fetch(ctx, coords)
	if err != nil {
		return nil, err
	}

	now := o.now().UTC()
	cond := &weather.Conditions{
		GeneratedAt:   o.now(),
		Coordinates:   coords,
		Temperature:   vartype.NewVariable(forecast.CurrentWeather.Temperature),
		WindSpeed:     vartype.NewVariable(forecast.CurrentWeather.WindSpeed),
		WindDirection: vartype.NewVariable(forecast.CurrentWeather.WindDirection),
	}
	rise, set := sunrise.SunriseSunset(coords.Lat, coords.Lon, now.Year(), now.Month(), now.Day())
	if !rise.IsZero() && !set.IsZero() {
		cond.Sunrise.Set(rise)
		cond.Sunset.Set(set)
	}
	cond.Condition, cond.Description, cond.Icon = condition(int(forecast.CurrentWeather.WeatherCode),
		cond.IsDay(now))

	idx := hourIndex(forecast.HourlyTimes, now.Truncate(time.Hour))
	if idx < 0 {
		o.log.Debug("current hour not found in hourly series", slog.Time("hour", now.Truncate(time.Hour)))
		return cond, nil
	}
	cond.FeelsLike = metricAt(forecast, "apparent_temperature", idx)
	cond.Humidity = metricAt(forecast, "relative_humidity_2m", idx)
	cond.Pressure = metricAt(forecast, "pressure_msl", idx)
	cond.Visibility = metricAt(forecast, "visibility", idx)

	return cond, nil
}

// Forecast returns the hourly forecast thinned to a 3 hour series starting at the current
// hour. Each sample carries the max/min temperature of its 3 hour window.
func (o *OpenMeteo) Forecast(ctx context.Context, coords weather.Coordinate) ([]weather.ForecastEntry, error) {
	forecast, err := o.fetch(ctx, coords)
	if err != nil {
		return nil, err
	}

	start := o.now().UTC().Truncate(time.Hour)
	temps := forecast.HourlyMetrics["temperature_2m"]
	codes := forecast.HourlyMetrics["weather_code"]
	entries := make([]weather.ForecastEntry, 0, len(forecast.HourlyTimes)/sampleStep)
	for i, ts := range forecast.HourlyTimes {
		if ts.Before(start) || ts.Hour()%sampleStep != 0 {
			continue
		}
		entry := weather.ForecastEntry{DateText: ts.Format(weather.DateTextLayout)}
		if i < len(temps) {
			lo, hi := extremes(temps[i:min(i+sampleStep, len(temps))])
			entry.TempMax.Set(hi)
			entry.TempMin.Set(lo)
		}
		if i < len(codes) {
			rise, set := sunrise.SunriseSunset(coords.Lat, coords.Lon, ts.Year(), ts.Month(), ts.Day())
			isDay := ts.After(rise) && ts.Before(set)
			entry.Condition, entry.Description, entry.Icon = condition(int(codes[i]), isDay)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Search performs a forward geocoding lookup using the Open-Meteo geocoding API.
func (o *OpenMeteo) Search(ctx context.Context, address string, limit int) ([]weather.Location, error) {
	var response geocodeResponse
	query := url.Values{}
	query.Set("name", address)
	query.Set("count", strconv.Itoa(limit))
	query.Set("format", "json")
	if o.lang != language.Und {
		base, _ := o.lang.Base()
		query.Set("language", base.String())
	}

	code, err := o.http.GetWithTimeout(ctx, APIGeocodeEndpoint, &response, query, nil, APITimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations from Open-Meteo geocoding API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Open-Meteo geocoding API returned non-positive response code %d: %s", code,
			response.Reason)
	}

	locations := make([]weather.Location, 0, len(response.Results))
	for _, result := range response.Results {
		country := result.CountryCode
		if country == "" {
			country = result.Country
		}
		locations = append(locations, weather.Location{
			Name:    result.Name,
			Country: country,
			State:   result.Admin1,
			Lat:     result.Latitude,
			Lon:     result.Longitude,
		})
	}
	return locations, nil
}

func (o *OpenMeteo) fetch(ctx context.Context, coords weather.Coordinate) (*omgo.Forecast, error) {
	location, err := omgo.NewLocation(coords.Lat, coords.Lon)
	if err != nil {
		return nil, fmt.Errorf("failed create Open-Meteo location from coordinates: %w", err)
	}
	opts := &omgo.Options{
		TemperatureUnit:   "celsius",
		WindspeedUnit:     "ms",
		PrecipitationUnit: "mm",
		Timezone:          "UTC",
		HourlyMetrics:     hourlyMetrics,
	}

	ctxFetch, cancelFetch := context.WithTimeout(ctx, APITimeout)
	defer cancelFetch()
	forecast, err := o.client.Forecast(ctxFetch, location, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}
	if forecast == nil {
		return nil, fmt.Errorf("Open-Meteo API returned no forecast")
	}
	return forecast, nil
}

func hourIndex(times []time.Time, hour time.Time) int {
	for i, t := range times {
		if t.Equal(hour) {
			return i
		}
	}
	return -1
}

func metricAt(forecast *omgo.Forecast, metric string, idx int) vartype.VarFloat64 {
	var v vartype.VarFloat64
	values, ok := forecast.HourlyMetrics[metric]
	if ok && idx < len(values) {
		v.Set(values[idx])
	}
	return v
}

func extremes(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
