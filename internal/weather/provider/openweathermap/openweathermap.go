// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/vartype"
	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	APICurrentEndpoint  = "https://api.openweathermap.org/data/2.5/weather"
	APIForecastEndpoint = "https://api.openweathermap.org/data/2.5/forecast"
	APIGeocodeEndpoint  = "https://api.openweathermap.org/geo/1.0/direct"
	APITimeout          = time.Second * 10
	name                = "openweathermap"

	// Messages used when the API error payload carries none.
	msgCityNotFound   = "City not found"
	msgForecastFailed = "Forecast fetch failed"
)

var ErrMissingAPIKey = errors.New("openweathermap requires an API key")

type OpenWeatherMap struct {
	apikey string
	http   *http.Client
	lang   language.Tag
}

// apiMessage holds the "message" field of an API response. The API sends a string for errors
// and a number for successful forecast responses, only the former is kept.
type apiMessage string

type conditionResult struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Message apiMessage `json:"message"`
	Name    string     `json:"name"`
	Coord   struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []conditionResult `json:"weather"`
	Main    struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Pressure  *float64 `json:"pressure"`
		Humidity  *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
		Deg   *float64 `json:"deg"`
	} `json:"wind"`
	Visibility *float64 `json:"visibility"`
	Sys        struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

type forecastResponse struct {
	Message apiMessage `json:"message"`
	List    []struct {
		DateText string `json:"dt_txt"`
		Main     struct {
			TempMax *float64 `json:"temp_max"`
			TempMin *float64 `json:"temp_min"`
		} `json:"main"`
		Weather []conditionResult `json:"weather"`
	} `json:"list"`
}

type geocodeResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func New(client *http.Client, lang language.Tag, apikey string) (*OpenWeatherMap, error) {
	if client == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if apikey == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenWeatherMap{
		apikey: apikey,
		lang:   lang,
		http:   client,
	}, nil
}

func (o *OpenWeatherMap) Name() string {
	return name
}

// CurrentByName looks up the current conditions for a free text city query.
func (o *OpenWeatherMap) CurrentByName(ctx context.Context, city string) (*weather.Conditions, error) {
	query := o.query()
	query.Set("q", city)
	return o.current(ctx, query)
}

// CurrentByCoords looks up the current conditions for the given coordinates.
func (o *OpenWeatherMap) CurrentByCoords(ctx context.Context, coords weather.Coordinate) (*weather.Conditions, error) {
	query := o.query()
	query.Set("lat", formatCoord(coords.Lat))
	query.Set("lon", formatCoord(coords.Lon))
	return o.current(ctx, query)
}

// Forecast returns the raw 3 hour forecast series for the given coordinates.
func (o *OpenWeatherMap) Forecast(ctx context.Context, coords weather.Coordinate) ([]weather.ForecastEntry, error) {
	var res forecastResponse
	query := o.query()
	query.Set("lat", formatCoord(coords.Lat))
	query.Set("lon", formatCoord(coords.Lon))

	code, err := o.http.GetWithTimeout(ctx, APIForecastEndpoint, &res, query, nil, APITimeout)
	if apiErr := o.apiError(code, res.Message, msgForecastFailed); apiErr != nil {
		return nil, apiErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve forecast data from OpenWeatherMap API: %w", err)
	}

	entries := make([]weather.ForecastEntry, 0, len(res.List))
	for _, item := range res.List {
		entry := weather.ForecastEntry{
			DateText: item.DateText,
			TempMax:  optional(item.Main.TempMax),
			TempMin:  optional(item.Main.TempMin),
		}
		if len(item.Weather) > 0 {
			entry.Condition = item.Weather[0].Main
			entry.Description = item.Weather[0].Description
			entry.Icon = item.Weather[0].Icon
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Search performs a forward geocoding lookup for the given query.
func (o *OpenWeatherMap) Search(ctx context.Context, address string, limit int) ([]weather.Location, error) {
	var results []geocodeResult
	query := url.Values{}
	query.Set("q", address)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("appid", o.apikey)

	code, err := o.http.GetWithTimeout(ctx, APIGeocodeEndpoint, &results, query, nil, APITimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations from OpenWeatherMap API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("OpenWeatherMap API returned non-positive response code: %d", code)
	}

	locations := make([]weather.Location, 0, len(results))
	for _, result := range results {
		locations = append(locations, weather.Location{
			Name:    result.Name,
			Country: result.Country,
			State:   result.State,
			Lat:     result.Lat,
			Lon:     result.Lon,
		})
	}
	return locations, nil
}

func (o *OpenWeatherMap) current(ctx context.Context, query url.Values) (*weather.Conditions, error) {
	var res currentResponse
	code, err := o.http.GetWithTimeout(ctx, APICurrentEndpoint, &res, query, nil, APITimeout)
	if apiErr := o.apiError(code, res.Message, msgCityNotFound); apiErr != nil {
		return nil, apiErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from OpenWeatherMap API: %w", err)
	}

	cond := &weather.Conditions{
		GeneratedAt:   time.Now(),
		Name:          res.Name,
		Coordinates:   weather.Coordinate{Lat: res.Coord.Lat, Lon: res.Coord.Lon},
		Temperature:   optional(res.Main.Temp),
		FeelsLike:     optional(res.Main.FeelsLike),
		Pressure:      optional(res.Main.Pressure),
		Humidity:      optional(res.Main.Humidity),
		Visibility:    optional(res.Visibility),
		WindSpeed:     optional(res.Wind.Speed),
		WindDirection: optional(res.Wind.Deg),
	}
	if len(res.Weather) > 0 {
		cond.Condition = res.Weather[0].Main
		cond.Description = res.Weather[0].Description
		cond.Icon = res.Weather[0].Icon
	}
	if res.Sys.Sunrise > 0 {
		cond.Sunrise.Set(time.Unix(res.Sys.Sunrise, 0))
	}
	if res.Sys.Sunset > 0 {
		cond.Sunset.Set(time.Unix(res.Sys.Sunset, 0))
	}

	return cond, nil
}

func (o *OpenWeatherMap) query() url.Values {
	query := url.Values{}
	query.Set("appid", o.apikey)
	query.Set("units", "metric")
	if o.lang != language.Und {
		base, _ := o.lang.Base()
		query.Set("lang", base.String())
	}
	return query
}

// apiError returns a weather.APIError for non-success status codes. A status code of 0 means
// no response was received at all.
func (o *OpenWeatherMap) apiError(code int, message apiMessage, fallback string) error {
	if code == 0 || (code >= 200 && code < 300) {
		return nil
	}
	msg := string(message)
	if msg == "" {
		msg = fallback
	}
	return &weather.APIError{Provider: name, StatusCode: code, Message: msg}
}

func (m *apiMessage) UnmarshalJSON(b []byte) error {
	var msg string
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil
	}
	*m = apiMessage(msg)
	return nil
}

func optional(val *float64) vartype.VarFloat64 {
	var v vartype.VarFloat64
	if val != nil {
		v.Set(*val)
	}
	return v
}

func formatCoord(val float64) string {
	return strconv.FormatFloat(val, 'f', 6, 64)
}
