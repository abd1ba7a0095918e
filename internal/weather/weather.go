// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package weather holds the weather domain model shared by the providers, the service and
// the presentation layer, together with the daily forecast reduction.
package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/weather-dash/internal/vartype"
)

// DateTextLayout is the layout of the timestamp string carried by each raw forecast sample.
const DateTextLayout = "2006-01-02 15:04:05"

// dateTextShortLayout is DateTextLayout without the seconds.
const dateTextShortLayout = "2006-01-02 15:04"

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	CurrentByName(ctx context.Context, name string) (*Conditions, error)
	CurrentByCoords(ctx context.Context, coords Coordinate) (*Conditions, error)
	Forecast(ctx context.Context, coords Coordinate) ([]ForecastEntry, error)
}

// Coordinate represents a geographic coordinate.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid checks if the coordinate is valid according to the EPSG logic
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Location is a resolved place as returned by a geocoder. It is never modified once resolved.
type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Coordinate returns the coordinates of the location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lon: l.Lon}
}

// DisplayName returns the label used for the location in suggestions and headings.
func (l Location) DisplayName() string {
	name := l.Name
	if l.Country != "" {
		name = fmt.Sprintf("%s, %s", name, l.Country)
	}
	if l.State != "" {
		name = fmt.Sprintf("%s, %s", name, l.State)
	}
	return name
}

// Conditions is a snapshot of the current weather at a location. Temperatures are always
// stored in degrees Celsius, visibility in meters and wind speed in meters per second.
type Conditions struct {
	GeneratedAt time.Time
	Name        string
	Coordinates Coordinate

	// Condition is the primary condition category, e.g. "Rain".
	Condition   string
	Description string
	Icon        string

	Temperature   vartype.VarFloat64
	FeelsLike     vartype.VarFloat64
	Pressure      vartype.VarFloat64
	Humidity      vartype.VarFloat64
	Visibility    vartype.VarFloat64
	WindSpeed     vartype.VarFloat64
	WindDirection vartype.VarFloat64
	Sunrise       vartype.VarTime
	Sunset        vartype.VarTime
}

// IsDay reports whether t lies between sunrise and sunset. Without sun times it assumes day.
func (c *Conditions) IsDay(t time.Time) bool {
	if !c.Sunrise.IsSet() || !c.Sunset.IsSet() {
		return true
	}
	return t.After(c.Sunrise.Value()) && t.Before(c.Sunset.Value())
}

// ForecastEntry is a single raw forecast sample, usually in 3 hour resolution.
type ForecastEntry struct {
	// DateText is the sample timestamp as delivered, "YYYY-MM-DD HH:MM:SS".
	DateText    string
	TempMax     vartype.VarFloat64
	TempMin     vartype.VarFloat64
	Condition   string
	Description string
	Icon        string
}

// Time parses DateText. The second return value is false if the timestamp is malformed.
func (e ForecastEntry) Time() (time.Time, bool) {
	return ParseDateText(e.DateText)
}

// ParseDateText parses a sample timestamp in the form "YYYY-MM-DD HH:MM:SS" or
// "YYYY-MM-DD HH:MM". Surrounding whitespace is ignored, anything else is rejected.
func ParseDateText(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	for _, layout := range []string{DateTextLayout, dateTextShortLayout} {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// APIError is returned by providers when the upstream API answered with a non-success status.
// Message is suitable for display to the user.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
