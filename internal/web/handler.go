// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/weather-dash/internal/format"
	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/presenter"
	"github.com/wneessen/weather-dash/internal/prefs"
	"github.com/wneessen/weather-dash/internal/service"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/weather"
)

// Suggestion is a location candidate.
type Suggestion struct {
	weather.Location
	Label string `json:"label"`
}

// WeatherResponse is the formatted weather of a location.
type WeatherResponse struct {
	Location  string                `json:"location"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Unit      string                `json:"unit"`
	Updated   time.Time             `json:"updated"`
	Sunrise   *time.Time            `json:"sunrise,omitempty"`
	Sunset    *time.Time            `json:"sunset,omitempty"`
	IsDay     bool                  `json:"is_day"`
	MoonPhase string                `json:"moon_phase"`
	Current   presenter.CurrentView `json:"current"`
	Forecast  []presenter.DayView   `json:"forecast"`
}

// ThemeDocument is the request and response body of the theme endpoints.
type ThemeDocument struct {
	Theme string `json:"theme"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) suggestHandler(w http.ResponseWriter, r *http.Request) {
	locations := s.backend.Lookup(r.Context(), r.URL.Query().Get("q"))
	suggestions := make([]Suggestion, 0, len(locations))
	for _, location := range locations {
		suggestions = append(suggestions, Suggestion{Location: location, Label: location.DisplayName()})
	}
	s.writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) weatherHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	unit := s.backend.Snapshot().Unit
	if query.Has("unit") {
		unit = format.ParseUnit(query.Get("unit"))
	}

	var report *service.Report
	var err error
	switch {
	case query.Has("lat") || query.Has("lon"):
		location, perr := locationFromQuery(query.Get("lat"), query.Get("lon"), query.Get("name"))
		if perr != nil {
			s.writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		report, err = s.backend.FetchByLocation(r.Context(), location)
	default:
		report, err = s.backend.FetchByName(r.Context(), query.Get("city"))
	}
	if err != nil {
		if errors.Is(err, service.ErrEmptyCity) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("failed to fetch weather data", logger.Err(err))
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, s.weatherResponse(report, unit))
}

func (s *Server) getThemeHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, ThemeDocument{Theme: s.backend.Snapshot().Theme.String()})
}

func (s *Server) putThemeHandler(w http.ResponseWriter, r *http.Request) {
	var doc ThemeDocument
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&doc); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	theme := prefs.Theme(strings.ToLower(strings.TrimSpace(doc.Theme)))
	if theme != prefs.Light && theme != prefs.Dark {
		s.writeError(w, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	state, err := s.backend.SetTheme(theme)
	if err != nil {
		s.logger.Error("failed to set theme", logger.Err(err))
		s.writeError(w, http.StatusInternalServerError, "failed to persist theme")
		return
	}
	s.writeJSON(w, http.StatusOK, ThemeDocument{Theme: state.Theme.String()})
}

func (s *Server) weatherResponse(report *service.Report, unit format.Unit) WeatherResponse {
	location := report.Location
	tplCtx := s.presenter.BuildContext(session.State{
		City:       report.Label,
		Location:   &location,
		Conditions: report.Conditions,
		Forecast:   report.Forecast,
		Unit:       unit,
	})

	response := WeatherResponse{
		Location:  tplCtx.Location,
		Latitude:  tplCtx.Latitude,
		Longitude: tplCtx.Longitude,
		Unit:      string(unit),
		Updated:   tplCtx.UpdateTime,
		IsDay:     tplCtx.IsDay,
		MoonPhase: tplCtx.MoonPhase,
		Current:   tplCtx.Current,
		Forecast:  tplCtx.Forecast,
	}
	if !tplCtx.SunriseTime.IsZero() {
		response.Sunrise = &tplCtx.SunriseTime
	}
	if !tplCtx.SunsetTime.IsZero() {
		response.Sunset = &tplCtx.SunsetTime
	}
	if response.Forecast == nil {
		response.Forecast = []presenter.DayView{}
	}
	return response
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", logger.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func locationFromQuery(lat, lon, name string) (weather.Location, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return weather.Location{}, errors.New("invalid latitude")
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return weather.Location{}, errors.New("invalid longitude")
	}
	location := weather.Location{Name: strings.TrimSpace(name), Lat: latitude, Lon: longitude}
	if !location.Coordinate().Valid() {
		return weather.Location{}, errors.New("coordinates out of range")
	}
	return location, nil
}
