// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/weather-dash/internal/logger"
	"github.com/wneessen/weather-dash/internal/prefs"
	"github.com/wneessen/weather-dash/internal/session"
	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	msgCityNotFound   = "City not found"
	msgForecastFailed = "Forecast fetch failed"
	msgLocateFailed   = "Unable to determine your location"
)

// ErrEmptyCity is returned if a search is submitted without a city.
var ErrEmptyCity = errors.New("Please enter a valid city")

// Report is the result of a successful weather fetch.
type Report struct {
	Label      string
	Location   weather.Location
	Conditions *weather.Conditions
	Forecast   []weather.ForecastEntry
}

// FetchError is returned if fetching the weather failed. Its message is suitable for display.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Lookup returns up to the configured number of locations matching text. Input shorter than the
// configured minimum and failed lookups yield an empty list.
func (s *Service) Lookup(ctx context.Context, text string) []weather.Location {
	query := strings.TrimSpace(text)
	if len([]rune(query)) < s.config.Suggest.MinChars {
		return nil
	}

	ctxFetch, cancelFetch := context.WithTimeout(ctx, s.config.Intervals.FetchTimeout)
	defer cancelFetch()
	locations, err := s.geocoder.Search(ctxFetch, query, s.config.Suggest.Limit)
	if err != nil {
		s.logger.Debug("location lookup failed", logger.Err(err), slog.String("query", query))
		return nil
	}
	if len(locations) > s.config.Suggest.Limit {
		locations = locations[:s.config.Suggest.Limit]
	}
	return locations
}

// FetchByName fetches the current conditions for the city name, followed by the forecast for
// the coordinates the provider resolved the city to.
func (s *Service) FetchByName(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	ctxFetch, cancelFetch := context.WithTimeout(ctx, s.config.Intervals.FetchTimeout)
	defer cancelFetch()
	cond, err := s.provider.CurrentByName(ctxFetch, city)
	if err != nil {
		return nil, fetchError(err, msgCityNotFound)
	}
	location := weather.Location{Name: cond.Name, Lat: cond.Coordinates.Lat, Lon: cond.Coordinates.Lon}
	return s.completeReport(ctxFetch, cond.Name, location, cond)
}

// FetchByLocation fetches the current conditions and the forecast for a resolved location.
func (s *Service) FetchByLocation(ctx context.Context, location weather.Location) (*Report, error) {
	ctxFetch, cancelFetch := context.WithTimeout(ctx, s.config.Intervals.FetchTimeout)
	defer cancelFetch()
	cond, err := s.provider.CurrentByCoords(ctxFetch, location.Coordinate())
	if err != nil {
		return nil, fetchError(err, msgCityNotFound)
	}
	if cond.Name == "" {
		cond.Name = location.Name
	}
	return s.completeReport(ctxFetch, location.DisplayName(), location, cond)
}

func (s *Service) completeReport(ctx context.Context, label string, location weather.Location,
	cond *weather.Conditions,
) (*Report, error) {
	entries, err := s.provider.Forecast(ctx, cond.Coordinates)
	if err != nil {
		return nil, fetchError(err, msgForecastFailed)
	}
	return &Report{
		Label:      label,
		Location:   location,
		Conditions: cond,
		Forecast:   weather.DailyForecast(entries),
	}, nil
}

// Suggest looks up candidates for the input text and stores them in the session. Nothing is
// looked up while a location is confirmed.
func (s *Service) Suggest(ctx context.Context, text string) []weather.Location {
	if s.store.Snapshot().Confirmed() {
		return nil
	}
	locations := s.Lookup(ctx, text)
	s.store.Dispatch(session.SuggestionsLoaded{Query: text, Locations: locations})
	return locations
}

// Input records a change of the search input.
func (s *Service) Input(text string) session.State {
	return s.store.Dispatch(session.InputChanged{Text: text, MinChars: s.config.Suggest.MinChars})
}

// Search submits a free-text city search. An empty city fails with ErrEmptyCity without any
// request being made.
func (s *Service) Search(ctx context.Context, city string) error {
	if strings.TrimSpace(city) == "" {
		s.store.Dispatch(session.SearchRejected{Message: ErrEmptyCity.Error()})
		return ErrEmptyCity
	}
	state := s.store.Dispatch(session.SearchSubmitted{City: city})
	report, err := s.FetchByName(ctx, city)
	return s.commit(state.Seq, "", report, err)
}

// Select fetches the weather for a candidate location.
func (s *Service) Select(ctx context.Context, location weather.Location) error {
	state := s.store.Dispatch(session.LocationSelected{Location: location})
	report, err := s.FetchByLocation(ctx, location)
	return s.commit(state.Seq, "", report, err)
}

// SelectSuggestion selects the suggestion at the 1-based index.
func (s *Service) SelectSuggestion(ctx context.Context, index int) error {
	suggestions := s.store.Snapshot().Suggestions
	if index < 1 || index > len(suggestions) {
		return fmt.Errorf("no suggestion with number %d", index)
	}
	return s.Select(ctx, suggestions[index-1])
}

// Locate resolves the approximate location of the user and fetches its weather.
func (s *Service) Locate(ctx context.Context) error {
	location, err := s.locator.Locate(ctx)
	if err != nil {
		s.logger.Error("failed to determine location", logger.Err(err))
		s.store.Dispatch(session.SearchRejected{Message: msgLocateFailed})
		return fmt.Errorf("failed to determine location: %w", err)
	}
	return s.Select(ctx, location)
}

// Refresh fetches the weather for the confirmed location again. The displayed weather is kept
// if the refresh fails.
func (s *Service) Refresh(ctx context.Context) error {
	state := s.store.Snapshot()
	if !state.Confirmed() || state.Location == nil {
		return nil
	}

	report, err := s.FetchByLocation(ctx, *state.Location)
	if err != nil {
		return err
	}
	s.store.Dispatch(session.FetchSucceeded{
		Seq:        state.Seq,
		Label:      state.City,
		Location:   report.Location,
		Conditions: report.Conditions,
		Forecast:   report.Forecast,
	})
	return nil
}

// NewSearch returns to the search input.
func (s *Service) NewSearch() session.State {
	return s.store.Dispatch(session.Reset{})
}

// ToggleUnit switches the display unit.
func (s *Service) ToggleUnit() session.State {
	return s.store.Dispatch(session.UnitToggled{})
}

// ToggleTheme switches the theme and persists it.
func (s *Service) ToggleTheme() (session.State, error) {
	state := s.store.Dispatch(session.ThemeToggled{})
	if err := s.prefs.Save(state.Theme); err != nil {
		return state, fmt.Errorf("failed to persist theme: %w", err)
	}
	return state, nil
}

// SetTheme sets and persists the theme.
func (s *Service) SetTheme(theme prefs.Theme) (session.State, error) {
	if s.store.Snapshot().Theme == theme {
		return s.store.Snapshot(), nil
	}
	return s.ToggleTheme()
}

func (s *Service) commit(seq uint64, label string, report *Report, err error) error {
	if err != nil {
		s.logger.Error("failed to fetch weather data", logger.Err(err))
		s.store.Dispatch(session.FetchFailed{Seq: seq, Message: err.Error()})
		return err
	}
	if label == "" {
		label = report.Label
	}
	s.store.Dispatch(session.FetchSucceeded{
		Seq:        seq,
		Label:      label,
		Location:   report.Location,
		Conditions: report.Conditions,
		Forecast:   report.Forecast,
	})
	return nil
}

// fetchError maps a provider failure to the message shown to the user: the API's own message
// if it sent one, otherwise the fallback.
func fetchError(err error, fallback string) error {
	message := fallback
	var apiErr *weather.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return &FetchError{Message: message, Err: err}
}
