// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package session

import (
	"strings"

	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	// MaxSuggestions caps the candidate list.
	MaxSuggestions = 5
	// DefaultMinChars is the minimum input length for suggestions to be kept.
	DefaultMinChars = 3
)

// Reduce returns the state that results from applying ev to s. It has no side effects.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case InputChanged:
		s.City = ev.Text
		minChars := ev.MinChars
		if minChars <= 0 {
			minChars = DefaultMinChars
		}
		if s.Confirmed() || len([]rune(strings.TrimSpace(ev.Text))) < minChars {
			s.Suggestions = nil
		}
	case SuggestionsLoaded:
		if s.Confirmed() || strings.TrimSpace(ev.Query) != strings.TrimSpace(s.City) {
			return s
		}
		s.Suggestions = capLocations(ev.Locations)
	case SearchRejected:
		s.Error = ev.Message
	case SearchSubmitted:
		s = startFetch(s)
		s.City = strings.TrimSpace(ev.City)
	case LocationSelected:
		s = startFetch(s)
		loc := ev.Location
		s.City = loc.DisplayName()
		s.Location = &loc
	case FetchSucceeded:
		if ev.Seq != s.Seq || ev.Conditions == nil {
			return s
		}
		loc := ev.Location
		s.Location = &loc
		s.Conditions = ev.Conditions
		s.Forecast = ev.Forecast
		s.City = ev.Label
		if s.City == "" {
			s.City = ev.Conditions.Name
		}
		s.Suggestions = nil
		s.Error = ""
		s.Loading = false
	case FetchFailed:
		if ev.Seq != s.Seq {
			return s
		}
		s = clearWeather(s)
		s.Error = ev.Message
		s.Loading = false
	case UnitToggled:
		s.Unit = s.Unit.Toggle()
	case ThemeToggled:
		s.Theme = s.Theme.Toggle()
	case Reset:
		s = clearWeather(s)
		s.Seq++
		s.City = ""
		s.Suggestions = nil
		s.Error = ""
		s.Loading = false
	}
	return s
}

// startFetch begins a new fetch attempt. Displayed weather is cleared and any response of a
// previous attempt becomes stale.
func startFetch(s State) State {
	s = clearWeather(s)
	s.Seq++
	s.Error = ""
	s.Suggestions = nil
	s.Loading = true
	return s
}

func clearWeather(s State) State {
	s.Location = nil
	s.Conditions = nil
	s.Forecast = nil
	return s
}

func capLocations(locations []weather.Location) []weather.Location {
	if len(locations) == 0 {
		return nil
	}
	n := min(len(locations), MaxSuggestions)
	capped := make([]weather.Location, n)
	copy(capped, locations[:n])
	return capped
}
