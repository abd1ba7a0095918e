// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package session

import "github.com/wneessen/weather-dash/internal/weather"

// Event is a discrete change to the session state.
type Event interface {
	event()
}

// InputChanged is sent whenever the search input text changes. Suggestions are dropped when
// the trimmed text is shorter than MinChars, or DefaultMinChars if MinChars is not positive.
type InputChanged struct {
	Text     string
	MinChars int
}

// SuggestionsLoaded carries the candidates for Query. They are applied only if Query still
// matches the input.
type SuggestionsLoaded struct {
	Query     string
	Locations []weather.Location
}

// SearchRejected is sent if a submitted search failed validation.
type SearchRejected struct {
	Message string
}

// SearchSubmitted starts a fetch for a free-text city.
type SearchSubmitted struct {
	City string
}

// LocationSelected starts a fetch for a resolved location.
type LocationSelected struct {
	Location weather.Location
}

// FetchSucceeded delivers the result of the fetch issued under Seq.
type FetchSucceeded struct {
	Seq        uint64
	Label      string
	Location   weather.Location
	Conditions *weather.Conditions
	Forecast   []weather.ForecastEntry
}

// FetchFailed reports the failure of the fetch issued under Seq.
type FetchFailed struct {
	Seq     uint64
	Message string
}

// UnitToggled switches between Celsius and Fahrenheit.
type UnitToggled struct{}

// ThemeToggled switches between the light and dark theme.
type ThemeToggled struct{}

// Reset returns to the search input ("New Search").
type Reset struct{}

func (InputChanged) event()      {}
func (SuggestionsLoaded) event() {}
func (SearchRejected) event()    {}
func (SearchSubmitted) event()   {}
func (LocationSelected) event()  {}
func (FetchSucceeded) event()    {}
func (FetchFailed) event()       {}
func (UnitToggled) event()       {}
func (ThemeToggled) event()      {}
func (Reset) event()             {}
