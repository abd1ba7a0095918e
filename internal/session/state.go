// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package session holds the state of a single dashboard session. State is never modified in
// place; every change is the result of Reduce applied to an Event.
package session

import (
	"github.com/wneessen/weather-dash/internal/format"
	"github.com/wneessen/weather-dash/internal/prefs"
	"github.com/wneessen/weather-dash/internal/weather"
)

// State is a snapshot of the session.
type State struct {
	// Seq identifies the latest fetch attempt. Fetch results issued under an older Seq are
	// discarded.
	Seq uint64

	// City is the text in the search input, or the label of the confirmed location.
	City        string
	Location    *weather.Location
	Conditions  *weather.Conditions
	Forecast    []weather.ForecastEntry
	Suggestions []weather.Location
	Error       string
	Loading     bool

	Unit  format.Unit
	Theme prefs.Theme
}

// New returns the initial state of a session.
func New(unit format.Unit, theme prefs.Theme) State {
	return State{Unit: unit, Theme: theme}
}

// Confirmed reports whether weather for a location is currently displayed. Suggestions are
// suppressed while it is.
func (s State) Confirmed() bool {
	return s.Conditions != nil
}
