// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package openmeteo

import "fmt"

// wmoCondition describes a WMO weather code in the vocabulary of the OpenWeatherMap API, so
// both providers hand the same condition categories and icon codes to the presentation layer.
type wmoCondition struct {
	Category    string
	Description string
	Icon        string
}

// wmoConditions maps WMO weather code integers to condition category, description and icon
var wmoConditions = map[int]wmoCondition{
	0:  {"Clear", "clear sky", "01"},
	1:  {"Clouds", "mainly clear", "02"},
	2:  {"Clouds", "partly cloudy", "03"},
	3:  {"Clouds", "overcast", "04"},
	45: {"Fog", "fog", "50"},
	48: {"Fog", "depositing rime fog", "50"},
	51: {"Drizzle", "light drizzle", "09"},
	53: {"Drizzle", "moderate drizzle", "09"},
	55: {"Drizzle", "dense drizzle", "09"},
	56: {"Drizzle", "light freezing drizzle", "09"},
	57: {"Drizzle", "dense freezing drizzle", "09"},
	61: {"Rain", "slight rain", "10"},
	63: {"Rain", "moderate rain", "10"},
	65: {"Rain", "heavy rain", "10"},
	66: {"Rain", "light freezing rain", "13"},
	67: {"Rain", "heavy freezing rain", "13"},
	71: {"Snow", "slight snow fall", "13"},
	73: {"Snow", "moderate snow fall", "13"},
	75: {"Snow", "heavy snow fall", "13"},
	77: {"Snow", "snow grains", "13"},
	80: {"Rain", "slight rain showers", "09"},
	81: {"Rain", "moderate rain showers", "09"},
	82: {"Rain", "violent rain showers", "09"},
	85: {"Snow", "slight snow showers", "13"},
	86: {"Snow", "heavy snow showers", "13"},
	95: {"Thunderstorm", "thunderstorm", "11"},
	96: {"Thunderstorm", "thunderstorm with slight hail", "11"},
	99: {"Thunderstorm", "thunderstorm with heavy hail", "11"},
}

// condition resolves a WMO code. Unknown codes yield an empty condition.
func condition(code int, isDay bool) (category, description, icon string) {
	cond, ok := wmoConditions[code]
	if !ok {
		return "", "", ""
	}
	suffix := "n"
	if isDay {
		suffix = "d"
	}
	return cond.Category, cond.Description, fmt.Sprintf("%s%s", cond.Icon, suffix)
}
