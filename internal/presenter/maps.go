// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/vorlif/spreak/localize"

// MoonPhaseIcon maps moon phase names to their emoji.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// ConditionIcons maps condition categories to an emoji for day (true) and night (false).
var ConditionIcons = map[string]map[bool]string{
	"Clear":        {true: "☀️", false: "🌙"},
	"Clouds":       {true: "☁️", false: "☁️"},
	"Rain":         {true: "🌦️", false: "🌧️"},
	"Drizzle":      {true: "🌦️", false: "🌧️"},
	"Thunderstorm": {true: "⛈️", false: "⛈️"},
	"Snow":         {true: "🌨️", false: "🌨️"},
	"Mist":         {true: "🌫️", false: "🌫️"},
	"Fog":          {true: "🌫️", false: "🌫️"},
	"Haze":         {true: "🌫️", false: "🌫️"},
	"Smoke":        {true: "🌫️", false: "🌫️"},
	"Dust":         {true: "🌫️", false: "🌫️"},
	"Sand":         {true: "🌫️", false: "🌫️"},
	"Ash":          {true: "🌋", false: "🌋"},
	"Squall":       {true: "💨", false: "💨"},
	"Tornado":      {true: "🌪️", false: "🌪️"},
}

// partlyCloudy covers the icon codes 02 and 03, which share the "Clouds" category with overcast.
var partlyCloudy = map[bool]string{true: "⛅", false: "☁️"}

var windDirIcons = map[string]string{
	"N":  "↑",
	"NE": "↗",
	"E":  "→",
	"SE": "↘",
	"S":  "↓",
	"SW": "↙",
	"W":  "←",
	"NW": "↖",
}

var i18nVars = map[string]localize.MsgID{
	"temp":            "Temperature",
	"feelslike":       "Feels like",
	"humidity":        "Humidity",
	"wind":            "Wind",
	"visibility":      "Visibility",
	"pressure":        "Pressure",
	"sunrise":         "Sunrise",
	"sunset":          "Sunset",
	"moonphase":       "Moonphase",
	"forecast":        "Forecast",
	"suggestions":     "Suggestions",
	"loading":         "Loading",
	"low":             "Low",
	"moderate":        "Moderate",
	"high":            "High",
	"clear":           "Clear",
	"clouds":          "Clouds",
	"rain":            "Rain",
	"drizzle":         "Drizzle",
	"thunderstorm":    "Thunderstorm",
	"snow":            "Snow",
	"fog":             "Fog",
	"mist":            "Mist",
	"new moon":        "New moon",
	"waxing crescent": "Waxing crescent",
	"first quarter":   "First quarter",
	"waxing gibbous":  "Waxing gibbous",
	"full moon":       "Full moon",
	"waning gibbous":  "Waning gibbous",
	"third quarter":   "Third quarter",
	"waning crescent": "Waning crescent",
}
