// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package format implements the value formatters used to present weather data. All
// formatters are total: a NaN or infinite input yields an empty string.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Unit selects the temperature unit used for display.
type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
)

// ParseUnit maps a unit selector to a Unit. Anything but F/f/fahrenheit/imperial is Celsius.
func ParseUnit(val string) Unit {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "f", "fahrenheit", "imperial":
		return Fahrenheit
	default:
		return Celsius
	}
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Symbol returns the degree symbol for the unit, e.g. "°C".
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Humidity categories
const (
	HumidityLow      = "Low"
	HumidityModerate = "Moderate"
	HumidityHigh     = "High"
)

// Temperature converts a Celsius value to the given unit and formats it with one decimal.
func Temperature(celsius float64, unit Unit) string {
	if !valid(celsius) {
		return ""
	}
	if unit == Fahrenheit {
		return oneDecimal(celsius*9/5 + 32)
	}
	return oneDecimal(celsius)
}

// WindDirection buckets degrees into one of the 8 compass sectors. Each sector is 45° wide
// with ranges of the form (lower, upper]. North wraps around as (337.5, 360) ∪ [0, 22.5].
func WindDirection(deg float64) string {
	if !valid(deg) {
		return ""
	}
	switch {
	case deg > 337.5 || deg <= 22.5:
		return "N"
	case deg <= 67.5:
		return "NE"
	case deg <= 112.5:
		return "E"
	case deg <= 157.5:
		return "SE"
	case deg <= 202.5:
		return "S"
	case deg <= 247.5:
		return "SW"
	case deg <= 292.5:
		return "W"
	default:
		return "NW"
	}
}

// Humidity categorizes a relative humidity percentage.
func Humidity(pct float64) string {
	if !valid(pct) {
		return ""
	}
	switch {
	case pct < 30:
		return HumidityLow
	case pct < 60:
		return HumidityModerate
	default:
		return HumidityHigh
	}
}

// Visibility formats a distance in meters as kilometers with one decimal.
func Visibility(meters float64) string {
	if !valid(meters) {
		return ""
	}
	return oneDecimal(meters/1000) + " km"
}

// WindSpeed formats a speed in m/s with one decimal.
func WindSpeed(ms float64) string {
	if !valid(ms) {
		return ""
	}
	return oneDecimal(ms) + " m/s"
}

// Pressure formats an air pressure in hPa without decimals.
func Pressure(hpa float64) string {
	if !valid(hpa) {
		return ""
	}
	return fmt.Sprintf("%.0f hPa", hpa)
}

// Percent formats a percentage without decimals.
func Percent(pct float64) string {
	if !valid(pct) {
		return ""
	}
	return fmt.Sprintf("%.0f%%", pct)
}

// oneDecimal rounds half away from zero before formatting, so 98.6 stays 98.6 and -0.04
// does not render as "-0.0".
func oneDecimal(val float64) string {
	rounded := math.Round(val*10) / 10
	if rounded == 0 {
		rounded = 0
	}
	return fmt.Sprintf("%.1f", rounded)
}

func valid(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
