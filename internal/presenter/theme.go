// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/wneessen/weather-dash/internal/prefs"

// Palette holds the ANSI escape sequences used by the templates for a theme.
type Palette struct {
	Name   string
	Accent string
	Muted  string
	Error  string
	Reset  string
}

var palettes = map[prefs.Theme]Palette{
	prefs.Light: {
		Name:   prefs.Light.String(),
		Accent: "\033[1;35m",
		Muted:  "\033[90m",
		Error:  "\033[31m",
		Reset:  "\033[0m",
	},
	prefs.Dark: {
		Name:   prefs.Dark.String(),
		Accent: "\033[1;96m",
		Muted:  "\033[37m",
		Error:  "\033[91m",
		Reset:  "\033[0m",
	},
}

// PaletteFor returns the palette of the theme. Without color only the name is set.
func PaletteFor(theme prefs.Theme, color bool) Palette {
	palette := palettes[prefs.ParseTheme(theme.String())]
	if !color {
		return Palette{Name: palette.Name}
	}
	return palette
}
