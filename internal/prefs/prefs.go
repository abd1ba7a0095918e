// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package prefs persists the user preferences that survive a session. Currently that is the
// display theme only.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the display theme of the dashboard.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme returns the theme for the given value. Anything but "dark" yields Light.
func ParseTheme(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(Dark)) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	if t == Dark {
		return string(Dark)
	}
	return string(Light)
}

type document struct {
	Theme string `toml:"theme"`
}

// File is a preferences file on disk.
type File struct {
	path string
}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Load reads the theme from the preferences file. A missing file yields Light without error.
func (f *File) Load() (Theme, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Light, nil
	}
	if err != nil {
		return Light, fmt.Errorf("failed to read preferences file: %w", err)
	}

	var doc document
	if err = toml.Unmarshal(data, &doc); err != nil {
		return Light, fmt.Errorf("failed to parse preferences file: %w", err)
	}
	return ParseTheme(doc.Theme), nil
}

// Save writes the theme to the preferences file, creating the parent directory if needed.
// The file is replaced atomically.
func (f *File) Save(theme Theme) error {
	data, err := toml.Marshal(document{Theme: theme.String()})
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temporary preferences file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close preferences file: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}
	return nil
}
