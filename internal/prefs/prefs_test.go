// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Theme
	}{
		{"dark", "dark", Dark},
		{"dark uppercase with whitespace", " DARK ", Dark},
		{"light", "light", Light},
		{"empty", "", Light},
		{"unknown", "solarized", Light},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseTheme(tc.value); got != tc.want {
				t.Errorf("expected theme %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	if Light.Toggle() != Dark {
		t.Error("expected light to toggle to dark")
	}
	if Dark.Toggle() != Light {
		t.Error("expected dark to toggle to light")
	}
	if Theme("").Toggle() != Dark {
		t.Error("expected unset theme to behave like light")
	}
}

func TestFile(t *testing.T) {
	t.Run("missing file yields light", func(t *testing.T) {
		file := New(filepath.Join(t.TempDir(), "prefs.toml"))
		theme, err := file.Load()
		if err != nil {
			t.Fatalf("failed to load preferences: %s", err)
		}
		if theme != Light {
			t.Errorf("expected light theme, got %q", theme)
		}
	})
	t.Run("save and load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "weather-dash", "prefs.toml")
		file := New(path)
		if file.Path() != path {
			t.Errorf("expected path %q, got %q", path, file.Path())
		}
		for _, theme := range []Theme{Dark, Light, Dark} {
			if err := file.Save(theme); err != nil {
				t.Fatalf("failed to save preferences: %s", err)
			}
			got, err := file.Load()
			if err != nil {
				t.Fatalf("failed to load preferences: %s", err)
			}
			if got != theme {
				t.Errorf("expected theme %q, got %q", theme, got)
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read preferences file: %s", err)
		}
		if !strings.HasPrefix(string(data), "theme = ") || !strings.Contains(string(data), "dark") {
			t.Errorf("unexpected file content: %q", string(data))
		}
		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("failed to read preferences directory: %s", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected no leftover temporary files, got %d entries", len(entries))
		}
	})
	t.Run("unknown value yields light", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.toml")
		if err := os.WriteFile(path, []byte(`theme = "sepia"`), 0o600); err != nil {
			t.Fatal(err)
		}
		theme, err := New(path).Load()
		if err != nil {
			t.Fatalf("failed to load preferences: %s", err)
		}
		if theme != Light {
			t.Errorf("expected light theme, got %q", theme)
		}
	})
	t.Run("broken file fails", func(t *testing.T) {
		theme, err := New("../../testdata/invalid.toml").Load()
		if err == nil {
			t.Fatal("expected loading to fail")
		}
		if theme != Light {
			t.Errorf("expected light theme on failure, got %q", theme)
		}
	})
}
