// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNew(t *testing.T) {
	t.Run("new i18n provider with empty locale string succeeds", func(t *testing.T) {
		provider, err := New("")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if provider == nil {
			t.Fatal("expected i18n provider to be non-nil")
		}
	})
	t.Run("german translations are loaded", func(t *testing.T) {
		provider, err := New("de-DE")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		base, _ := provider.Language().Base()
		if base.String() != "de" {
			t.Errorf("expected language to be de, got %s", provider.Language())
		}
		if got := provider.Get("Humidity"); got != "Luftfeuchte" {
			t.Errorf("expected translation %q, got %q", "Luftfeuchte", got)
		}
	})
	t.Run("unknown languages fall back to the source language", func(t *testing.T) {
		provider, err := New("fr")
		if err != nil {
			t.Fatalf("failed to create i18n provider: %s", err)
		}
		if got := provider.Get("Humidity"); got != "Humidity" {
			t.Errorf("expected untranslated message, got %q", got)
		}
		if provider.Language() == language.German {
			t.Error("did not expect german as language")
		}
	})
}

func TestTag(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"de", language.German},
		{"de-AT", language.German},
		{"en-GB", language.English},
		{"fr-FR", language.English},
		{"not a locale!", language.English},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			t.Setenv("LANG", "en_US.UTF-8")
			t.Setenv("LC_ALL", "")
			t.Setenv("LC_MESSAGES", "")
			if got := Tag(tc.in); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
