// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package i18n provides the localizer for the dashboard labels.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/Xuanwo/go-locale"
	"github.com/vorlif/spreak"
	"golang.org/x/text/language"
)

//go:embed locale/*
var locales embed.FS

// Supported lists the languages that translations are shipped for. The first entry is the
// source language.
var Supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(Supported)

// New returns a localizer for loc. An empty loc is detected from the environment.
func New(loc string) (*spreak.Localizer, error) {
	localeFS, err := fs.Sub(locales, "locale")
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}

	tag := Tag(loc)
	bundle, err := spreak.NewBundle(
		spreak.WithSourceLanguage(language.English),
		spreak.WithFallbackLanguage(language.English),
		spreak.WithDomainFs("", localeFS),
		spreak.WithLanguage(language.German),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create i18n bundle: %w", err)
	}
	return spreak.NewLocalizer(bundle, tag), nil
}

// Tag resolves loc to the closest supported language. Unknown languages resolve to English.
func Tag(loc string) language.Tag {
	tag, err := language.Parse(loc)
	if loc == "" || err != nil {
		if tag, err = locale.Detect(); err != nil {
			return language.English
		}
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return Supported[idx]
}
