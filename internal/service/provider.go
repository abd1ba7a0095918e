// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/wneessen/weather-dash/internal/geocode"
	"github.com/wneessen/weather-dash/internal/geocode/provider/opencage"
	nominatim "github.com/wneessen/weather-dash/internal/geocode/provider/osm-nominatim"
	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/weather"
	openmeteo "github.com/wneessen/weather-dash/internal/weather/provider/open-meteo"
	"github.com/wneessen/weather-dash/internal/weather/provider/openweathermap"
)

func (s *Service) selectWeatherProvider(client *http.Client, lang language.Tag) (provider weather.Provider, err error) {
	switch strings.ToLower(s.config.Weather.Provider) {
	case "openweathermap":
		provider, err = openweathermap.New(client, lang, s.config.Weather.APIKey)
		if err != nil {
			return provider, fmt.Errorf("failed to create OpenWeatherMap weather provider: %w", err)
		}
	case "open-meteo":
		provider, err = openmeteo.New(client, s.logger, lang)
		if err != nil {
			return provider, fmt.Errorf("failed to create Open-Meteo weather provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported weather provider: %s", s.config.Weather.Provider)
	}
	return provider, nil
}

func (s *Service) selectGeocodeProvider(provider weather.Provider, client *http.Client, lang language.Tag,
) (geocode.Geocoder, error) {
	var coder geocode.Geocoder
	var err error

	switch strings.ToLower(s.config.GeoCoder.Provider) {
	case "weather":
		var ok bool
		coder, ok = provider.(geocode.Geocoder)
		if !ok {
			return nil, fmt.Errorf("weather provider %s does not support location search", provider.Name())
		}
	case "osm-nominatim":
		coder = nominatim.New(client, lang)
	case "opencage":
		coder, err = opencage.New(client, lang, s.config.GeoCoder.APIKey)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported geocoder type: %s", s.config.GeoCoder.Provider)
	}

	return geocode.NewCachedGeocoder(coder, s.config.GeoCoder.CacheHitTTL, s.config.GeoCoder.CacheMissTTL), nil
}
