// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package locate resolves the approximate location of the caller by its public IP address.
package locate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	APIEndpoint   = "https://reallyfreegeoip.org/json/"
	LookupTimeout = time.Second * 5
)

// ErrNoCity is returned if the lookup did not resolve to a city.
var ErrNoCity = errors.New("IP geolocation did not resolve to a city")

type GeoIP struct {
	endpoint string
	http     *http.Client
}

type APIResult struct {
	IP          string  `json:"ip"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country_name"`
	RegionCode  string  `json:"region_code,omitempty"`
	Region      string  `json:"region_name,omitempty"`
	City        string  `json:"city,omitempty"`
	ZipCode     string  `json:"zip_code,omitempty"`
	TimeZone    string  `json:"time_zone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func New(http *http.Client) *GeoIP {
	return &GeoIP{
		endpoint: APIEndpoint,
		http:     http,
	}
}

func (p *GeoIP) Name() string {
	return "geoip"
}

// Locate returns the location the caller's public IP address maps to.
func (p *GeoIP) Locate(ctx context.Context) (weather.Location, error) {
	result := new(APIResult)
	code, err := p.http.GetWithTimeout(ctx, p.endpoint, result, nil, nil, LookupTimeout)
	if err != nil {
		return weather.Location{}, fmt.Errorf("failed to get geolocation data from API: %w", err)
	}
	if code != 200 {
		return weather.Location{}, fmt.Errorf("geolocation API returned non-positive response code: %d", code)
	}
	if result.City == "" {
		return weather.Location{}, ErrNoCity
	}

	location := weather.Location{
		Name:    result.City,
		Country: result.CountryCode,
		State:   result.Region,
		Lat:     result.Latitude,
		Lon:     result.Longitude,
	}
	if !location.Coordinate().Valid() {
		return weather.Location{}, fmt.Errorf("geolocation API returned invalid coordinates: %f, %f",
			result.Latitude, result.Longitude)
	}
	return location, nil
}
