// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package opencage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/wneessen/weather-dash/internal/http"
	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	APIEndpoint = "https://api.opencagedata.com/geocode/v1/json"
	APITimeout  = time.Second * 10
	name        = "opencage"
)

var ErrMissingAPIKey = errors.New("OpenCage geocoder requires an API key")

type OpenCage struct {
	apikey string
	http   *http.Client
	lang   language.Tag
}

type Response struct {
	Results      []Result `json:"results"`
	Status       Status   `json:"status"`
	TotalResults int      `json:"total_results"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Result struct {
	Components Components `json:"components"`
	Geometry   Geometry   `json:"geometry"`
}

type Components struct {
	NormalizedCity string `json:"_normalized_city"`
	Type           string `json:"_type"`
	City           string `json:"city"`
	Country        string `json:"country"`
	CountryCode    string `json:"country_code"`
	State          string `json:"state"`
	Town           string `json:"town"`
	Village        string `json:"village"`
}

type Geometry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

func New(client *http.Client, lang language.Tag, apikey string) (*OpenCage, error) {
	if apikey == "" {
		return nil, ErrMissingAPIKey
	}
	return &OpenCage{
		apikey: apikey,
		lang:   lang,
		http:   client,
	}, nil
}

func (o *OpenCage) Name() string {
	return name
}

// Search performs a forward geocoding lookup. Results that do not resolve to a settlement
// are skipped.
func (o *OpenCage) Search(ctx context.Context, address string, limit int) ([]weather.Location, error) {
	var response Response

	query := url.Values{}
	query.Set("key", o.apikey)
	query.Set("q", address)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("no_annotations", "1")
	query.Set("no_record", "1")
	if o.lang != language.Und {
		query.Set("language", o.lang.String())
	}

	code, err := o.http.GetWithTimeout(ctx, APIEndpoint, &response, query, nil, APITimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations from OpenCage API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("OpenCage API returned non-positive response code %d: %s", code,
			response.Status.Message)
	}

	locations := make([]weather.Location, 0, len(response.Results))
	for _, result := range response.Results {
		components := result.Components
		location := weather.Location{
			Name:    components.NormalizedCity,
			Country: strings.ToUpper(components.CountryCode),
			State:   components.State,
			Lat:     result.Geometry.Lat,
			Lon:     result.Geometry.Lon,
		}
		if components.Town != "" {
			location.Name = components.Town
		}
		if components.Village != "" {
			location.Name = components.Village
		}
		if location.Name == "" {
			location.Name = components.City
		}
		if location.Name == "" {
			continue
		}
		if location.Country == "" {
			location.Country = components.Country
		}
		locations = append(locations, location)
	}

	return locations, nil
}
