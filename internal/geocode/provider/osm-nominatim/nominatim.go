// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"context"
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
	APISearchEndpoint = "https://nominatim.openstreetmap.org/search"
	APITimeout        = time.Second * 10
	name              = "osm-nominatim"
)

type Nominatim struct {
	http *http.Client
	lang language.Tag
}

type SearchResult struct {
	APILat      string  `json:"lat"`
	APILon      string  `json:"lon"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

type Address struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	State       string `json:"state"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

func New(client *http.Client, lang language.Tag) *Nominatim {
	return &Nominatim{
		lang: lang,
		http: client,
	}
}

func (n *Nominatim) Name() string {
	return name
}

// Search performs a forward geocoding lookup restricted to settlements.
func (n *Nominatim) Search(ctx context.Context, address string, limit int) ([]weather.Location, error) {
	var results []SearchResult
	var err error

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", address)
	query.Set("addressdetails", "1")
	query.Set("featureType", "settlement")
	query.Set("limit", strconv.Itoa(limit))
	if n.lang != language.Und {
		query.Set("accept-language", n.lang.String())
	}

	code, err := n.http.GetWithTimeout(ctx, APISearchEndpoint, &results, query, nil, APITimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch address details from Nominatim API: %w", err)
	}
	if code != 200 {
		return nil, fmt.Errorf("Nominatim API returned non-positive response code: %d", code)
	}

	locations := make([]weather.Location, 0, len(results))
	for _, result := range results {
		location := weather.Location{
			Name:    result.Address.City,
			Country: strings.ToUpper(result.Address.CountryCode),
			State:   result.Address.State,
		}
		if location.Name == "" && result.Address.Town != "" {
			location.Name = result.Address.Town
		}
		if location.Name == "" && result.Address.Village != "" {
			location.Name = result.Address.Village
		}
		if location.Name == "" {
			location.Name = result.Name
		}
		if location.Country == "" {
			location.Country = result.Address.Country
		}
		location.Lat, err = strconv.ParseFloat(result.APILat, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse latitude from Nominatim API response: %w", err)
		}
		location.Lon, err = strconv.ParseFloat(result.APILon, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse longitude from Nominatim API response: %w", err)
		}
		locations = append(locations, location)
	}

	return locations, nil
}
