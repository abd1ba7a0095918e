// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wneessen/weather-dash/internal/weather"
)

const (
	testHitTTL  = 200 * time.Millisecond
	testMissTTL = 50 * time.Millisecond
)

var testLocation = weather.Location{Name: "Berlin", Country: "DE", State: "Land Berlin", Lat: 52.5129, Lon: 13.3910}

type mockCoder struct {
	calls int
}

func (c *mockCoder) Name() string { return "mock" }

func (c *mockCoder) Search(_ context.Context, query string, limit int) ([]weather.Location, error) {
	c.calls++
	switch query {
	case "invalid":
		return nil, errors.New("lookup intentionally failed")
	case "unknown":
		return []weather.Location{}, nil
	}
	locations := []weather.Location{testLocation, testLocation, testLocation, testLocation, testLocation, testLocation}
	return locations[:min(limit, len(locations))], nil
}

func TestNewCachedGeocoder(t *testing.T) {
	t.Run("a new geocoder should be returned", func(t *testing.T) {
		coder := NewCachedGeocoder(&mockCoder{}, testHitTTL, testMissTTL)
		if coder == nil {
			t.Fatal("expected a non-nil geocoder")
		}
		if coder.Name() != "geocoder cache using mock" {
			t.Errorf("expected geocoder name to be 'geocoder cache using mock', got %q", coder.Name())
		}
	})
}

func TestCachedGeocoder_Search(t *testing.T) {
	t.Run("locations should be returned", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		locations, err := coder.Search(t.Context(), "Berlin", 5)
		if err != nil {
			t.Fatal(err)
		}
		if len(locations) != 5 {
			t.Fatalf("expected 5 locations, got %d", len(locations))
		}
		if locations[0].DisplayName() != testLocation.DisplayName() {
			t.Errorf("expected location to be %q, got %q", testLocation.DisplayName(), locations[0].DisplayName())
		}
		if !coder.Cached("Berlin", 5) {
			t.Error("expected result to be cached")
		}
	})
	t.Run("fetching results twice should hit the cache", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		for range 2 {
			if _, err := coder.Search(t.Context(), "Berlin", 5); err != nil {
				t.Fatal(err)
			}
		}
		if mock.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", mock.calls)
		}
	})
	t.Run("queries differing in case and whitespace share a cache entry", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		for _, query := range []string{"New York", "  new   york ", "NEW YORK"} {
			if _, err := coder.Search(t.Context(), query, 5); err != nil {
				t.Fatal(err)
			}
		}
		if mock.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", mock.calls)
		}
	})
	t.Run("different limits do not share a cache entry", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		if _, err := coder.Search(t.Context(), "Berlin", 1); err != nil {
			t.Fatal(err)
		}
		locations, err := coder.Search(t.Context(), "Berlin", 5)
		if err != nil {
			t.Fatal(err)
		}
		if len(locations) != 5 {
			t.Errorf("expected 5 locations, got %d", len(locations))
		}
		if mock.calls != 2 {
			t.Errorf("expected 2 upstream calls, got %d", mock.calls)
		}
	})
	t.Run("failed lookups are not cached", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		for range 2 {
			if _, err := coder.Search(t.Context(), "invalid", 5); err == nil {
				t.Fatal("expected an error")
			}
		}
		if mock.calls != 2 {
			t.Errorf("expected 2 upstream calls, got %d", mock.calls)
		}
	})
	t.Run("empty results expire with the miss TTL", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		if _, err := coder.Search(t.Context(), "unknown", 5); err != nil {
			t.Fatal(err)
		}
		if !coder.Cached("unknown", 5) {
			t.Fatal("expected empty result to be cached")
		}
		time.Sleep(testMissTTL * 2)
		if coder.Cached("unknown", 5) {
			t.Error("expected empty result to be expired")
		}
		if _, err := coder.Search(t.Context(), "unknown", 5); err != nil {
			t.Fatal(err)
		}
		if mock.calls != 2 {
			t.Errorf("expected 2 upstream calls, got %d", mock.calls)
		}
	})
	t.Run("cache should hit on non-expired TTL", func(t *testing.T) {
		mock := &mockCoder{}
		coder := NewCachedGeocoder(mock, testHitTTL, testMissTTL)
		if _, err := coder.Search(t.Context(), "Berlin", 5); err != nil {
			t.Fatal(err)
		}
		time.Sleep(testMissTTL * 2)
		if _, err := coder.Search(t.Context(), "Berlin", 5); err != nil {
			t.Fatal(err)
		}
		if mock.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", mock.calls)
		}
	})
}
