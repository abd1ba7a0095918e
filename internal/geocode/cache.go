// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wneessen/weather-dash/internal/weather"
)

// CachedGeocoder wraps a Geocoder and caches its results. Empty results are cached with
// a separate, usually shorter, TTL.
type CachedGeocoder struct {
	coder   Geocoder
	ttlHit  time.Duration
	ttlMiss time.Duration
	cache   *cache.Cache
}

func NewCachedGeocoder(coder Geocoder, ttlHit, ttlMiss time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		coder:   coder,
		ttlHit:  ttlHit,
		ttlMiss: ttlMiss,
		cache:   cache.New(ttlHit, max(ttlHit, ttlMiss)*2),
	}
}

func (c *CachedGeocoder) Name() string {
	return "geocoder cache using " + c.coder.Name()
}

// Search returns the cached locations for the query if present, otherwise it queries the
// wrapped geocoder. Failed lookups are not cached.
func (c *CachedGeocoder) Search(ctx context.Context, query string, limit int) ([]weather.Location, error) {
	key := newKey(c.coder.Name(), query, limit)
	if cached, found := c.cache.Get(key); found {
		if locations, ok := cached.([]weather.Location); ok {
			return locations, nil
		}
	}

	locations, err := c.coder.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	ttl := c.ttlHit
	if len(locations) == 0 {
		ttl = c.ttlMiss
	}
	c.cache.Set(key, locations, ttl)

	return locations, nil
}

// Cached reports whether a result for the query is currently cached.
func (c *CachedGeocoder) Cached(query string, limit int) bool {
	_, found := c.cache.Get(newKey(c.coder.Name(), query, limit))
	return found
}

// newKey normalizes the query so that casing and surrounding or repeated whitespace do not
// produce distinct cache entries.
func newKey(provider, query string, limit int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("%s|%d|%s", provider, limit, normalized)
}
