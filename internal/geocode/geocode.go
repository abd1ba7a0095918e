// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"

	"github.com/wneessen/weather-dash/internal/weather"
)

// Geocoder resolves free text into candidate locations.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]weather.Location, error)
}
