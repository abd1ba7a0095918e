// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"time"
)

// MaxForecastDays is the number of days kept by DailyForecast.
const MaxForecastDays = 5

// DailyForecast reduces a chronologically sorted series of forecast samples to one sample
// per calendar date. The first sample seen for a date wins, so each day is represented by its
// earliest sample, not by its extremes. The result holds at most MaxForecastDays entries in
// ascending date order. Samples with a missing or malformed date are skipped. The input is
// not re-sorted.
func DailyForecast(entries []ForecastEntry) []ForecastEntry {
	days := make([]ForecastEntry, 0, MaxForecastDays)
	seen := make(map[string]struct{}, MaxForecastDays)

	for _, entry := range entries {
		date, ok := entryDate(entry)
		if !ok {
			continue
		}
		if _, ok = seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		days = append(days, entry)
		if len(days) == MaxForecastDays {
			break
		}
	}

	return days
}

// entryDate returns the calendar date of the sample timestamp.
func entryDate(entry ForecastEntry) (string, bool) {
	t, ok := entry.Time()
	if !ok {
		return "", false
	}
	return t.Format(time.DateOnly), true
}
