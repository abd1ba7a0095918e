// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package session

import (
	"sync"
	"testing"

	"github.com/wneessen/weather-dash/internal/format"
	"github.com/wneessen/weather-dash/internal/prefs"
)

func TestStore(t *testing.T) {
	t.Run("dispatch updates the snapshot", func(t *testing.T) {
		store := NewStore(New(format.Celsius, prefs.Light))
		state := store.Dispatch(UnitToggled{})
		if state.Unit != format.Fahrenheit {
			t.Errorf("expected unit F, got %s", state.Unit)
		}
		if store.Snapshot().Unit != format.Fahrenheit {
			t.Error("expected snapshot to reflect the dispatched event")
		}
	})
	t.Run("listeners receive the new state", func(t *testing.T) {
		store := NewStore(New(format.Celsius, prefs.Light))
		var got []prefs.Theme
		store.Subscribe(func(state State) {
			got = append(got, state.Theme)
		})
		store.Dispatch(ThemeToggled{})
		store.Dispatch(ThemeToggled{})
		if len(got) != 2 || got[0] != prefs.Dark || got[1] != prefs.Light {
			t.Errorf("unexpected listener calls: %v", got)
		}
	})
	t.Run("concurrent dispatches are serialized", func(t *testing.T) {
		store := NewStore(New(format.Celsius, prefs.Light))
		wg := sync.WaitGroup{}
		for range 100 {
			wg.Go(func() {
				store.Dispatch(SearchSubmitted{City: "London"})
			})
		}
		wg.Wait()
		if store.Snapshot().Seq != 100 {
			t.Errorf("expected sequence 100, got %d", store.Snapshot().Seq)
		}
	})
}
