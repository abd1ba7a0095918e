// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package vartype

import (
	"math"
	"testing"
)

func TestVariable(t *testing.T) {
	t.Run("new variable is set", func(t *testing.T) {
		v := NewVariable(12.5)
		if !v.IsSet() {
			t.Fatal("expected variable to be set")
		}
		if v.Value() != 12.5 {
			t.Errorf("expected value 12.5, got %f", v.Value())
		}
		if v.String() != "12.5" {
			t.Errorf("expected string 12.5, got %s", v.String())
		}
	})
	t.Run("reset clears the value", func(t *testing.T) {
		v := NewVariable(3)
		v.Reset()
		if v.IsSet() {
			t.Error("expected variable to be unset")
		}
		if v.Value() != 0 {
			t.Errorf("expected zero value, got %d", v.Value())
		}
		if v.String() != "Unsupported by weather provider" {
			t.Errorf("unexpected placeholder: %s", v.String())
		}
	})
	t.Run("value or default", func(t *testing.T) {
		var v VarInt
		if got := v.ValueOr(7); got != 7 {
			t.Errorf("expected default 7, got %d", got)
		}
		v.Set(0)
		if got := v.ValueOr(7); got != 0 {
			t.Errorf("expected set zero value, got %d", got)
		}
	})
	t.Run("unset float is NaN", func(t *testing.T) {
		var v VarFloat64
		if !math.IsNaN(Float(v)) {
			t.Error("expected NaN for unset float")
		}
		v.Set(1013)
		if Float(v) != 1013 {
			t.Errorf("expected 1013, got %f", Float(v))
		}
	})
}
