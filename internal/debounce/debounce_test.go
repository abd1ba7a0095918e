// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package debounce

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"
)

const testDelay = time.Millisecond * 500

type testType struct {
	mu     sync.Mutex
	values []string
}

func TestNew(t *testing.T) {
	debouncer := New(t.Context(), testDelay, func(context.Context, string) {})
	if debouncer == nil {
		t.Fatal("expected debouncer to be non-nil")
	}
}

func TestDebouncer_Trigger(t *testing.T) {
	t.Run("task runs once after the delay", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			tester := &testType{}
			debouncer := New(t.Context(), testDelay, tester.testFunc)
			debouncer.Trigger("Lon")

			time.Sleep(testDelay - time.Millisecond)
			synctest.Wait()
			if len(tester.got()) != 0 {
				t.Fatal("expected task to not run before the delay")
			}
			time.Sleep(time.Millisecond)
			synctest.Wait()
			if got := tester.got(); len(got) != 1 || got[0] != "Lon" {
				t.Errorf("expected task to run once with %q, got %v", "Lon", got)
			}
		})
	})
	t.Run("rapid triggers only run the latest value", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			tester := &testType{}
			debouncer := New(t.Context(), testDelay, tester.testFunc)
			for _, value := range []string{"Lon", "Lond", "Londo", "London"} {
				debouncer.Trigger(value)
				time.Sleep(testDelay / 2)
			}
			time.Sleep(testDelay)
			synctest.Wait()
			if got := tester.got(); len(got) != 1 || got[0] != "London" {
				t.Errorf("expected a single run with %q, got %v", "London", got)
			}
		})
	})
	t.Run("every pause fires once", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			tester := &testType{}
			debouncer := New(t.Context(), testDelay, tester.testFunc)
			debouncer.Trigger("Par")
			time.Sleep(testDelay * 2)
			debouncer.Trigger("Paris")
			time.Sleep(testDelay * 2)
			synctest.Wait()
			if got := tester.got(); len(got) != 2 {
				t.Errorf("expected 2 runs, got %v", got)
			}
		})
	})
	t.Run("nil task returns", func(t *testing.T) {
		debouncer := New(t.Context(), testDelay, nil)
		debouncer.Trigger("Lon")
		debouncer.Stop()
	})
}

func TestDebouncer_Suppress(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		tester := &testType{}
		debouncer := New(t.Context(), testDelay, tester.testFunc)
		debouncer.Trigger("Lon")
		debouncer.Suppress(true)
		debouncer.Trigger("London")
		time.Sleep(testDelay * 2)
		synctest.Wait()
		if len(tester.got()) != 0 {
			t.Fatalf("expected no runs while suppressed, got %v", tester.got())
		}

		debouncer.Suppress(false)
		debouncer.Trigger("Paris")
		time.Sleep(testDelay * 2)
		synctest.Wait()
		if got := tester.got(); len(got) != 1 || got[0] != "Paris" {
			t.Errorf("expected a single run with %q, got %v", "Paris", got)
		}
	})
}

func TestDebouncer_Stop(t *testing.T) {
	t.Run("stop cancels the pending run", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			tester := &testType{}
			debouncer := New(t.Context(), testDelay, tester.testFunc)
			debouncer.Trigger("Lon")
			debouncer.Stop()
			time.Sleep(testDelay * 2)
			synctest.Wait()
			if len(tester.got()) != 0 {
				t.Errorf("expected no runs after stop, got %v", tester.got())
			}
		})
	})
	t.Run("a newer trigger cancels the running task", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			canceled := make(chan string, 1)
			debouncer := New(t.Context(), testDelay, func(ctx context.Context, value string) {
				if value != "Lon" {
					return
				}
				<-ctx.Done()
				canceled <- value
			})
			debouncer.Trigger("Lon")
			time.Sleep(testDelay + time.Millisecond)
			synctest.Wait()
			debouncer.Trigger("London")
			synctest.Wait()
			select {
			case value := <-canceled:
				if value != "Lon" {
					t.Errorf("expected the run for %q to be canceled, got %q", "Lon", value)
				}
			default:
				t.Fatal("expected the running task to be canceled")
			}
			debouncer.Stop()
		})
	})
	t.Run("canceled parent context prevents scheduling", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			tester := &testType{}
			ctx, cancel := context.WithCancel(t.Context())
			debouncer := New(ctx, testDelay, tester.testFunc)
			cancel()
			debouncer.Trigger("Lon")
			time.Sleep(testDelay * 2)
			synctest.Wait()
			if len(tester.got()) != 0 {
				t.Errorf("expected no runs after cancellation, got %v", tester.got())
			}
		})
	})
}

func (t *testType) testFunc(ctx context.Context, value string) {
	select {
	case <-ctx.Done():
		return
	default:
		t.mu.Lock()
		t.values = append(t.values, value)
		t.mu.Unlock()
	}
}

func (t *testType) got() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.values...)
}
