// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper provides shared helpers for the package tests.
package testhelper

import (
	"net/http"
	"os"
	"testing"
)

// TestOnlineAPIURL is an endpoint that is only contacted by integration tests.
const TestOnlineAPIURL = "https://httpbin.org/delay/2"

// MockRoundTripper is a http.RoundTripper that hands every request to Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// PerformIntegrationTests skips the calling test unless PERFORM_INTEGRATION_TESTS is set.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv("PERFORM_INTEGRATION_TESTS") == "" {
		t.Skip("skipping integration test, PERFORM_INTEGRATION_TESTS not set")
	}
}

// FileResponder returns a round trip function that serves the given file with the given status code.
func FileResponder(t *testing.T, file string, status int) func(*http.Request) (*http.Response, error) {
	t.Helper()
	return func(*http.Request) (*http.Response, error) {
		data, err := os.Open(file)
		if err != nil {
			t.Fatalf("failed to open JSON response file: %s", err)
		}
		return &http.Response{
			StatusCode: status,
			Body:       data,
			Header:     make(http.Header),
		}, nil
	}
}
