// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       8683,
		AllowReset: true,
	}
}

// NewTestLedger returns an empty ledger plus the host mutex that
// handlers expect to share
func NewTestLedger() (*election.Ledger, *sync.Mutex) {
	return election.NewLedger(), &sync.Mutex{}
}

// RegisterTestCandidate registers a candidate and returns it
func RegisterTestCandidate(t *testing.T, ledger *election.Ledger, name string) election.Candidate {
	t.Helper()

	candidate, err := ledger.RegisterCandidate(name, "test candidate")
	if err != nil {
		t.Fatalf("Failed to register test candidate %s: %v", name, err)
	}
	return candidate
}

// CastTestVote casts a vote and fails the test on rejection
func CastTestVote(t *testing.T, ledger *election.Ledger, voterID, candidateID string) election.Vote {
	t.Helper()

	vote, err := ledger.CastVote(voterID, candidateID)
	if err != nil {
		t.Fatalf("Failed to cast test vote for %s: %v", voterID, err)
	}
	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
