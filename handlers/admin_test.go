// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestReset(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	handler := NewAdminHandler(ledger, mu, testutil.GetTestConfig())

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")
	testutil.CastTestVote(t, ledger, "voter-1", alice.ID)

	req := testutil.MakeRequest("POST", "/admin/reset", nil, nil)
	w := httptest.NewRecorder()

	handler.Reset(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResetResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if resp.Message != "Voting system has been reset" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}

	if got := len(ledger.Candidates()); got != 0 {
		t.Errorf("Expected no candidates after reset, got %d", got)
	}
	if got := ledger.TotalVotes(); got != 0 {
		t.Errorf("Expected no votes after reset, got %d", got)
	}
	if ledger.HasVoted("voter-1") {
		t.Error("Expected voter-1 to be cleared after reset")
	}
}

func TestReset_Disabled(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	cfg := cliparse.Config{Port: 8683, AllowReset: false}
	handler := NewAdminHandler(ledger, mu, cfg)

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")
	testutil.CastTestVote(t, ledger, "voter-1", alice.ID)

	req := testutil.MakeRequest("POST", "/admin/reset", nil, nil)
	w := httptest.NewRecorder()

	handler.Reset(w, req)

	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Nothing was cleared
	if got := ledger.TotalVotes(); got != 1 {
		t.Errorf("Expected votes to survive a denied reset, got %d", got)
	}
}

func TestReset_ElectionUsableAfterwards(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	handler := NewAdminHandler(ledger, mu, testutil.GetTestConfig())

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")
	testutil.CastTestVote(t, ledger, "voter-1", alice.ID)

	req := testutil.MakeRequest("POST", "/admin/reset", nil, nil)
	w := httptest.NewRecorder()
	handler.Reset(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// The same voter can vote again in the fresh election
	bob := testutil.RegisterTestCandidate(t, ledger, "Bob")
	testutil.CastTestVote(t, ledger, "voter-1", bob.ID)

	if got := ledger.TotalVotes(); got != 1 {
		t.Errorf("Expected 1 vote after re-voting, got %d", got)
	}
}
