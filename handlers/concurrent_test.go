// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from distinct
// voters all land, with exactly one ledger entry per voter
func TestConcurrentVotes(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(ledger, mu, cfg)

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")
	bob := testutil.RegisterTestCandidate(t, ledger, "Bob")
	candidates := []string{alice.ID, bob.ID}

	numVoters := 20

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			voteReq := models.CastVoteRequest{
				VoterID:     fmt.Sprintf("voter-%d", voterIdx),
				CandidateID: candidates[voterIdx%len(candidates)],
			}
			body, _ := json.Marshal(voteReq)
			req := httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			votingHandler.CastVote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	mu.Lock()
	total := ledger.TotalVotes()
	results := ledger.Results()
	mu.Unlock()

	if total != numVoters {
		t.Errorf("Expected %d votes in ledger, got %d", numVoters, total)
	}

	// Per-candidate counts must sum to the total
	sum := 0
	for _, r := range results.Results {
		sum += r.VoteCount
	}
	if sum != numVoters {
		t.Errorf("Expected per-candidate counts to sum to %d, got %d", numVoters, sum)
	}
}

// TestConcurrentDuplicateVoter verifies that when one voter id races
// against itself, exactly one vote is accepted
func TestConcurrentDuplicateVoter(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(ledger, mu, cfg)

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")

	numAttempts := 10

	var successCount atomic.Int32
	var conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			voteReq := models.CastVoteRequest{
				VoterID:     "contested-voter",
				CandidateID: alice.ID,
			}
			body, _ := json.Marshal(voteReq)
			req := httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			votingHandler.CastVote(w, req)

			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 accepted vote, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	mu.Lock()
	total := ledger.TotalVotes()
	mu.Unlock()

	if total != 1 {
		t.Errorf("Expected 1 vote in ledger, got %d", total)
	}
}

// TestConcurrentReadsDuringVoting verifies that result reads interleaved
// with writes always see a consistent tally
func TestConcurrentReadsDuringVoting(t *testing.T) {
	ledger, mu := testutil.NewTestLedger()
	cfg := testutil.GetTestConfig()
	votingHandler := NewVotingHandler(ledger, mu, cfg)
	resultsHandler := NewResultsHandler(ledger, mu, cfg)

	alice := testutil.RegisterTestCandidate(t, ledger, "Alice")

	numVoters := 10
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			voteReq := models.CastVoteRequest{
				VoterID:     fmt.Sprintf("reader-race-%d", voterIdx),
				CandidateID: alice.ID,
			}
			body, _ := json.Marshal(voteReq)
			req := httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			votingHandler.CastVote(w, req)
		}(i)

		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("GET", "/results", nil)
			w := httptest.NewRecorder()
			resultsHandler.GetResults(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Results read failed mid-vote: %d", w.Code)
				return
			}

			var resp struct {
				TotalVotes int `json:"total_votes"`
				Results    []struct {
					VoteCount int `json:"vote_count"`
				} `json:"results"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode results: %v", err)
				return
			}

			sum := 0
			for _, r := range resp.Results {
				sum += r.VoteCount
			}
			if sum != resp.TotalVotes {
				t.Errorf("Inconsistent snapshot: counts sum to %d, total is %d", sum, resp.TotalVotes)
			}
		}()
	}

	wg.Wait()

	mu.Lock()
	total := ledger.TotalVotes()
	mu.Unlock()

	if total != numVoters {
		t.Errorf("Expected %d votes after the dust settles, got %d", numVoters, total)
	}
}
