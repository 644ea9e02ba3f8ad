// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

type ResultsHandler struct {
	ledger *election.Ledger
	mu     *sync.Mutex
	cfg    cliparse.Config
}

func NewResultsHandler(ledger *election.Ledger, mu *sync.Mutex, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ledger: ledger, mu: mu, cfg: cfg}
}

// GetResults handles GET /results
// Returns the full tally: totals plus per-candidate counts and
// percentages, sorted by vote count descending
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	results := h.ledger.Results()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetWinner handles GET /winner
// Returns every candidate at the maximum vote count (ties produce
// multiple winners). 409 when no candidates exist or no votes are cast.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	winner, err := h.ledger.Winner()
	h.mu.Unlock()

	if err != nil {
		middleware.ErrorResponse(w, statusForError(err), err.Error())
		return
	}

	slog.Info("winner computed", "winners", len(winner.Winners), "total_votes", winner.TotalVotes)

	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"winners":     winner.Winners,
		"total_votes": winner.TotalVotes,
	})
}
