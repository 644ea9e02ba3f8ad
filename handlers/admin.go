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
	"github.com/danielhkuo/ballotbox/models"
)

type AdminHandler struct {
	ledger *election.Ledger
	mu     *sync.Mutex
	cfg    cliparse.Config
}

func NewAdminHandler(ledger *election.Ledger, mu *sync.Mutex, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{ledger: ledger, mu: mu, cfg: cfg}
}

// Reset handles POST /admin/reset
// Clears candidates, votes, and the voted-voter set. The endpoint is
// disabled unless the host was started with -allow-reset (ALLOW_RESET).
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.AllowReset {
		middleware.ErrorResponse(w, http.StatusForbidden, "reset is disabled")
		return
	}

	h.mu.Lock()
	h.ledger.Reset()
	h.mu.Unlock()

	slog.Warn("election reset", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: "Voting system has been reset",
	})
}
