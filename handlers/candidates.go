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

type CandidateHandler struct {
	ledger *election.Ledger
	mu     *sync.Mutex
	cfg    cliparse.Config
}

func NewCandidateHandler(ledger *election.Ledger, mu *sync.Mutex, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{ledger: ledger, mu: mu, cfg: cfg}
}

// Register handles POST /candidates
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.mu.Lock()
	candidate, err := h.ledger.RegisterCandidate(req.Name, req.Description)
	h.mu.Unlock()

	if err != nil {
		middleware.ErrorResponse(w, statusForError(err), err.Error())
		return
	}

	slog.Info("candidate registered", "candidate_id", candidate.ID, "name", candidate.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterCandidateResponse{
		Success:   true,
		Message:   "Candidate " + candidate.Name + " added successfully",
		Candidate: candidate,
	})
}

// List handles GET /candidates
// Returns all candidates in registration order
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	candidates := h.ledger.Candidates()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.CandidateListResponse{
		Candidates: candidates,
	})
}

// Get handles GET /candidates/{id}
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	h.mu.Lock()
	candidate, ok := h.ledger.Candidate(id)
	h.mu.Unlock()

	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}
