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

type VotingHandler struct {
	ledger *election.Ledger
	mu     *sync.Mutex
	cfg    cliparse.Config
}

func NewVotingHandler(ledger *election.Ledger, mu *sync.Mutex, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: ledger, mu: mu, cfg: cfg}
}

// CastVote handles POST /votes
//
// The ledger runs its checks in order (blank voter id, repeat voter,
// unknown candidate), so a repeat voter gets 409 even for a bad
// candidate id. The whole cast happens under the host mutex; two
// concurrent casts with the same voter id can never both pass the
// repeat-voter check.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.mu.Lock()
	vote, err := h.ledger.CastVote(req.VoterID, req.CandidateID)
	var candidate election.Candidate
	if err == nil {
		candidate, _ = h.ledger.Candidate(vote.CandidateID)
	}
	h.mu.Unlock()

	if err != nil {
		slog.Warn("vote rejected",
			"voter_id", req.VoterID,
			"candidate_id", req.CandidateID,
			"reason", err.Error(),
		)
		middleware.ErrorResponse(w, statusForError(err), err.Error())
		return
	}

	slog.Info("vote cast",
		"voter_id", vote.VoterID,
		"candidate_id", vote.CandidateID,
		"candidate", candidate.Name,
		"client_ip", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Success: true,
		Message: "Vote cast successfully for " + candidate.Name,
		Vote:    vote,
	})
}

// GetVoterStatus handles GET /voters/{id}
// Reports whether the voter id has already cast a vote
func (h *VotingHandler) GetVoterStatus(w http.ResponseWriter, r *http.Request) {
	voterID := r.PathValue("id")
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter id is required")
		return
	}

	h.mu.Lock()
	hasVoted := h.ledger.HasVoted(voterID)
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.VoterStatusResponse{
		VoterID:  voterID,
		HasVoted: hasVoted,
	})
}

// GetVoteCount handles GET /votes/count
func (h *VotingHandler) GetVoteCount(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	total := h.ledger.TotalVotes()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{
		TotalVotes: total,
	})
}
