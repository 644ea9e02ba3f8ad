// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"sync"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
)

func NewRouter(ledger *election.Ledger, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// The ledger itself is unsynchronized; this mutex is the single
	// point of serialization shared by every handler
	mu := &sync.Mutex{}

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(ledger, mu, cfg)
	votingHandler := handlers.NewVotingHandler(ledger, mu, cfg)
	resultsHandler := handlers.NewResultsHandler(ledger, mu, cfg)
	adminHandler := handlers.NewAdminHandler(ledger, mu, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidate management
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.Register))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.Get))

	// Voting operations
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/count", middleware.WithLogging(votingHandler.GetVoteCount))
	mux.HandleFunc("GET /voters/{id}", middleware.WithLogging(votingHandler.GetVoterStatus))

	// Results retrieval
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Admin operations
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
