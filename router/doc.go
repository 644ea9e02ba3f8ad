// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ledger, cfg)

# Endpoints

Health:

	GET /health

Candidate management:

	POST /candidates      - Register candidate
	GET  /candidates      - List candidates (registration order)
	GET  /candidates/{id} - Get one candidate

Voting:

	POST /votes        - Cast a vote (one per voter id)
	GET  /votes/count  - Total accepted votes
	GET  /voters/{id}  - Whether a voter id has voted

Results:

	GET /results - Full tally with percentages
	GET /winner  - Winner(s); ties return all leaders

Admin:

	POST /admin/reset - Wipe the election (requires -allow-reset)

# Handler Initialization

The router creates handler instances with dependency injection:

	candidateHandler := handlers.NewCandidateHandler(ledger, mu, cfg)
	votingHandler := handlers.NewVotingHandler(ledger, mu, cfg)
	resultsHandler := handlers.NewResultsHandler(ledger, mu, cfg)
	adminHandler := handlers.NewAdminHandler(ledger, mu, cfg)

All handlers receive the shared ledger, the single host mutex that
serializes access to it, and the configuration.
*/
package router
