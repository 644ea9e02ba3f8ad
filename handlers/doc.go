// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballot Box API.

# Handler Types

Each handler is a struct holding the shared ledger, the host mutex, and
config:

  - CandidateHandler: Candidate registration and lookup
  - VotingHandler: Vote casting, voter status, vote count
  - ResultsHandler: Tally and winner computation
  - AdminHandler: Election reset

Handlers are created via constructor functions:

	candidateHandler := handlers.NewCandidateHandler(ledger, mu, cfg)

# The Host Mutex

The election ledger has no internal locking, so every handler wraps each
ledger call in one shared sync.Mutex. That mutex is the serialization
boundary that makes the four-step cast-vote sequence safe under
concurrent requests: without it, two casts with the same voter id could
both pass the repeat-voter check.

# Endpoints

Candidates:

	POST /candidates      → Register (201; 400 on blank name)
	GET  /candidates      → List (registration order)
	GET  /candidates/{id} → Get (404 when absent)

Voting:

	POST /votes        → CastVote (201; 400/409/404 per error kind)
	GET  /votes/count  → GetVoteCount
	GET  /voters/{id}  → GetVoterStatus

Results:

	GET /results → GetResults (tally with percentages)
	GET /winner  → GetWinner (409 on empty election or zero votes)

Admin:

	POST /admin/reset → Reset (403 unless -allow-reset)

# Error Mapping

Ledger error kinds map to statuses in statusForError: validation → 400,
duplicate vote → 409, unknown candidate → 404, empty election and no
votes → 409. Error bodies always carry success=false.
*/
package handlers
