// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the in-memory election ledger: candidates,
votes, and the one-vote-per-voter rule.

# The Ledger

A Ledger owns three collections:

  - candidates, in registration order
  - the append-only vote list
  - the set of voter ids that have voted

Construct one per election:

	ledger := election.NewLedger()

# Operations

	candidate, err := ledger.RegisterCandidate("Alice", "incumbent")
	vote, err := ledger.CastVote("voter-1", candidate.ID)
	results := ledger.Results()
	winner, err := ledger.Winner()

Queries with no side effects:

	ledger.Candidates()
	ledger.Candidate(id)
	ledger.TotalVotes()
	ledger.HasVoted(voterID)

Reset clears everything and never fails:

	ledger.Reset()

# The One-Vote Rule

CastVote runs its checks in a fixed order: blank voter id, repeat voter,
unknown candidate. The repeat-voter check precedes candidate validation
on purpose, so a voter who already voted is rejected with ErrAlreadyVoted
even when they name a candidate that does not exist.

# Invariants

At every observable point:

  - the sum of all candidates' vote counts equals TotalVotes()
  - no voter id appears in the vote list more than once
  - every vote's candidate id resolves to a registered candidate

# Errors

All failures are sentinel values of type *Error, tagged with a Kind:

	ErrNameRequired     (validation)
	ErrVoterIDRequired  (validation)
	ErrAlreadyVoted     (duplicate_vote)
	ErrInvalidCandidate (not_found)
	ErrNoCandidates     (empty_election)
	ErrNoVotes          (no_votes)

# Concurrency

The ledger has no internal synchronization. Single-threaded callers can
use it directly; any concurrent host must serialize every call through
one external mutex, because the cast-vote sequence (check voted set,
validate candidate, append vote, bump count, mark voter) is not safe
under interleaving.
*/
package election
