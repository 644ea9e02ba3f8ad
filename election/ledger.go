// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Candidate is a registered election candidate. VoteCount is mutated only
// by the ledger when it accepts a vote for this candidate.
type Candidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// Vote records a single accepted vote. Votes are immutable once created
// and are only removed in bulk by Reset.
type Vote struct {
	VoterID     string    `json:"voter_id"`
	CandidateID string    `json:"candidate_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// Ledger holds the full state of one election: candidates in registration
// order, the append-only vote list, and the set of voter ids that have
// voted. It has no internal locking; a host serving multiple requests must
// serialize every call through one external mutex (see the handlers
// package for how the HTTP host does this).
type Ledger struct {
	candidates []*Candidate
	votes      []Vote
	voters     map[string]struct{}

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		voters: make(map[string]struct{}),
		now:    time.Now,
	}
}

// RegisterCandidate adds a candidate with a fresh unique id and a vote
// count of zero. The name must be non-empty after trimming; the
// description may be empty. A rejected registration leaves no state behind.
func (l *Ledger) RegisterCandidate(name, description string) (Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Candidate{}, ErrNameRequired
	}

	c := &Candidate{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	l.candidates = append(l.candidates, c)

	return *c, nil
}

// Candidates returns all candidates in registration order.
func (l *Ledger) Candidates() []Candidate {
	out := make([]Candidate, len(l.candidates))
	for i, c := range l.candidates {
		out[i] = *c
	}
	return out
}

// Candidate looks up a candidate by id. A missing id is not an error.
func (l *Ledger) Candidate(id string) (Candidate, bool) {
	c := l.lookup(id)
	if c == nil {
		return Candidate{}, false
	}
	return *c, true
}

// CastVote accepts exactly one vote per voter id. Checks run in a fixed
// order: blank voter id, then repeat voter, then unknown candidate. The
// repeat-voter check deliberately precedes candidate validation, so a
// repeat voter naming a nonexistent candidate still gets ErrAlreadyVoted.
// On success the vote list, the candidate's count, and the voted set are
// all updated together; a failed cast changes nothing.
func (l *Ledger) CastVote(voterID, candidateID string) (Vote, error) {
	if strings.TrimSpace(voterID) == "" {
		return Vote{}, ErrVoterIDRequired
	}
	if _, voted := l.voters[voterID]; voted {
		return Vote{}, ErrAlreadyVoted
	}
	candidate := l.lookup(candidateID)
	if candidate == nil {
		return Vote{}, ErrInvalidCandidate
	}

	vote := Vote{
		VoterID:     voterID,
		CandidateID: candidateID,
		Timestamp:   l.now(),
	}
	l.votes = append(l.votes, vote)
	candidate.VoteCount++
	l.voters[voterID] = struct{}{}

	return vote, nil
}

// TotalVotes reports the number of accepted votes.
func (l *Ledger) TotalVotes() int {
	return len(l.votes)
}

// HasVoted reports whether the voter id has already cast a vote.
func (l *Ledger) HasVoted(voterID string) bool {
	_, ok := l.voters[voterID]
	return ok
}

// Reset clears candidates, votes, and the voted set. It never fails.
func (l *Ledger) Reset() {
	l.candidates = nil
	l.votes = nil
	l.voters = make(map[string]struct{})
}

func (l *Ledger) lookup(id string) *Candidate {
	for _, c := range l.candidates {
		if c.ID == id {
			return c
		}
	}
	return nil
}
