// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Kind classifies ledger failures so callers can map them to their own
// error surface (HTTP statuses, CLI exit codes) without string matching.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindDuplicateVote Kind = "duplicate_vote"
	KindNotFound      Kind = "not_found"
	KindEmptyElection Kind = "empty_election"
	KindNoVotes       Kind = "no_votes"
)

// Error is a tagged ledger error. Every fallible ledger operation returns
// one of the sentinel values below; none of them is fatal to the process.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrNameRequired is returned when a candidate name is blank after trimming.
	ErrNameRequired = &Error{Kind: KindValidation, Message: "candidate name is required"}

	// ErrVoterIDRequired is returned when a voter id is blank after trimming.
	ErrVoterIDRequired = &Error{Kind: KindValidation, Message: "voter id required"}

	// ErrAlreadyVoted is returned when the voter id is already in the voted set.
	// This check happens before candidate validation: a repeat voter is rejected
	// no matter which candidate they name.
	ErrAlreadyVoted = &Error{Kind: KindDuplicateVote, Message: "already voted"}

	// ErrInvalidCandidate is returned when a candidate id does not resolve.
	ErrInvalidCandidate = &Error{Kind: KindNotFound, Message: "invalid candidate"}

	// ErrNoCandidates is returned by Winner when nothing is registered.
	ErrNoCandidates = &Error{Kind: KindEmptyElection, Message: "no candidates in the election"}

	// ErrNoVotes is returned by Winner when candidates exist but no votes do.
	ErrNoVotes = &Error{Kind: KindNoVotes, Message: "no votes cast yet"}
)
