package models

import "github.com/danielhkuo/ballotbox/election"

// Request types

type RegisterCandidateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CastVoteRequest struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

// Response types

type RegisterCandidateResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Candidate election.Candidate `json:"candidate"`
}

type CastVoteResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Vote    election.Vote `json:"vote"`
}

type CandidateListResponse struct {
	Candidates []election.Candidate `json:"candidates"`
}

type VoterStatusResponse struct {
	VoterID  string `json:"voter_id"`
	HasVoted bool   `json:"has_voted"`
}

type VoteCountResponse struct {
	TotalVotes int `json:"total_votes"`
}

type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
