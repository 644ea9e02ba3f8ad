// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterCandidateRequest: name, description
  - CastVoteRequest: voter_id, candidate_id

# Response Types

Types for JSON responses:

  - RegisterCandidateResponse: success, message, candidate
  - CastVoteResponse: success, message, vote
  - CandidateListResponse: candidates
  - VoterStatusResponse: voter_id, has_voted
  - VoteCountResponse: total_votes
  - ResetResponse: success, message
  - ErrorResponse: success (always false), error, message

Tally and winner payloads come straight from the election package
(election.Results, election.WinnerResult) and are serialized as-is.

Every operation that can fail answers with ErrorResponse, so callers can
branch on the success flag without inspecting HTTP status text.
*/
package models
