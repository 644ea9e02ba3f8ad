// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"math"
	"sort"
)

// CandidateResult is one candidate's tally within Results.
type CandidateResult struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	VoteCount  int     `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

// Results is the full election tally.
type Results struct {
	TotalVotes      int               `json:"total_votes"`
	TotalCandidates int               `json:"total_candidates"`
	Results         []CandidateResult `json:"results"`
}

// WinnerEntry is one winning candidate in a WinnerResult.
type WinnerEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

// WinnerResult lists every candidate holding the maximum vote count.
type WinnerResult struct {
	Winners    []WinnerEntry `json:"winners"`
	TotalVotes int           `json:"total_votes"`
}

// Results tallies all candidates, sorted by vote count descending. The
// sort is stable, so tied candidates keep their registration order. With
// zero total votes every percentage is 0.
func (l *Ledger) Results() Results {
	total := len(l.votes)

	results := make([]CandidateResult, len(l.candidates))
	for i, c := range l.candidates {
		results[i] = CandidateResult{
			ID:         c.ID,
			Name:       c.Name,
			VoteCount:  c.VoteCount,
			Percentage: percentage(c.VoteCount, total),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].VoteCount > results[j].VoteCount
	})

	return Results{
		TotalVotes:      total,
		TotalCandidates: len(l.candidates),
		Results:         results,
	}
}

// Winner returns every candidate whose vote count equals the maximum,
// so ties produce multiple winners. It fails with ErrNoCandidates on an
// empty election and ErrNoVotes when nobody has voted yet.
func (l *Ledger) Winner() (WinnerResult, error) {
	if len(l.candidates) == 0 {
		return WinnerResult{}, ErrNoCandidates
	}
	if len(l.votes) == 0 {
		return WinnerResult{}, ErrNoVotes
	}

	maxVotes := 0
	for _, c := range l.candidates {
		if c.VoteCount > maxVotes {
			maxVotes = c.VoteCount
		}
	}

	var winners []WinnerEntry
	for _, c := range l.candidates {
		if c.VoteCount == maxVotes {
			winners = append(winners, WinnerEntry{
				ID:    c.ID,
				Name:  c.Name,
				Votes: c.VoteCount,
			})
		}
	}

	return WinnerResult{
		Winners:    winners,
		TotalVotes: len(l.votes),
	}, nil
}

// percentage computes count/total as a percentage, rounded half away from
// zero to two decimal places. Tests pin the exact rounding behavior.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(count) / float64(total) * 100
	return math.Round(p*100) / 100
}
