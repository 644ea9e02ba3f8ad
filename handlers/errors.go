// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/ballotbox/election"
)

// statusForError maps ledger error kinds to HTTP status codes.
func statusForError(err error) int {
	var e *election.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case election.KindValidation:
			return http.StatusBadRequest
		case election.KindDuplicateVote:
			return http.StatusConflict
		case election.KindNotFound:
			return http.StatusNotFound
		case election.KindEmptyElection, election.KindNoVotes:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
