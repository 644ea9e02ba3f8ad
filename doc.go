// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is a small in-memory election service: register candidates,
take one vote per voter, and report tallies, percentages, and winners.
Everything lives in memory; restarting the server starts a fresh
election.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8683 -candidates "Alice,Bob" -allow-reset

# Configuration

Optional settings (flags override environment variables; a .env file is
loaded if present):

  - PORT (-p): Server port (default: 8683)
  - CANDIDATES (-candidates): Comma-separated candidate names to
    register at startup
  - ALLOW_RESET (-allow-reset): Enable the POST /admin/reset endpoint

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: The core ledger (candidates, votes, results, winner)
  - handlers: HTTP request handlers (candidates, voting, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

The election ledger is intentionally unsynchronized; the router creates
one mutex that every handler holds across each ledger call.

See package documentation for each component.
*/
package main
