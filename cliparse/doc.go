// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8683)
  - AllowReset: Whether POST /admin/reset is enabled (default: false)
  - Candidates: Candidate names to register at startup

# CLI Flags

	-p            Server port
	-allow-reset  Enable the reset endpoint
	-candidates   Comma-separated candidate names

# Environment Variables

Flags fall back to environment variables:

	PORT        → -p
	ALLOW_RESET → -allow-reset (1/true/yes)
	CANDIDATES  → -candidates

CLI flags take precedence over environment variables.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ledger := election.NewLedger()
	mux := router.NewRouter(ledger, cfg)
*/
package cliparse
