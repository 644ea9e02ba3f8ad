package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port       int
	AllowReset bool
	Candidates []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates string

	fs := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Operational switches
	fs.BoolVar(&cfg.AllowReset, "allow-reset", false, "Enable POST /admin/reset")
	fs.StringVar(&candidates, "candidates", "", "Comma-separated candidate names to register at startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8683 // default; "VOTE" on a phone keypad
		}
	}

	if !cfg.AllowReset {
		switch os.Getenv("ALLOW_RESET") {
		case "1", "true", "yes":
			cfg.AllowReset = true
		}
	}

	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	for _, name := range strings.Split(candidates, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			cfg.Candidates = append(cfg.Candidates, name)
		}
	}

	return cfg, nil
}
