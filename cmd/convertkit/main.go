// Command convertkit is a command-line client for the ConvertKit API.
//
// Credentials are read from a YAML config file (--config), then from the
// environment, optionally seeded from a .env file:
//
//	CONVERTKIT_API_KEY=...
//	CONVERTKIT_API_SECRET=...
//	CONVERTKIT_BASE_URL=...   (optional)
//
// Usage:
//
//	convertkit form show <id>
//	convertkit tag list
//	convertkit tag find <name>
//	convertkit tag create <name>...
//	convertkit subscribe <form-id> <email> [--first-name NAME] [--tag NAME-OR-ID]...
package main

import (
	"context"
	"io"
	"os"
)

var version = "dev"

// Config holds the I/O streams the command runs against.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// run executes the command line args (without the program name).
func run(args []string, cfg Config) error {
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
