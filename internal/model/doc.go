// Package model defines the domain types and value objects for the
// dispatchns CLI.
//
// This package contains pure data structures with no external dependencies:
// the recognized wrangler config formats (ConfigFormat, ConfigCandidate),
// the result of a provisioning attempt (Outcome, CreateResult), and the
// exit code machinery (ExitCode, CLIError) that lets the CLI layer
// translate domain errors into OS process exit codes.
//
// All state is local to a single run — nothing here is persisted.
package model
