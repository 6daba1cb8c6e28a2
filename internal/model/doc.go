// Package model defines the domain types and value objects for the mkd CLI.
//
// This package contains pure data structures with no external dependencies.
// Every value here (Request, Outcome, Mode) is transient and scoped to a
// single invocation; nothing is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
// A CLIError always means the whole run is aborted; per-path failures are
// expressed as an Outcome instead.
package model
