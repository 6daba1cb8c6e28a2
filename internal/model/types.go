package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Request is the parsed command-line input for one mkd invocation.
// It is built once by the CLI layer and never mutated afterwards.
type Request struct {
	// Paths holds the raw directory paths in the order they were given.
	Paths []string

	// Parents enables recursive creation of missing ancestors (-p).
	Parents bool

	// NoError suppresses the "already exists" message (-e).
	NoError bool

	// Verbose enables the success message (-v).
	Verbose bool

	// Mode is the octal permission string given with -m.
	// Empty means no mode was supplied.
	Mode string
}

// HasMode reports whether a permission mode was requested.
func (r *Request) HasMode() bool {
	return r.Mode != ""
}

// OutcomeKind classifies the result of a single directory creation.
//
// The classification order is fixed: success is checked first, then the
// failure kinds. Anything that is not one of the known failure kinds is
// OutcomeOther and keeps the raw OS error for display.
type OutcomeKind string

const (
	// OutcomeSuccess means the directory was created, or with --parents
	// already existed as a directory.
	OutcomeSuccess OutcomeKind = "success"

	// OutcomePermissionDenied means the OS refused the operation.
	OutcomePermissionDenied OutcomeKind = "permission-denied"

	// OutcomeAlreadyExists means the target path already exists.
	OutcomeAlreadyExists OutcomeKind = "already-exists"

	// OutcomeNotFound means a parent component of the target is missing.
	OutcomeNotFound OutcomeKind = "not-found"

	// OutcomeOther is any other OS error.
	OutcomeOther OutcomeKind = "other"
)

// String returns the string representation of OutcomeKind.
func (k OutcomeKind) String() string {
	return string(k)
}

// IsValid checks whether the OutcomeKind value is one of the
// predefined kinds.
func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomeSuccess, OutcomePermissionDenied, OutcomeAlreadyExists, OutcomeNotFound, OutcomeOther:
		return true
	default:
		return false
	}
}

// ParseOutcomeKind converts a string to an OutcomeKind.
// Returns an error if the string does not match any valid kind.
func ParseOutcomeKind(s string) (OutcomeKind, error) {
	kind := OutcomeKind(strings.ToLower(s))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid outcome: %q (valid: success, permission-denied, already-exists, not-found, other)", s)
	}
	return kind, nil
}

// Outcome is the tagged result of creating one directory. It is produced
// by the creator, consumed by the reporter and then discarded.
type Outcome struct {
	// Path is the raw path exactly as the user supplied it.
	Path string

	// Resolved is the absolute form of Path.
	Resolved string

	// Kind is the classification of the creation result.
	Kind OutcomeKind

	// Err is the underlying OS error. Nil for OutcomeSuccess.
	Err error
}

// Mode is a parsed permission value. The bits are applied wholesale,
// never merged with the existing permissions of the directory.
type Mode uint32

// ParseMode interprets s as an unsigned base-8 number that fits in 32 bits.
// Leading "0" or "0o" prefixes are accepted the way chmod accepts them.
func ParseMode(s string) (Mode, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	if digits == "" {
		digits = s
	}
	v, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q: must be an octal number", s)
	}
	return Mode(v), nil
}

// String formats the mode as a zero-padded octal number (e.g. "0755").
func (m Mode) String() string {
	return fmt.Sprintf("%04o", uint32(m))
}

// ExitCode defines the process exit codes of mkd.
// Per-path failures never change the exit code; only fatal conditions do.
type ExitCode int

const (
	// ExitSuccess indicates the run completed, even if some paths
	// reported per-path errors.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified fatal error.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates no paths were given and help was shown.
	ExitUsage ExitCode = 2

	// ExitWorkdirUnavailable indicates the current working directory
	// could not be determined.
	ExitWorkdirUnavailable ExitCode = 3

	// ExitInvalidMode indicates the --mode value is not a valid octal number.
	ExitInvalidMode ExitCode = 4

	// ExitModeApplyFailed indicates the permission bits could not be
	// applied to a directory.
	ExitModeApplyFailed ExitCode = 5

	// ExitManifestError indicates the --from-file manifest could not be
	// read or parsed.
	ExitManifestError ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// Returning one from a command aborts the whole invocation.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Silent suppresses the "Error: ..." line. Used when the command
	// already printed everything the user needs (e.g. help text).
	Silent bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
