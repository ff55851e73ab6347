package model

import (
	"fmt"
	"regexp"
)

// ConfigFormat identifies the on-disk format of a wrangler configuration
// file. The format determines which extraction strategy is used to read
// the worker name out of the file.
type ConfigFormat string

const (
	// FormatJSON is plain JSON (wrangler.json).
	FormatJSON ConfigFormat = "json"

	// FormatJSONC is JSON with Comments (wrangler.jsonc). Wrangler officially
	// supports // line comments, /* */ block comments, and trailing commas
	// in this format.
	FormatJSONC ConfigFormat = "jsonc"

	// FormatTOML is TOML (wrangler.toml), the historical wrangler config format.
	FormatTOML ConfigFormat = "toml"
)

// String returns the string representation of ConfigFormat.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI messages and logging.
func (f ConfigFormat) String() string {
	return string(f)
}

// IsValid checks whether the ConfigFormat value is one of the
// predefined valid formats.
func (f ConfigFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatJSONC, FormatTOML:
		return true
	default:
		return false
	}
}

// ConfigCandidate is one recognized wrangler configuration file, consulted
// in fixed priority order by the locator. The candidate list itself lives
// in internal/wrangler; this type only pairs a filename with its format.
type ConfigCandidate struct {
	// Filename is the file name checked in the config directory
	// (e.g., "wrangler.jsonc").
	Filename string

	// Format is the declared format used to extract the worker name.
	Format ConfigFormat
}

// String returns a human-readable representation of the candidate.
// Format: "wrangler.jsonc (jsonc)"
func (c ConfigCandidate) String() string {
	return fmt.Sprintf("%s (%s)", c.Filename, c.Format)
}

// Outcome classifies the result of one dispatch-namespace creation attempt.
//
// Classification policy, in order:
//  1. Zero exit status            → OutcomeCreated
//  2. Output matches an
//     already-exists marker       → OutcomeAlreadyExists
//  3. Anything else               → OutcomeFailed
type Outcome string

const (
	// OutcomeCreated indicates wrangler created the dispatch namespace.
	OutcomeCreated Outcome = "created"

	// OutcomeAlreadyExists indicates the namespace was already present.
	// This is treated as success: provisioning is idempotent by intent.
	OutcomeAlreadyExists Outcome = "already-exists"

	// OutcomeFailed indicates the command failed for any other reason
	// (auth, network, wrangler itself missing). Failed outcomes are
	// reported as warnings but never abort the run.
	OutcomeFailed Outcome = "failed"
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	return string(o)
}

// IsValid checks whether the Outcome value is one of the
// predefined valid outcomes.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeCreated, OutcomeAlreadyExists, OutcomeFailed:
		return true
	default:
		return false
	}
}

// IsSuccess reports whether the outcome counts as a successful
// provisioning run. Both "created" and "already-exists" qualify —
// in either case the namespace exists after the run.
func (o Outcome) IsSuccess() bool {
	return o == OutcomeCreated || o == OutcomeAlreadyExists
}

// CreateResult holds the classified result of a single namespace
// creation command.
type CreateResult struct {
	// Namespace is the dispatch namespace name that was passed to wrangler.
	Namespace string `json:"namespace"`

	// Outcome is the classification of the command result.
	Outcome Outcome `json:"outcome"`

	// Output is the captured combined stdout/stderr of the command.
	// For OutcomeFailed this is the error message surfaced to the user.
	Output string `json:"output,omitempty"`
}

// namespaceRegex validates dispatch namespace names: alphanumeric plus
// hyphens and underscores, starting with an alphanumeric character.
var namespaceRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateNamespace checks if the given name looks usable as a dispatch
// namespace name. The name ultimately comes from the "name" field of the
// user's wrangler config (plus any prefix/suffix policy). How the caller
// reacts is its own policy: a name taken verbatim from config only
// warrants a warning (wrangler owns the real naming rules and its
// rejection is a soft failure), while a name broken by prefix/suffix
// flags is a usage error.
func ValidateNamespace(name string) error {
	if name == "" {
		return fmt.Errorf("namespace name must not be empty")
	}
	if !namespaceRegex.MatchString(name) {
		return fmt.Errorf("invalid namespace name %q: must contain only alphanumeric characters, hyphens and underscores, and start with an alphanumeric character", name)
	}
	return nil
}

// ExitCode defines the CLI exit codes. Only two codes exist by contract:
// provisioning failures are deliberately non-fatal so that downstream
// deployment steps can proceed, leaving exit 1 for the cases where the
// tool could not even determine what to provision.
type ExitCode int

const (
	// ExitSuccess indicates the command completed, including runs where
	// the namespace already existed or the create command failed softly.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates no usable config file was found, or a
	// config was found but no name could be extracted from it.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
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
// This follows Go's error wrapping convention introduced in Go 1.13.
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
