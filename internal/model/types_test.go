package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConfigFormat verifies the format enum's validity checks.
func TestConfigFormat(t *testing.T) {
	assert.True(t, FormatJSON.IsValid())
	assert.True(t, FormatJSONC.IsValid())
	assert.True(t, FormatTOML.IsValid())
	assert.False(t, ConfigFormat("yaml").IsValid())
}

// TestConfigCandidateString verifies the human-readable rendering used in
// verbose output.
func TestConfigCandidateString(t *testing.T) {
	c := ConfigCandidate{Filename: "wrangler.jsonc", Format: FormatJSONC}
	assert.Equal(t, "wrangler.jsonc (jsonc)", c.String())
}

// TestOutcome verifies validity and the success classification: created
// and already-exists both count as success, failed does not.
func TestOutcome(t *testing.T) {
	assert.True(t, OutcomeCreated.IsValid())
	assert.True(t, OutcomeAlreadyExists.IsValid())
	assert.True(t, OutcomeFailed.IsValid())
	assert.False(t, Outcome("skipped").IsValid())

	assert.True(t, OutcomeCreated.IsSuccess())
	assert.True(t, OutcomeAlreadyExists.IsSuccess())
	assert.False(t, OutcomeFailed.IsSuccess())
}

// TestValidateNamespace verifies the namespace name rules.
func TestValidateNamespace(t *testing.T) {
	assert.NoError(t, ValidateNamespace("svc-x"))
	assert.NoError(t, ValidateNamespace("a"))
	assert.NoError(t, ValidateNamespace("my_worker-2"))

	assert.Error(t, ValidateNamespace(""))
	assert.Error(t, ValidateNamespace("-leading-hyphen"))
	assert.Error(t, ValidateNamespace("has space"))
	assert.Error(t, ValidateNamespace("dots.not.allowed"))
}

// TestCLIError verifies the error formatting and unwrapping behavior.
func TestCLIError(t *testing.T) {
	plain := NewCLIError(ExitGeneralError, "no config found")
	assert.Equal(t, "no config found", plain.Error())
	assert.Nil(t, plain.Unwrap())

	underlying := fmt.Errorf("unexpected end of JSON input")
	wrapped := WrapCLIError(ExitGeneralError, "failed to parse config", underlying)
	assert.Equal(t, "failed to parse config: unexpected end of JSON input", wrapped.Error())
	assert.Equal(t, underlying, wrapped.Unwrap())

	// errors.As must find the CLIError through wrapping.
	var cliErr *CLIError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}
