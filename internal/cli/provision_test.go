package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// writeFixture writes a single wrangler config into a fresh temp dir and
// returns the dir.
func writeFixture(t *testing.T, filename, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

// TestRunProvision_NoConfig verifies the fatal path: with no config file
// present the run fails with exit code 1 before any command is executed.
// (--dry-run is deliberately off here; the failure happens earlier.)
func TestRunProvision_NoConfig(t *testing.T) {
	err := runProvision(context.Background(), &provisionFlags{dir: t.TempDir()})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestRunProvision_NoName verifies the fatal path for configs that exist
// but carry no extractable name.
func TestRunProvision_NoName(t *testing.T) {
	dir := writeFixture(t, "wrangler.json", `{"compatibility_date": "2024-01-01"}`)

	err := runProvision(context.Background(), &provisionFlags{dir: dir})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestRunProvision_DryRun verifies the happy path up to (but not
// including) command execution: name resolution, derivation, and
// validation all succeed and the dry run returns nil.
func TestRunProvision_DryRun(t *testing.T) {
	dir := writeFixture(t, "wrangler.jsonc", "// config\n{\"name\": \"svc-x\"}")

	err := runProvision(context.Background(), &provisionFlags{dir: dir, dryRun: true})
	assert.NoError(t, err)
}

// TestRunProvision_DottedNameNotFatal verifies the leniency contract for
// names taken verbatim from config: a name the local validation dislikes
// (dots are not in the namespace character set) is warned about and the
// run still proceeds toward creation instead of aborting with exit 1.
// Wrangler's own rejection, if any, would surface as a soft failure.
func TestRunProvision_DottedNameNotFatal(t *testing.T) {
	dir := writeFixture(t, "wrangler.json", `{"name": "my.app"}`)

	err := runProvision(context.Background(), &provisionFlags{dir: dir, dryRun: true})
	assert.NoError(t, err)
}

// TestRunProvision_DryRunWithPolicy verifies that the prefix/suffix
// derivation feeds validation: a policy producing an invalid namespace
// name is fatal.
func TestRunProvision_DryRunWithPolicy(t *testing.T) {
	dir := writeFixture(t, "wrangler.toml", "name = \"svc-x\"\n")

	// Valid policy passes.
	err := runProvision(context.Background(), &provisionFlags{dir: dir, dryRun: true, prefix: "staging-"})
	assert.NoError(t, err)

	// A prefix that breaks the leading-alphanumeric rule is rejected.
	err = runProvision(context.Background(), &provisionFlags{dir: dir, dryRun: true, prefix: "-"})
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}
