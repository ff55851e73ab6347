// Package cli implements the cobra-based CLI for dispatchns.
//
// The tool has a single operation — provision the dispatch namespace named
// by the local wrangler config — so the root command performs it directly
// instead of fanning out into subcommands. This file defines the root
// command, global flags, and the Execute error/exit-code handling;
// provision.go holds the workflow itself.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/dispatchns/internal/console"
	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// Global flag variables bound to the root command. The tool has no
// subcommands, so plain flags (not persistent) would work too, but
// keeping them package-level mirrors how the output helpers consume them.
var (
	// jsonOutput controls whether the provisioning result is printed as
	// JSON on stdout for machine consumption.
	jsonOutput bool

	// verbose enables trace output on stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Running the bare binary performs the full provisioning flow: locate the
// wrangler config, extract the worker name, create the dispatch
// namespace. No arguments are accepted; all inputs come from the config
// file and the flags' defaults preserve the zero-flag behavior.
func NewRootCommand() *cobra.Command {
	flags := &provisionFlags{}

	rootCmd := &cobra.Command{
		Use:   "dispatchns",
		Short: "Provision the Workers for Platforms dispatch namespace for this project",
		Long: `dispatchns reads the wrangler configuration in the current directory
(wrangler.jsonc, wrangler.json, or wrangler.toml, in that order), extracts the
worker name, and runs "wrangler dispatch-namespace create" for it.

A namespace that already exists counts as success, and any other creation
failure is reported as a warning without failing the run, so deploy pipelines
can continue to their next step. The run only fails (exit 1) when no usable
config or name can be found.

Wrangler must be able to authenticate — run with CLOUDFLARE_API_TOKEN set or
after "wrangler login".`,

		// No positional arguments: the config file is the input.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them (text or JSON based on --json).
		SilenceUsage:  true,
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd.Context(), flags)
		},
	}

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVar(&flags.dir, "dir", "", "Directory to search for wrangler config (default: current directory)")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the wrangler command without executing it")
	rootCmd.Flags().StringVar(&flags.prefix, "prefix", "", "Prefix prepended to the namespace name")
	rootCmd.Flags().StringVar(&flags.suffix, "suffix", "", "Suffix appended to the namespace name")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by the command and translates them into OS
// exit codes. CLIError types carry their own exit codes; other errors
// default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json flag. Errors go to stderr in both
// modes, because stdout is reserved for the provisioning result.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			console.Errorf("%s: %v", message, underlying)
		} else {
			console.Errorf("%s", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
