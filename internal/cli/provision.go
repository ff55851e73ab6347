// Package cli — provision.go implements the provisioning workflow that the
// root command runs.
//
// Orchestration steps:
//  1. Resolve the worker name from the wrangler config (jsonc → json → toml)
//  2. Derive and validate the dispatch namespace name
//  3. Run `wrangler dispatch-namespace create` (or print it, for --dry-run)
//  4. Classify and report the result
//
// Only steps 1–2 can fail the run. A creation failure in step 3 is
// reported as a warning and the process still exits 0, by design: the
// provisioner runs at the front of deploy pipelines whose later steps
// should not be blocked by a transient namespace-creation error.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mmr-tortoise/dispatchns/internal/console"
	"github.com/mmr-tortoise/dispatchns/internal/dispatch"
	"github.com/mmr-tortoise/dispatchns/internal/model"
	"github.com/mmr-tortoise/dispatchns/internal/wrangler"
)

// provisionFlags holds the flag values for the root command.
// These are bound to cobra flags in NewRootCommand.
type provisionFlags struct {
	dir    string // --dir: config directory (default: cwd)
	dryRun bool   // --dry-run: print the command instead of running it
	prefix string // --prefix: namespace name prefix
	suffix string // --suffix: namespace name suffix
}

// runProvision is the main orchestration function.
func runProvision(ctx context.Context, flags *provisionFlags) error {
	// Step 1: Determine the config directory. The default is the process
	// working directory, matching how wrangler itself resolves config.
	dir := flags.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		dir = cwd
	}
	VerboseLog("Config directory: %s", dir)

	// Step 2: Resolve the worker name. Candidates that existed but could
	// not yield a name are soft warnings; resolution already moved past
	// them to the next candidate.
	for _, c := range wrangler.Candidates() {
		VerboseLog("Config candidate: %s", c)
	}
	res, err := wrangler.ResolveName(dir)
	if err != nil {
		return err // ResolveName already returns CLIError
	}
	for _, skip := range res.Skipped {
		console.Warnf("skipping %s: %s", skip.Filename, skip.Reason)
	}
	VerboseLog("Using %s, worker name %q", res.Source.Candidate, res.Name)

	// Step 3: Derive the namespace name. With no --prefix/--suffix this
	// is the worker name unchanged. Validation is only fatal when a
	// prefix/suffix flag produced the bad name: a doubtful name taken
	// verbatim from config is passed through to wrangler, which owns the
	// real naming rules — a rejection surfaces as a soft failure, exit 0.
	namespace := dispatch.NamespaceName(res.Name, flags.prefix, flags.suffix)
	if validateErr := model.ValidateNamespace(namespace); validateErr != nil {
		if flags.prefix != "" || flags.suffix != "" {
			return model.WrapCLIError(model.ExitGeneralError, "unusable namespace name", validateErr)
		}
		console.Warnf("%v; attempting creation anyway", validateErr)
	}
	VerboseLog("Dispatch namespace: %s", namespace)

	runner := dispatch.NewRunner()

	// Step 4: Dry run — show the exact command and stop.
	if flags.dryRun {
		console.Infof("dry run: %s", strings.Join(runner.CommandArgs(namespace), " "))
		return nil
	}

	// Step 5: Create the namespace. CreateNamespace never returns an
	// error; every failure mode is folded into the result's outcome.
	VerboseLog("Running: %s", strings.Join(runner.CommandArgs(namespace), " "))
	result := runner.CreateNamespace(ctx, namespace)

	// Step 6: Report.
	printProvisionResult(res, result)
	return nil
}

// printProvisionResult outputs the result in text or JSON format.
func printProvisionResult(res *wrangler.Resolution, result model.CreateResult) {
	if IsJSONOutput() {
		printProvisionResultJSON(res, result)
		return
	}

	switch result.Outcome {
	case model.OutcomeCreated:
		console.Successf("created dispatch namespace %q", result.Namespace)
	case model.OutcomeAlreadyExists:
		console.Successf("dispatch namespace %q already exists", result.Namespace)
	default:
		// Soft failure: report and carry on with exit 0 so downstream
		// deploy steps are not blocked.
		console.Warnf("could not create dispatch namespace %q: %s", result.Namespace, result.Output)
		console.Warnf("continuing despite the failure above; create the namespace manually if the deploy fails")
	}
}

// printProvisionResultJSON outputs the result as structured JSON on stdout.
func printProvisionResultJSON(res *wrangler.Resolution, result model.CreateResult) {
	type resultJSON struct {
		Namespace string `json:"namespace"`
		Outcome   string `json:"outcome"`
		Source    string `json:"source"`
		Message   string `json:"message,omitempty"`
	}

	out := resultJSON{
		Namespace: result.Namespace,
		Outcome:   result.Outcome.String(),
		Source:    res.Source.Candidate.Filename,
	}
	if result.Outcome == model.OutcomeFailed {
		out.Message = result.Output
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
