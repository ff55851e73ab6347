package dispatch

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// defaultPackageRunner is the binary used to invoke wrangler without
// requiring a global install. npx resolves wrangler from the project's
// node_modules or downloads it on demand.
const defaultPackageRunner = "npx"

// alreadyExistsMarkers are the literal output fragments that identify an
// "already exists" failure from wrangler. The API error message has
// changed wording across wrangler releases, so all known variants are
// listed even though the first subsumes the others as a substring.
var alreadyExistsMarkers = []string{
	"already exists",
	"namespace with that name already exists",
	"A namespace with this name already exists",
}

// Runner invokes the wrangler CLI to create dispatch namespaces.
//
// The struct exists as a receiver so the package-runner binary can be
// overridden — tests point it at a stub executable, and callers could
// point it at a pinned wrangler install.
type Runner struct {
	// packageRunner is the binary that fronts wrangler (default "npx").
	packageRunner string
}

// NewRunner creates a Runner that invokes wrangler through npx.
func NewRunner() *Runner {
	return &Runner{packageRunner: defaultPackageRunner}
}

// CommandArgs returns the full argv used to create the named dispatch
// namespace. It is shared by CreateNamespace and by --dry-run display so
// the printed command is exactly the executed one.
func (r *Runner) CommandArgs(name string) []string {
	return []string{r.packageRunner, "wrangler", "dispatch-namespace", "create", name}
}

// CreateNamespace runs `wrangler dispatch-namespace create <name>`
// synchronously and classifies the result.
//
// The command's stdout and stderr are captured combined, because wrangler
// splits its human-readable error text across both streams depending on
// version. The call blocks until wrangler exits; cancellation is only via
// the provided context.
//
// This method never returns an error: every failure mode, including the
// package runner binary being absent, is folded into the CreateResult as
// OutcomeFailed. The caller decides how loudly to report it.
func (r *Runner) CreateNamespace(ctx context.Context, name string) model.CreateResult {
	argv := r.CommandArgs(name)

	// #nosec G204 — argv is constructed internally, not from user input
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	output, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(output))

	if err == nil {
		return model.CreateResult{
			Namespace: name,
			Outcome:   model.OutcomeCreated,
			Output:    text,
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return model.CreateResult{
			Namespace: name,
			Outcome:   Classify(exitErr.ExitCode(), text),
			Output:    text,
		}
	}

	// The process never started (binary missing, permission denied).
	// Still a soft failure: surface the exec error as the output text.
	if text == "" {
		text = err.Error()
	} else {
		text = text + ": " + err.Error()
	}
	return model.CreateResult{
		Namespace: name,
		Outcome:   model.OutcomeFailed,
		Output:    text,
	}
}

// Classify maps a command exit code and its captured output onto an
// Outcome. The policy, in order:
//
//  1. Zero exit status → OutcomeCreated.
//  2. Non-zero exit status whose output contains an already-exists
//     marker → OutcomeAlreadyExists.
//  3. Otherwise → OutcomeFailed.
func Classify(exitCode int, output string) model.Outcome {
	if exitCode == 0 {
		return model.OutcomeCreated
	}

	for _, marker := range alreadyExistsMarkers {
		if strings.Contains(output, marker) {
			return model.OutcomeAlreadyExists
		}
	}

	return model.OutcomeFailed
}

// NamespaceName derives the dispatch namespace name from the worker name
// extracted from config. With empty prefix and suffix this is the
// identity function — the worker name is the namespace name.
func NamespaceName(base, prefix, suffix string) string {
	return prefix + base + suffix
}
