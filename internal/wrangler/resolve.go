package wrangler

import (
	"fmt"

	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// Skip records a config candidate that existed but did not yield a name,
// so the CLI can surface a warning for it while resolution continues.
type Skip struct {
	// Filename is the candidate file that was skipped.
	Filename string

	// Reason is a human-readable explanation (parse error, missing field).
	Reason string
}

// Resolution is the successful result of resolving a worker name from
// the config directory.
type Resolution struct {
	// Name is the extracted worker name.
	Name string

	// Source is the config file the name came from.
	Source LocatedConfig

	// Skipped lists candidates that existed but were passed over before
	// Source won. Each entry warrants a warning line, not an abort.
	Skipped []Skip
}

// ResolveName walks the config candidates in priority order and returns
// the first extractable worker name.
//
// A candidate that exists but cannot be read, fails to parse, or parses
// without a "name" field, is recorded in Skipped and resolution moves to
// the next candidate. Two conditions are fatal (CLIError, exit 1):
//
//   - no candidate file exists at all
//   - candidate files exist, but none of them yields a name
//
// On the fatal no-name path the returned Resolution is nil but the skip
// reasons are folded into the error message, since there is no success
// value to hang them on.
func ResolveName(dir string) (*Resolution, error) {
	located, skipped := Locate(dir)
	if len(located) == 0 && len(skipped) == 0 {
		return nil, errNoConfig(dir)
	}
	for _, lc := range located {
		name, err := ExtractName(lc.Raw, lc.Candidate.Format)
		if err != nil {
			skipped = append(skipped, Skip{
				Filename: lc.Candidate.Filename,
				Reason:   err.Error(),
			})
			continue
		}
		if name == "" {
			skipped = append(skipped, Skip{
				Filename: lc.Candidate.Filename,
				Reason:   `no "name" field`,
			})
			continue
		}

		return &Resolution{
			Name:    name,
			Source:  lc,
			Skipped: skipped,
		}, nil
	}

	// Every existing candidate was skipped. Summarize the reasons so the
	// fatal message tells the user which file to fix.
	detail := ""
	for i, s := range skipped {
		if i > 0 {
			detail += "; "
		}
		detail += fmt.Sprintf("%s: %s", s.Filename, s.Reason)
	}

	return nil, model.NewCLIError(
		model.ExitGeneralError,
		fmt.Sprintf("could not extract a worker name from any wrangler config in %s (%s)", dir, detail),
	)
}
