package wrangler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// candidates is the fixed, ordered list of wrangler configuration files.
// The first existing file wins; the order matches wrangler's own
// resolution priority (jsonc before json before toml).
var candidates = []model.ConfigCandidate{
	{Filename: "wrangler.jsonc", Format: model.FormatJSONC},
	{Filename: "wrangler.json", Format: model.FormatJSON},
	{Filename: "wrangler.toml", Format: model.FormatTOML},
}

// Candidates returns the recognized wrangler configuration files in
// priority order. The returned slice is a copy — callers may not mutate
// the resolution order.
func Candidates() []model.ConfigCandidate {
	out := make([]model.ConfigCandidate, len(candidates))
	copy(out, candidates)
	return out
}

// LocatedConfig is a configuration candidate that exists on disk,
// together with its raw file contents.
type LocatedConfig struct {
	// Candidate identifies which config file was found and its format.
	Candidate model.ConfigCandidate

	// Path is the full path to the file that was read.
	Path string

	// Raw is the unparsed file content.
	Raw []byte
}

// Locate checks the candidate list against the given directory and
// returns every candidate that exists, in priority order, with its raw
// contents loaded.
//
// Missing files are a normal outcome, not an error — an empty result
// simply means no wrangler config is present. A candidate that exists
// but cannot be read is returned as a Skip, so the resolver surfaces it
// the same way as a parse failure.
func Locate(dir string) ([]LocatedConfig, []Skip) {
	var found []LocatedConfig
	var skipped []Skip

	for _, c := range candidates {
		path := filepath.Join(dir, c.Filename)

		// os.ReadFile doubles as the existence check: a single call
		// avoids the stat-then-read race and we need the bytes anyway.
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			skipped = append(skipped, Skip{
				Filename: c.Filename,
				Reason:   err.Error(),
			})
			continue
		}

		found = append(found, LocatedConfig{
			Candidate: c,
			Path:      path,
			Raw:       data,
		})
	}

	return found, skipped
}

// candidateNames returns the candidate filenames joined for error
// messages, e.g. "wrangler.jsonc, wrangler.json, wrangler.toml".
func candidateNames() string {
	names := ""
	for i, c := range candidates {
		if i > 0 {
			names += ", "
		}
		names += c.Filename
	}
	return names
}

// errNoConfig builds the fatal error for the case where no candidate
// file exists in the config directory at all.
func errNoConfig(dir string) *model.CLIError {
	return model.NewCLIError(
		model.ExitGeneralError,
		fmt.Sprintf("no wrangler configuration found in %s (looked for %s)", dir, candidateNames()),
	)
}
