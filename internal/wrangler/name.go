package wrangler

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/dispatchns/internal/model"
)

// namedConfig captures the single field we read from JSON/JSONC configs.
// encoding/json silently ignores every other field, which is the desired
// behavior — a wrangler config carries dozens of keys this tool does not
// care about.
type namedConfig struct {
	// Name is the worker name, used verbatim as the dispatch namespace name.
	Name string `json:"name"`
}

// tomlNameRegex matches a single-line `name = "value"` assignment in a
// TOML config. First match wins. This is a deliberate textual scan, not a
// TOML parse: it does not understand multi-line strings or tables, and a
// `name` key inside a [table] would match if no earlier line does. That
// matches wrangler.toml files as they exist in the wild, where the worker
// name is the first top-level key.
var tomlNameRegex = regexp.MustCompile(`(?m)^\s*name\s*=\s*"([^"]+)"`)

// ExtractName reads the worker name out of raw config file contents
// according to the declared format.
//
// The return contract distinguishes two non-fatal conditions:
//   - parse failure → non-nil error (the caller logs it and moves on)
//   - file parsed but no name present → ("", nil)
//
// For JSON and JSONC the content is run through jsonc.ToJSON first, which
// strips // line comments, /* */ block comments, and trailing commas
// before the standard encoding/json parse. Plain JSON passes through
// unchanged, so both formats share one path.
func ExtractName(raw []byte, format model.ConfigFormat) (string, error) {
	switch format {
	case model.FormatJSON, model.FormatJSONC:
		return extractNameJSON(raw)
	case model.FormatTOML:
		return extractNameTOML(raw), nil
	default:
		return "", fmt.Errorf("unsupported config format: %q", format)
	}
}

// extractNameJSON parses JSON/JSONC content and returns the top-level
// "name" property, or empty if the property is absent.
func extractNameJSON(raw []byte) (string, error) {
	clean := jsonc.ToJSON(raw)

	var cfg namedConfig
	if err := json.Unmarshal(clean, &cfg); err != nil {
		return "", fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg.Name, nil
}

// extractNameTOML scans TOML content for the first single-line name
// assignment. A scan that finds nothing returns empty — textual scanning
// cannot fail the way a parse can, so there is no error path here.
func extractNameTOML(raw []byte) string {
	m := tomlNameRegex.FindSubmatch(raw)
	if m == nil {
		return ""
	}
	return string(m[1])
}
