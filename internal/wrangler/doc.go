// Package wrangler locates and reads wrangler configuration files.
//
// Wrangler accepts its configuration in three formats, and this package
// consults them in the same priority order wrangler does:
//
//   - wrangler.jsonc (JSON with Comments)
//   - wrangler.json  (plain JSON)
//   - wrangler.toml  (TOML)
//
// The only field this tool needs is the top-level "name" — the worker
// name that doubles as the dispatch namespace name. JSON/JSONC files are
// parsed via github.com/tidwall/jsonc + encoding/json; TOML files are
// scanned textually for a single-line name assignment (see name.go for
// why a full TOML parser is not used).
//
// A config file that exists but cannot yield a name is never fatal on its
// own: the resolver records the reason and falls through to the next
// candidate. Only exhausting every candidate is an error.
package wrangler
