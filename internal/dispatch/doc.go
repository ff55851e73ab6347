// Package dispatch creates Workers for Platforms dispatch namespaces by
// invoking the wrangler CLI.
//
// Design decisions:
//   - We shell out to `npx wrangler` rather than talking to the Cloudflare
//     API directly because wrangler owns the account credential resolution
//     (CLOUDFLARE_API_TOKEN, wrangler login state) and its CLI surface is
//     the supported contract for dispatch namespaces.
//   - The command result is classified into three outcomes rather than
//     propagated as an error: a namespace that already exists is success,
//     and any other failure is a soft warning so that downstream deploy
//     steps can still run.
//   - No timeout is imposed beyond the caller's context; wrangler applies
//     its own network timeouts.
package dispatch
