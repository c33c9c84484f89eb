// Package domain contains the core model for lpdash.
//
// The domain is solver- and UI-agnostic: it does not depend on os/exec, terminal
// rendering, image encoding, or YAML parsing. Infra/adapters map into/from these types.
package domain
