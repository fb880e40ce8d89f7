// Package depgraph provides the canonical module-identity type and the
// dependency-extraction contract the make orchestrator relies on.
package depgraph

import "strings"

// ID is the canonical identity of a module: two dotted names refer to the
// same module iff their IDs compare equal. Canonicalization lower-cases the
// name, since the driver trusts this equality for deduplication and the
// surface language is not assumed to be case sensitive in module naming.
type ID string

// Canon canonicalizes a dotted module name into an ID.
func Canon(dottedName string) ID {
	return ID(strings.ToLower(strings.TrimSpace(dottedName)))
}

// String returns the dotted-name form (post-canonicalization) for display.
func (id ID) String() string { return string(id) }

// SlashPath converts a module identity into a relative, slash-separated
// path component, as used by the printer manager and host-compiler target
// naming: `a.b.c` -> `a/b/c`.
func (id ID) SlashPath() string {
	return strings.ReplaceAll(string(id), ".", "/")
}
