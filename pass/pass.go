// Package pass defines the fixed, ordered pipeline of compilation stages and
// the runner that executes them one at a time against a compiler state
// while measuring timing and draining diagnostics.
package pass

import "fray/state"

// Op is one pass's executable body. It may read and mutate st, append
// diagnostics, and raise st.Sub.NumErrors to stop the pipeline. Its return
// value is used purely for the verbose timing report: an item-kind label
// ("tokens", "definitions", ...) and how many of them this pass processed.
type Op func(st *state.CompilerState) (itemKind string, itemCount int)

// Pass pairs a pass operation with its registry name and its human-readable
// description: Name is the key make-mode's list filters by, and Desc is the
// label printed in verbose-mode timing lines.
type Pass struct {
	Name string
	Desc string
	Op   Op
}
