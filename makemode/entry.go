// Package makemode implements the dependency-aware build orchestrator:
// given a set of root inputs, it builds the transitive module dependency
// graph on demand (resolving and parsing a module only once some other
// module is found to need it), detects reference cycles, and runs the
// make-mode pass list on every module once its dependencies have finished,
// closing with a single batched host-compiler invocation.
package makemode

import (
	"fray/depgraph"
	"fray/state"
)

// Kind distinguishes the two shapes a todo entry can take.
type Kind int

// Reason records why a module ended up in the todo set, for diagnostics.
type Reason int

const (
	// ReasonRoot means the module was named directly on the command line.
	ReasonRoot Reason = iota

	// ReasonDependency means the module was discovered because some other
	// module in the todo set imports it.
	ReasonDependency
)

func (r Reason) String() string {
	if r == ReasonRoot {
		return "command-line root"
	}
	return "dependent of another module"
}

const (
	// CheckUpdate is a placeholder: the module's identity is known (named
	// directly as a root, or discovered as another module's import) but it
	// has not yet been located and parsed. A worker promotes it to
	// CompileAfterDeps before it can run.
	CheckUpdate Kind = iota

	// CompileAfterDeps is a module that has been parsed: State and Deps are
	// populated, and it is ready to run the make-mode pass list once every
	// dependency in Deps has finished. A CompileAfterDeps entry is never
	// downgraded back to CheckUpdate.
	CompileAfterDeps
)

// Entry is one node of the orchestrator's work set, keyed by module
// identity.
type Entry struct {
	Kind       Kind
	Reason     Reason
	ID         depgraph.ID
	SourcePath string // known once located; may be empty for an as-yet-unresolved CheckUpdate
	Deps       []depgraph.ID
	State      *state.CompilerState
}
