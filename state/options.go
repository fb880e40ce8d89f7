// Package state defines the compiler's mutable, per-module state (`G` in
// the driver's design) and the options threaded into it.
package state

// Options is the user-supplied configuration threaded into every compiler
// state. It is shared read-mostly data: the driver copies it into each
// fresh CompilerState, updating only Source per module.
type Options struct {
	// Make enables the make-mode dependency orchestrator instead of the
	// plain single-file driver.
	Make bool

	// Verbose enables per-pass timing lines.
	Verbose bool

	// IDEMode retains diagnostics on the state instead of printing them at
	// pass boundaries.
	IDEMode bool

	// RunHostCompiler enables the run-host-compiler pass.
	RunHostCompiler bool

	// OutputDir is the root directory under which generated host source
	// (and, if RunHostCompiler, compiled class files) are written.
	OutputDir string

	// SourcePath is the ordered list of directories consulted when
	// resolving a bare source-relative path or module name.
	SourcePath []string

	// Source is the path to the file currently being compiled, or "-" to
	// direct emission to standard output. Set per module by whichever
	// driver is running, never shared between concurrent states.
	Source string

	// ClassPath is forwarded to the host compiler's -cp.
	ClassPath []string

	// HostCompilerOverride, if non-empty, is a command vector (already
	// split on whitespace) that replaces the default host-compiler binary.
	HostCompilerOverride []string
}

// Clone returns a copy of o suitable for handing to a new CompilerState;
// Source is left as-is and expected to be overwritten by the caller.
func (o Options) Clone() Options {
	cp := o
	cp.SourcePath = append([]string(nil), o.SourcePath...)
	cp.ClassPath = append([]string(nil), o.ClassPath...)
	cp.HostCompilerOverride = append([]string(nil), o.HostCompilerOverride...)
	return cp
}
