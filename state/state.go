package state

import (
	"io"

	"fray/logging"
)

// TokenKind enumerates the lexical categories frontend.Lex produces.
type TokenKind int

const (
	TokModule TokenKind = iota
	TokImport
	TokDef
	TokIdent
	TokAssign
	TokInt
	TokString
	TokBool
	TokNewline
	TokEOF
)

// Token is one lexeme, with enough position information for diagnostics.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
	Col   int
}

// DefKind enumerates the shapes of a top-level source definition.
type DefKind int

const (
	DefImport DefKind = iota
	DefValue
)

// SourceDef is one top-level definition extracted by frontend.Parse. The
// grammar is deliberately small: a `def` binds a name to either a literal
// or a reference to another name; an `import` names a dependency module.
type SourceDef struct {
	Kind DefKind
	Name string // bound name (DefValue) or imported module name (DefImport)
	Pos  logging.TextPosition

	// DefValue fields, filled by the parser:
	LiteralKind  TokenKind // TokInt, TokString, or TokBool when RefName == ""
	LiteralValue string
	RefName      string // non-empty if the value is a reference to another def

	// Filled by the semantic passes:
	ResolvedType string // "Int", "String", "Bool"; set by type-check
	Public       bool   // set by enter-definitions (capitalized name)
}

// Sink is the interface the printer manager installs into Gen.Printer: an
// open host-source output stream that can be force-closed on a pass error.
type Sink interface {
	io.Writer
	Close() error
	IsStdout() bool
}

// SubState is the per-module compilation data threaded through the pass
// pipeline (spec's `sub.*` fields).
type SubState struct {
	Tokens     []Token
	SourceDefs []SourceDef
	ThisPack   string // module name as declared by this unit's `module` line; depgraph.Canon gives its identity
	Messages   logging.MessageQueue
	NumErrors  int

	// Symbols is the flat top-level symbol table built by enter-definitions,
	// consulted by resolve-names and type-check, and released by
	// clean-symbol-table at the end of the pipeline.
	Symbols map[string]*SourceDef
}

// GenState holds code-generation-phase data (spec's `gen.*` fields).
type GenState struct {
	Printer Sink
}

// CompilerState ("G") is the mutable record threaded through every pass for
// one module. A state is never shared or reused across modules.
type CompilerState struct {
	Options Options
	Sub     SubState
	Gen     GenState
}

// New creates a fresh compiler state for the given options, with Source
// overridden to sourcePath.
func New(opts Options, sourcePath string) *CompilerState {
	o := opts.Clone()
	o.Source = sourcePath
	return &CompilerState{Options: o}
}

// RaiseError appends an error-severity message and increments NumErrors, so
// NumErrors counts every error raised on this state, including errors whose
// messages have already been drained.
func (st *CompilerState) RaiseError(lctx *logging.LogContext, message string, kind int, pos *logging.TextPosition) {
	logging.LogCompileError(&st.Sub.Messages, lctx, message, kind, pos)
	st.Sub.NumErrors++
}

// RaiseWarning appends a warning-severity message without affecting
// NumErrors.
func (st *CompilerState) RaiseWarning(lctx *logging.LogContext, message string, kind int, pos *logging.TextPosition) {
	logging.LogCompileWarning(&st.Sub.Messages, lctx, message, kind, pos)
}

// HasErrors reports whether this module's pipeline should stop: no pass but
// diagnostic reporting may run while this is true.
func (st *CompilerState) HasErrors() bool {
	return st.Sub.NumErrors > 0
}
