// Package semantic implements the passes the driver runs between parsing
// and code generation: join-definitions through strictness-analysis, plus
// the closing clean-symbol-table stage. The surface language's real
// semantics (generics, type classes, pattern matching) are out of scope;
// these passes implement enough real behavior over the minimal `def`/
// `import` grammar frontend produces to exercise every stage's contract:
// duplicate detection, name resolution, constant folding, and a small type
// inference. Passes with nothing to do at this grammar size are documented
// no-ops rather than omitted, so the registry's shape still matches a full
// compiler's pass pipeline exactly.
package semantic

import (
	"fmt"

	"fray/logging"
	"fray/state"
)

func lctxFor(st *state.CompilerState) *logging.LogContext {
	return &logging.LogContext{ModuleName: st.Sub.ThisPack, FilePath: st.Options.Source}
}

// JoinDefinitions merges per-file definitions into the module's definition
// list. Since every compiler state here holds exactly one file, there is
// nothing to merge across files; it instead rejects a top-level name
// declared more than once within the file, which is the cross-file check's
// single-file degenerate case.
func JoinDefinitions(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)
	seen := make(map[string]state.SourceDef)

	for _, def := range st.Sub.SourceDefs {
		if def.Kind != state.DefValue {
			continue
		}
		if prior, ok := seen[def.Name]; ok {
			pos := def.Pos
			st.RaiseError(lctx, fmt.Sprintf("`%s` is defined multiple times (first at line %d)", def.Name, prior.Pos.StartLn), logging.LMKDef, &pos)
			continue
		}
		seen[def.Name] = def
	}

	return "definitions", len(seen)
}

// ImportPackages validates each import statement's module name is
// well-formed and rejects duplicate imports of the same module.
func ImportPackages(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)
	seen := make(map[string]bool)
	count := 0

	for _, def := range st.Sub.SourceDefs {
		if def.Kind != state.DefImport {
			continue
		}
		if !isValidDottedName(def.Name) {
			pos := def.Pos
			st.RaiseError(lctx, fmt.Sprintf("`%s` is not a valid module name", def.Name), logging.LMKImport, &pos)
			continue
		}
		if seen[def.Name] {
			pos := def.Pos
			st.RaiseWarning(lctx, fmt.Sprintf("module `%s` imported more than once", def.Name), logging.LMKImport, &pos)
			continue
		}
		seen[def.Name] = true
		count++
	}

	return "imports", count
}

// VerifyImportedInstances would check instance coherence across imported
// modules for a type-class-bearing surface language; this grammar has no
// instances, so it is a documented no-op.
func VerifyImportedInstances(st *state.CompilerState) (string, int) {
	return "instances", 0
}

func isValidDottedName(name string) bool {
	if name == "" {
		return false
	}
	segStart := true
	for _, r := range name {
		switch {
		case r == '.':
			if segStart {
				return false
			}
			segStart = true
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			segStart = false
		default:
			return false
		}
	}
	return !segStart
}
