package semantic

import (
	"fmt"
	"unicode"

	"fray/logging"
	"fray/state"
)

// EnterDefinitions builds the module's flat top-level symbol table and
// computes each definition's visibility (a capitalized name is public, by
// convention grounded in the surface language's export rule).
func EnterDefinitions(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)
	st.Sub.Symbols = make(map[string]*state.SourceDef, len(st.Sub.SourceDefs))

	count := 0
	for i := range st.Sub.SourceDefs {
		def := &st.Sub.SourceDefs[i]
		if def.Kind != state.DefValue {
			continue
		}

		if _, ok := st.Sub.Symbols[def.Name]; ok {
			// Already reported by JoinDefinitions; skip re-reporting.
			continue
		}

		runes := []rune(def.Name)
		def.Public = len(runes) > 0 && unicode.IsUpper(runes[0])
		st.Sub.Symbols[def.Name] = def
		count++
	}

	if st.Sub.NumErrors == 0 && count == 0 && len(st.Sub.SourceDefs) == 0 {
		st.RaiseWarning(lctx, "module defines nothing", logging.LMKDef, nil)
	}

	return "symbols", count
}

// FieldDefinitions would populate record/class field tables; this grammar
// has no record types, so it is a documented no-op.
func FieldDefinitions(st *state.CompilerState) (string, int) {
	return "fields", 0
}

// TypeAliases would register `type X = Y` aliases; not part of this
// grammar, so a documented no-op.
func TypeAliases(st *state.CompilerState) (string, int) {
	return "aliases", 0
}

// DeriveInstances would synthesize type-class instances; not applicable
// without type classes, so a documented no-op.
func DeriveInstances(st *state.CompilerState) (string, int) {
	return "instances", 0
}

// ResolveNames resolves every `def x = y` reference to its target symbol
// and rejects references to undefined names or to a reference cycle.
func ResolveNames(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)
	resolved := 0

	for i := range st.Sub.SourceDefs {
		def := &st.Sub.SourceDefs[i]
		if def.Kind != state.DefValue || def.RefName == "" {
			continue
		}

		if _, ok := st.Sub.Symbols[def.RefName]; !ok {
			pos := def.Pos
			st.RaiseError(lctx, fmt.Sprintf("`%s` is not defined", def.RefName), logging.LMKName, &pos)
			continue
		}

		if chainHasCycle(st.Sub.Symbols, def.Name, def.RefName, map[string]bool{def.Name: true}) {
			pos := def.Pos
			st.RaiseError(lctx, fmt.Sprintf("definition of `%s` is circular", def.Name), logging.LMKName, &pos)
			continue
		}

		resolved++
	}

	return "names", resolved
}

func chainHasCycle(symbols map[string]*state.SourceDef, origin, next string, visited map[string]bool) bool {
	if visited[next] {
		return next == origin
	}
	visited[next] = true

	target, ok := symbols[next]
	if !ok || target.RefName == "" {
		return false
	}
	return chainHasCycle(symbols, origin, target.RefName, visited)
}

// VerifyClassDefs would check type-class method completeness; not
// applicable without type classes, so a documented no-op.
func VerifyClassDefs(st *state.CompilerState) (string, int) {
	return "classes", 0
}

// VerifyOwnInstances would check a module's own instance declarations for
// conflicts; not applicable without type classes, so a documented no-op.
func VerifyOwnInstances(st *state.CompilerState) (string, int) {
	return "instances", 0
}

// CleanSymbolTable releases the symbol table once code generation no longer
// needs it. It is the pipeline's final pass.
func CleanSymbolTable(st *state.CompilerState) (string, int) {
	n := len(st.Sub.Symbols)
	st.Sub.Symbols = nil
	return "symbols", n
}
