package semantic

import (
	"fmt"

	"fray/logging"
	"fray/state"
)

// SimplifyLets constant-folds a reference chain: `def a = b` where b is
// already bound to a literal gets a's literal inlined directly, the way a
// `let`-introduced alias is flattened before type inference. Chains are
// walked to their ultimate literal, with the cycle case left for
// ResolveNames to have already reported.
func SimplifyLets(st *state.CompilerState) (string, int) {
	folded := 0

	for i := range st.Sub.SourceDefs {
		def := &st.Sub.SourceDefs[i]
		if def.Kind != state.DefValue || def.RefName == "" {
			continue
		}

		lit, kind, ok := resolveLiteral(st.Sub.Symbols, def.RefName, map[string]bool{def.Name: true})
		if ok {
			def.LiteralValue = lit
			def.LiteralKind = kind
			def.RefName = ""
			folded++
		}
	}

	return "bindings", folded
}

func resolveLiteral(symbols map[string]*state.SourceDef, name string, visited map[string]bool) (string, state.TokenKind, bool) {
	if visited[name] {
		return "", 0, false
	}
	visited[name] = true

	def, ok := symbols[name]
	if !ok {
		return "", 0, false
	}
	if def.RefName == "" {
		return def.LiteralValue, def.LiteralKind, true
	}
	return resolveLiteral(symbols, def.RefName, visited)
}

// TypeCheck assigns each definition a resolved type from its literal kind
// (or, for an unfolded reference, from its target's resolved type).
func TypeCheck(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)
	checked := 0

	for i := range st.Sub.SourceDefs {
		def := &st.Sub.SourceDefs[i]
		if def.Kind != state.DefValue {
			continue
		}

		if def.RefName != "" {
			target, ok := st.Sub.Symbols[def.RefName]
			if !ok || target.ResolvedType == "" {
				pos := def.Pos
				st.RaiseError(lctx, fmt.Sprintf("cannot infer a type for `%s`", def.Name), logging.LMKTyping, &pos)
				continue
			}
			def.ResolvedType = target.ResolvedType
		} else {
			def.ResolvedType = typeNameOf(def.LiteralKind)
		}
		checked++
	}

	return "definitions", checked
}

func typeNameOf(k state.TokenKind) string {
	switch k {
	case state.TokInt:
		return "Int"
	case state.TokString:
		return "String"
	case state.TokBool:
		return "Bool"
	default:
		return "Unit"
	}
}

// SimplifyExpressions would reduce constant subexpressions within function
// bodies; this grammar has no expression bodies beyond a single literal or
// reference (already folded by SimplifyLets), so it is a documented no-op.
func SimplifyExpressions(st *state.CompilerState) (string, int) {
	return "expressions", 0
}

// GlobalizeLambdas would lift closures captured by nested lambdas into
// top-level functions; this grammar has no lambdas, so it is a documented
// no-op.
func GlobalizeLambdas(st *state.CompilerState) (string, int) {
	return "lambdas", 0
}

// StrictnessAnalysis flags definitions that are never referenced by any
// other definition in the file as a (non-fatal) dead-code warning.
func StrictnessAnalysis(st *state.CompilerState) (string, int) {
	lctx := lctxFor(st)

	used := make(map[string]bool)
	for _, def := range st.Sub.SourceDefs {
		if def.RefName != "" {
			used[def.RefName] = true
		}
	}

	flagged := 0
	for _, def := range st.Sub.SourceDefs {
		if def.Kind != state.DefValue || def.Public || used[def.Name] {
			continue
		}
		pos := def.Pos
		st.RaiseWarning(lctx, fmt.Sprintf("`%s` is never used", def.Name), logging.LMKDef, &pos)
		flagged++
	}

	return "definitions", flagged
}
