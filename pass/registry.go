package pass

import (
	"fray/codegen"
	"fray/frontend"
	"fray/hostcompile"
	"fray/printer"
	"fray/semantic"
)

// FullRegistry is the fixed, ordered sequence of every compilation stage.
// The driver must preserve this order exactly.
func FullRegistry() []Pass {
	return []Pass{
		{Name: "lexer", Desc: "Lexing", Op: frontend.Lex},
		{Name: "parser", Desc: "Parsing", Op: frontend.Parse},
		{Name: "join-definitions", Desc: "Joining Definitions", Op: semantic.JoinDefinitions},
		{Name: "import-packages", Desc: "Importing Packages", Op: semantic.ImportPackages},
		{Name: "verify-imported-instances", Desc: "Verifying Imported Instances", Op: semantic.VerifyImportedInstances},
		{Name: "enter-definitions", Desc: "Entering Definitions", Op: semantic.EnterDefinitions},
		{Name: "field-definitions", Desc: "Defining Fields", Op: semantic.FieldDefinitions},
		{Name: "type-aliases", Desc: "Resolving Type Aliases", Op: semantic.TypeAliases},
		{Name: "derive-instances", Desc: "Deriving Instances", Op: semantic.DeriveInstances},
		{Name: "resolve-names", Desc: "Resolving Names", Op: semantic.ResolveNames},
		{Name: "verify-class-defs", Desc: "Verifying Class Definitions", Op: semantic.VerifyClassDefs},
		{Name: "verify-own-instances", Desc: "Verifying Own Instances", Op: semantic.VerifyOwnInstances},
		{Name: "simplify-lets", Desc: "Simplifying Lets", Op: semantic.SimplifyLets},
		{Name: "type-check", Desc: "Type Checking", Op: semantic.TypeCheck},
		{Name: "simplify-expressions", Desc: "Simplifying Expressions", Op: semantic.SimplifyExpressions},
		{Name: "globalize-lambdas", Desc: "Globalizing Lambdas", Op: semantic.GlobalizeLambdas},
		{Name: "strictness-analysis", Desc: "Analyzing Strictness", Op: semantic.StrictnessAnalysis},
		{Name: "open-printer", Desc: "Opening Output", Op: printer.Open},
		{Name: "gen-metadata", Desc: "Generating Metadata", Op: codegen.GenMetadata},
		{Name: "gen-host-code", Desc: "Generating Host Code", Op: codegen.GenHostCode},
		{Name: "close-printer", Desc: "Closing Output", Op: printer.Close},
		{Name: "run-host-compiler", Desc: "Running Host Compiler", Op: hostcompile.RunPass},
		{Name: "clean-symbol-table", Desc: "Cleaning Symbol Table", Op: semantic.CleanSymbolTable},
	}
}

// MakeModeList is the full registry with the lexer and parser removed
// (make mode lexes and parses each module itself, see makemode.Builder) and
// with run-host-compiler removed (make mode batches the host compile once
// at the end, see hostcompile.RunBatch).
func MakeModeList() []Pass {
	full := FullRegistry()
	out := make([]Pass, 0, len(full))
	for _, p := range full {
		if p.Name == "lexer" || p.Name == "parser" || p.Name == "run-host-compiler" {
			continue
		}
		out = append(out, p)
	}
	return out
}
