package semantic

import (
	"testing"

	"fray/state"
)

func defState(defs ...state.SourceDef) *state.CompilerState {
	st := &state.CompilerState{}
	st.Sub.ThisPack = "demo"
	st.Sub.SourceDefs = defs
	return st
}

func TestJoinDefinitionsRejectsDuplicates(t *testing.T) {
	st := defState(
		state.SourceDef{Kind: state.DefValue, Name: "x"},
		state.SourceDef{Kind: state.DefValue, Name: "x"},
	)
	JoinDefinitions(st)
	if !st.HasErrors() {
		t.Error("JoinDefinitions() should reject a duplicate top-level name")
	}
}

func TestImportPackagesRejectsBadName(t *testing.T) {
	st := defState(state.SourceDef{Kind: state.DefImport, Name: "bad..name"})
	ImportPackages(st)
	if !st.HasErrors() {
		t.Error("ImportPackages() should reject a malformed module name")
	}
}

func TestImportPackagesWarnsOnDuplicate(t *testing.T) {
	st := defState(
		state.SourceDef{Kind: state.DefImport, Name: "a.b"},
		state.SourceDef{Kind: state.DefImport, Name: "a.b"},
	)
	_, count := ImportPackages(st)
	if count != 1 {
		t.Errorf("ImportPackages() count = %d, want 1", count)
	}
	if st.HasErrors() {
		t.Error("a duplicate import should warn, not error")
	}
}

func TestEnterDefinitionsPublicVisibility(t *testing.T) {
	st := defState(
		state.SourceDef{Kind: state.DefValue, Name: "Public"},
		state.SourceDef{Kind: state.DefValue, Name: "private"},
	)
	EnterDefinitions(st)

	if !st.Sub.Symbols["Public"].Public {
		t.Error("capitalized name should be public")
	}
	if st.Sub.Symbols["private"].Public {
		t.Error("lowercase name should not be public")
	}
}

func TestResolveNamesUndefinedReference(t *testing.T) {
	st := defState(state.SourceDef{Kind: state.DefValue, Name: "x", RefName: "missing"})
	EnterDefinitions(st)
	ResolveNames(st)

	if !st.HasErrors() {
		t.Error("ResolveNames() should reject a reference to an undefined name")
	}
}

func TestResolveNamesDetectsCycle(t *testing.T) {
	st := defState(
		state.SourceDef{Kind: state.DefValue, Name: "a", RefName: "b"},
		state.SourceDef{Kind: state.DefValue, Name: "b", RefName: "a"},
	)
	EnterDefinitions(st)
	ResolveNames(st)

	if !st.HasErrors() {
		t.Error("ResolveNames() should detect a reference cycle")
	}
}

func TestCleanSymbolTableReleasesSymbols(t *testing.T) {
	st := defState(state.SourceDef{Kind: state.DefValue, Name: "x"})
	EnterDefinitions(st)
	if st.Sub.Symbols == nil {
		t.Fatal("expected symbols to be populated")
	}
	CleanSymbolTable(st)
	if st.Sub.Symbols != nil {
		t.Error("CleanSymbolTable() should nil out the symbol table")
	}
}
