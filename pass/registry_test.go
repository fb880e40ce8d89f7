package pass

import "testing"

func TestFullRegistryOrderAndNames(t *testing.T) {
	list := FullRegistry()
	if len(list) != 23 {
		t.Fatalf("FullRegistry() has %d passes, want 23", len(list))
	}
	if list[0].Name != "lexer" || list[1].Name != "parser" {
		t.Errorf("registry must start with lexer, parser; got %s, %s", list[0].Name, list[1].Name)
	}
	if list[len(list)-1].Name != "clean-symbol-table" {
		t.Errorf("registry must end with clean-symbol-table; got %s", list[len(list)-1].Name)
	}
	for _, p := range list {
		if p.Op == nil {
			t.Errorf("pass %q has a nil Op", p.Name)
		}
	}
}

func TestMakeModeListDropsLexerParserAndHostCompiler(t *testing.T) {
	list := MakeModeList()
	if len(list) != len(FullRegistry())-3 {
		t.Fatalf("MakeModeList() has %d passes, want %d", len(list), len(FullRegistry())-3)
	}
	for _, p := range list {
		if p.Name == "lexer" || p.Name == "parser" || p.Name == "run-host-compiler" {
			t.Errorf("MakeModeList() should not contain %q", p.Name)
		}
	}
}
