package codegen

import (
	"bytes"
	"strings"
	"testing"

	"fray/state"
)

type bufSink struct {
	bytes.Buffer
}

func (b *bufSink) Close() error   { return nil }
func (b *bufSink) IsStdout() bool { return false }

func TestGenHostCodeEmitsClass(t *testing.T) {
	st := &state.CompilerState{}
	st.Sub.ThisPack = "demo.app"
	st.Sub.SourceDefs = []state.SourceDef{
		{Kind: state.DefValue, Name: "Count", ResolvedType: "Int", LiteralKind: state.TokInt, LiteralValue: "3", Public: true},
		{Kind: state.DefValue, Name: "secret", ResolvedType: "String", LiteralKind: state.TokString, LiteralValue: "shh"},
	}

	sink := &bufSink{}
	st.Gen.Printer = sink

	_, count := GenHostCode(st)
	if count != 2 {
		t.Errorf("GenHostCode() count = %d, want 2", count)
	}

	out := sink.String()
	if !strings.Contains(out, "package demo;") {
		t.Error("expected a package declaration")
	}
	if !strings.Contains(out, "public final class App") {
		t.Error("expected a class named after the module's last segment")
	}
	if !strings.Contains(out, "public static final int Count = 3;") {
		t.Errorf("missing public field; got:\n%s", out)
	}
	if !strings.Contains(out, `private static final String secret = "shh";`) {
		t.Errorf("missing private field; got:\n%s", out)
	}
}

func TestGenMetadataListsExports(t *testing.T) {
	st := &state.CompilerState{}
	st.Sub.ThisPack = "demo"
	st.Sub.SourceDefs = []state.SourceDef{
		{Kind: state.DefValue, Name: "Pub", ResolvedType: "Int", Public: true},
		{Kind: state.DefValue, Name: "priv", ResolvedType: "Int"},
	}

	sink := &bufSink{}
	st.Gen.Printer = sink

	_, count := GenMetadata(st)
	if count != 1 {
		t.Errorf("GenMetadata() count = %d, want 1", count)
	}
	if !strings.Contains(sink.String(), "// export Pub : Int") {
		t.Errorf("missing export comment; got:\n%s", sink.String())
	}
}
