package printer

import (
	"os"
	"path/filepath"
	"testing"

	"fray/state"
)

func TestTargetPath(t *testing.T) {
	got := TargetPath("/out", "a.b.c")
	want := filepath.Join("/out", "a", "b", "c.java")
	if got != want {
		t.Errorf("TargetPath() = %q, want %q", got, want)
	}
}

func TestOpenWritesFileAndBanner(t *testing.T) {
	dir := t.TempDir()
	st := &state.CompilerState{Options: state.Options{OutputDir: dir, Source: filepath.Join(dir, "a.fray")}}
	st.Sub.ThisPack = "a.b"

	if _, count := Open(st); count != 1 {
		t.Fatalf("Open() returned count %d, want 1", count)
	}
	if st.HasErrors() {
		t.Fatalf("Open() raised errors: %d", st.Sub.NumErrors)
	}

	if _, count := Close(st); count != 1 {
		t.Fatalf("Close() returned count %d, want 1", count)
	}

	target := TargetPath(dir, "a.b")
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("could not read generated file: %v", err)
	}
	if len(data) == 0 {
		t.Error("generated file is empty, want a version banner")
	}
	if !st.Gen.Printer.IsStdout() {
		t.Error("after Close, Gen.Printer should be reset to Stdout")
	}
}

func TestOpenStdout(t *testing.T) {
	st := &state.CompilerState{Options: state.Options{Source: "-"}}
	st.Sub.ThisPack = "a.b"

	Open(st)
	if !st.Gen.Printer.IsStdout() {
		t.Error("Open() with Source \"-\" should install the Stdout sink")
	}
}
