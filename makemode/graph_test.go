package makemode

import (
	"os"
	"path/filepath"
	"testing"

	"fray/logging"
	"fray/state"
)

func writeModule(t *testing.T, dir, rel, contents string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildInsertsRootAndCheckUpdateDeps(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "root.fray", "module root\nimport leaf\ndef X = 1\n")
	writeModule(t, dir, "leaf.fray", "module leaf\ndef Y = 2\n")

	opts := state.Options{SourcePath: []string{dir}, OutputDir: filepath.Join(dir, "build")}
	b := NewBuilder(opts)

	var q logging.MessageQueue
	if err := b.Build([]string{filepath.Join(dir, "root.fray")}, &q); err != nil {
		t.Fatalf("Build() error: %v (queue: %d messages)", err, q.Len())
	}

	entries := b.Entries()
	if len(entries) != 2 {
		t.Fatalf("Build() recorded %d entries, want 2", len(entries))
	}

	if entries[0].ID.String() != "root" || entries[0].Kind != CompileAfterDeps {
		t.Errorf("root entry = %+v, want CompileAfterDeps root", entries[0])
	}
	if entries[1].ID.String() != "leaf" || entries[1].Kind != CheckUpdate {
		t.Errorf("leaf entry = %+v, want CheckUpdate leaf (not yet located/parsed)", entries[1])
	}
}

func TestRunDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.fray", "module a\nimport b\ndef X = 1\n")
	writeModule(t, dir, "b.fray", "module b\nimport a\ndef Y = 2\n")

	opts := state.Options{SourcePath: []string{dir}, OutputDir: filepath.Join(dir, "build")}
	b := NewBuilder(opts)

	var q logging.MessageQueue
	if err := b.Build([]string{filepath.Join(dir, "a.fray")}, &q); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logging.Init(logging.LogLevelSilent)
	if Run(b, opts, &q) {
		t.Fatal("Run() should fail on a dependency cycle between a and b")
	}
	if q.ErrorCount() == 0 {
		t.Error("Run() should report the cycle as a diagnostic")
	}
}

func TestRunReportsUnresolvedDependency(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "root.fray", "module root\nimport missing.dep\ndef X = 1\n")

	opts := state.Options{SourcePath: []string{dir}, OutputDir: filepath.Join(dir, "build")}
	b := NewBuilder(opts)

	var q logging.MessageQueue
	if err := b.Build([]string{filepath.Join(dir, "root.fray")}, &q); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	logging.Init(logging.LogLevelSilent)
	if Run(b, opts, &q) {
		t.Fatal("Run() should fail when a dependency cannot be located")
	}
	if q.ErrorCount() == 0 {
		t.Error("Run() should report the unresolved dependency as a diagnostic")
	}
}
