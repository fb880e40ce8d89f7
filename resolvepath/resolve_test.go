package resolvepath

import (
	"os"
	"path/filepath"
	"testing"

	"fray/logging"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveExistingFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.fray")
	writeFile(t, f, "module a\n")

	var q logging.MessageQueue
	items := Resolve([]string{f}, nil, &q)

	if len(items) != 1 || items[0].FilePath != f {
		t.Fatalf("Resolve() = %+v, want single item for %s", items, f)
	}
	if q.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", q.Len())
	}
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.fray"), "module a\n")
	writeFile(t, filepath.Join(dir, "sub", "b.fray"), "module b\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignore me\n")

	var q logging.MessageQueue
	items := Resolve([]string{dir}, nil, &q)

	if len(items) != 2 {
		t.Fatalf("Resolve() returned %d items, want 2: %+v", len(items), items)
	}
}

func TestResolveModuleNameOnSourcePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b.fray"), "module a.b\n")

	var q logging.MessageQueue
	items := Resolve([]string{"a.b"}, []string{dir}, &q)

	if len(items) != 1 {
		t.Fatalf("Resolve() = %+v, want single item", items)
	}
	if !items[0].IsModule {
		t.Error("expected IsModule to be true for a resolved module name")
	}
	if want := filepath.Join(dir, "a", "b.fray"); items[0].FilePath != want {
		t.Errorf("FilePath = %q, want %q", items[0].FilePath, want)
	}
}

func TestResolveUnresolvableModuleName(t *testing.T) {
	var q logging.MessageQueue
	items := Resolve([]string{"missing.module"}, []string{t.TempDir()}, &q)

	if items != nil {
		t.Errorf("Resolve() = %+v, want nil", items)
	}
	if q.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", q.ErrorCount())
	}
}

func TestResolveAbsoluteFraySuffixIsRejected(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "x.fray")

	var q logging.MessageQueue
	items := Resolve([]string{abs}, nil, &q)

	if items != nil {
		t.Errorf("Resolve() = %+v, want nil for a nonexistent absolute path", items)
	}
	if q.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", q.ErrorCount())
	}
}

func TestItemPathIDStable(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.fray")
	writeFile(t, f, "module a\n")

	var q logging.MessageQueue
	first := Resolve([]string{f}, nil, &q)
	second := Resolve([]string{f}, nil, &q)

	if first[0].PathID != second[0].PathID {
		t.Error("PathID should be stable across resolutions of the same path")
	}
	if first[0].PathID == 0 {
		t.Error("PathID should not be zero for a real path")
	}
}
