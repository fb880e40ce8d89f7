package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "fray-mod.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadModuleBasic(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[module]
name = "demo"

[[module.profiles]]
name = "debug"
output = "build"
default = true
`)

	mod, err := LoadModule(dir)
	if err != nil {
		t.Fatalf("LoadModule() error: %v", err)
	}
	if mod.Name != "demo" {
		t.Errorf("Name = %q, want demo", mod.Name)
	}
	if len(mod.Profiles) != 1 || mod.Profiles[0].OutputPath != "build" {
		t.Errorf("Profiles = %+v", mod.Profiles)
	}
}

func TestLoadModuleInvalidName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[module]
name = "1bad"
`)

	if _, err := LoadModule(dir); err == nil {
		t.Error("LoadModule() should reject an invalid module name")
	}
}

func TestLoadModuleMissing(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadModule(dir); err == nil {
		t.Error("LoadModule() should fail when no manifest exists")
	}
}

func TestSelectProfileDefault(t *testing.T) {
	m := &Module{Name: "demo", Profiles: []Profile{
		{Name: "debug"},
		{Name: "release", Default: true},
	}}

	p, err := m.SelectProfile("")
	if err != nil {
		t.Fatalf("SelectProfile() error: %v", err)
	}
	if p.Name != "release" {
		t.Errorf("SelectProfile() = %q, want release", p.Name)
	}
}

func TestSelectProfileSole(t *testing.T) {
	m := &Module{Name: "demo", Profiles: []Profile{{Name: "only"}}}

	p, err := m.SelectProfile("")
	if err != nil {
		t.Fatalf("SelectProfile() error: %v", err)
	}
	if p.Name != "only" {
		t.Errorf("SelectProfile() = %q, want only", p.Name)
	}
}

func TestSelectProfileAmbiguous(t *testing.T) {
	m := &Module{Name: "demo", Profiles: []Profile{{Name: "a"}, {Name: "b"}}}

	if _, err := m.SelectProfile(""); err == nil {
		t.Error("SelectProfile() should error when profiles are ambiguous")
	}
}

func TestSelectProfileByName(t *testing.T) {
	m := &Module{Name: "demo", Profiles: []Profile{{Name: "a"}, {Name: "b"}}}

	p, err := m.SelectProfile("b")
	if err != nil {
		t.Fatalf("SelectProfile() error: %v", err)
	}
	if p.Name != "b" {
		t.Errorf("SelectProfile() = %q, want b", p.Name)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"a", "abc", "_priv", "A1_b"}
	invalid := []string{"", "1abc", "a-b", "a.b"}

	for _, v := range valid {
		if !IsValidIdentifier(v) {
			t.Errorf("IsValidIdentifier(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidIdentifier(v) {
			t.Errorf("IsValidIdentifier(%q) = true, want false", v)
		}
	}
}
