package hostcompile

import (
	"os"
	"testing"

	"fray/common"
	"fray/state"
)

func TestCommandPrefixForDefault(t *testing.T) {
	os.Unsetenv(common.HostCompilerEnvVar)
	got := commandPrefixFor(state.Options{})
	if len(got) != 1 || got[0] != common.DefaultHostCompiler {
		t.Errorf("commandPrefixFor() = %v, want [%s]", got, common.DefaultHostCompiler)
	}
}

func TestCommandPrefixForEnvOverride(t *testing.T) {
	os.Setenv(common.HostCompilerEnvVar, "javac -Xlint:all")
	defer os.Unsetenv(common.HostCompilerEnvVar)

	got := commandPrefixFor(state.Options{})
	want := []string{"javac", "-Xlint:all"}
	if len(got) != len(want) {
		t.Fatalf("commandPrefixFor() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("commandPrefixFor()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCommandPrefixForExplicitOverride(t *testing.T) {
	os.Setenv(common.HostCompilerEnvVar, "should-be-ignored")
	defer os.Unsetenv(common.HostCompilerEnvVar)

	got := commandPrefixFor(state.Options{HostCompilerOverride: []string{"my-javac"}})
	if len(got) != 1 || got[0] != "my-javac" {
		t.Errorf("commandPrefixFor() = %v, want [my-javac]", got)
	}
}

func TestAssembleArgs(t *testing.T) {
	args := assembleArgs([]string{"javac"}, []string{"a", "b"}, []string{"src"}, "out", []string{"A.java"})

	for _, want := range []string{"-cp", "-d", "out", "-sourcepath", "src", "-encoding", "UTF-8", "A.java"} {
		if !contains(args, want) {
			t.Errorf("assembleArgs() = %v, missing %q", args, want)
		}
	}
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func TestRunBatchEmptyTargetsIsNoop(t *testing.T) {
	if err := RunBatch(state.Options{}, nil); err != nil {
		t.Errorf("RunBatch() with no targets should be a no-op, got %v", err)
	}
}
