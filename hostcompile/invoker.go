// Package hostcompile assembles the argument vector for the external host
// compiler and runs it, reporting a non-zero exit as a diagnostic.
package hostcompile

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"fray/common"
	"fray/logging"
	"fray/printer"
	"fray/state"
)

// commandPrefix resolves the host-compiler binary: FRAY_JAVAC (or an
// explicit per-state override) takes precedence over the built-in default,
// split on whitespace to yield the command vector prefix.
func commandPrefix(st *state.CompilerState) []string {
	return commandPrefixFor(st.Options)
}

func assembleArgs(prefix []string, classPath, sourcePath []string, outputDir string, targets []string) []string {
	args := append([]string{}, prefix[1:]...)
	args = append(args,
		"-cp", strings.Join(classPath, string(os.PathListSeparator)),
		"-d", outputDir,
		"-sourcepath", strings.Join(sourcePath, string(os.PathListSeparator)),
		"-encoding", "UTF-8",
	)
	return append(args, targets...)
}

func run(prefix []string, args []string) (int, error) {
	cmd := exec.Command(prefix[0], args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// RunPass is the run-host-compiler stage of the full single-file registry:
// it compiles just the one file this module emitted. It only runs when
// st.Options.RunHostCompiler is set; otherwise it is a no-op so the pass
// still appears in verbose timing output at zero cost.
func RunPass(st *state.CompilerState) (string, int) {
	if !st.Options.RunHostCompiler {
		return "files", 0
	}

	target := printer.TargetPath(st.Options.OutputDir, st.Sub.ThisPack)

	if err := invokeAndReport(st, []string{target}); err != nil {
		lctx := &logging.LogContext{ModuleName: st.Sub.ThisPack, FilePath: st.Options.Source}
		st.RaiseError(lctx, err.Error(), logging.LMKHostCompiler, nil)
		return "files", 0
	}

	return "files", 1
}

// RunBatch invokes the host compiler once over every generated file, used
// by make mode after all modules have finished emission rather than
// spawning one host-compiler process per module.
func RunBatch(opts state.Options, targets []string) error {
	if len(targets) == 0 {
		return nil
	}

	prefix := commandPrefixFor(opts)
	return invoke(prefix, opts.ClassPath, opts.SourcePath, opts.OutputDir, targets)
}

func commandPrefixFor(opts state.Options) []string {
	if len(opts.HostCompilerOverride) > 0 {
		return opts.HostCompilerOverride
	}
	if env := os.Getenv(common.HostCompilerEnvVar); env != "" {
		return strings.Fields(env)
	}
	return []string{common.DefaultHostCompiler}
}

func invokeAndReport(st *state.CompilerState, targets []string) error {
	prefix := commandPrefix(st)
	return invoke(prefix, st.Options.ClassPath, st.Options.SourcePath, st.Options.OutputDir, targets)
}

func invoke(prefix, classPath, sourcePath []string, outputDir string, targets []string) error {
	args := assembleArgs(prefix, classPath, sourcePath, outputDir, targets)

	code, err := run(prefix, args)
	if err != nil {
		return fmt.Errorf("failed to run host compiler %q: %w", prefix[0], err)
	}
	if code != 0 {
		return fmt.Errorf("host compiler exited with status %d; this usually indicates a native declaration mismatch in the generated sources", code)
	}
	return nil
}
