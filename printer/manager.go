package printer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"fray/common"
	"fray/depgraph"
	"fray/logging"
	"fray/state"
)

// TargetPath computes the on-disk path for a module's generated host
// source: <output-dir>/<module-name-with-dots-as-slashes>.<host-ext>. It
// depends on nothing but its two arguments, so callers can recompute it
// freely without re-running any pass.
func TargetPath(outputDir, moduleName string) string {
	return filepath.Join(outputDir, depgraph.Canon(moduleName).SlashPath()+common.HostFileExtension)
}

// Open installs a fresh Sink into st.Gen.Printer: standard output if
// st.Options.Source is "-", otherwise a newly created file at TargetPath,
// creating parent directories as needed. It writes the version banner
// through the sink before returning.
func Open(st *state.CompilerState) (string, int) {
	lctx := &logging.LogContext{ModuleName: st.Sub.ThisPack, FilePath: st.Options.Source}

	if st.Options.Source == "-" {
		st.Gen.Printer = Stdout
		fmt.Fprintf(st.Gen.Printer, "// fray %s\n", common.FrayVersion)
		return "sinks", 1
	}

	target := TargetPath(st.Options.OutputDir, st.Sub.ThisPack)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		st.RaiseError(lctx, "failed to create output directory: "+err.Error(), logging.LMKDef, nil)
		return "sinks", 0
	}

	f, err := os.Create(target)
	if err != nil {
		st.RaiseError(lctx, "failed to open host source file: "+err.Error(), logging.LMKDef, nil)
		return "sinks", 0
	}

	sink := &fileSink{f: f, w: bufio.NewWriter(f)}
	st.Gen.Printer = sink
	fmt.Fprintf(sink, "// fray %s\n", common.FrayVersion)

	return "sinks", 1
}

// Close flushes and closes st.Gen.Printer, then replaces it with Stdout, so
// Gen.Printer always holds a valid, open sink and is closed exactly once.
func Close(st *state.CompilerState) (string, int) {
	if st.Gen.Printer == nil {
		st.Gen.Printer = Stdout
		return "sinks", 0
	}

	wasStdout := st.Gen.Printer.IsStdout()
	err := st.Gen.Printer.Close()
	st.Gen.Printer = Stdout

	if err != nil && !wasStdout {
		lctx := &logging.LogContext{ModuleName: st.Sub.ThisPack, FilePath: st.Options.Source}
		st.RaiseError(lctx, "failed to close host source file: "+err.Error(), logging.LMKDef, nil)
		return "sinks", 0
	}

	return "sinks", 1
}

// ForceClose closes the printer without raising a further error, used by
// the pass runner when a pass has already failed and the printer must still
// be flushed to disk before the pipeline gives up on the module.
func ForceClose(st *state.CompilerState) {
	if st.Gen.Printer != nil && !st.Gen.Printer.IsStdout() {
		st.Gen.Printer.Close()
	}
	st.Gen.Printer = Stdout
}
