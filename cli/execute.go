// Package cli parses the command line, loads the target module's manifest,
// and dispatches to either the single-file driver or the make orchestrator.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ComedicChimera/olive"

	"fray/common"
	"fray/config"
	"fray/driver"
	"fray/logging"
	"fray/makemode"
	"fray/state"
)

var logLevels = map[string]int{
	"silent":  logging.LogLevelSilent,
	"error":   logging.LogLevelError,
	"warn":    logging.LogLevelWarn,
	"verbose": logging.LogLevelVerbose,
}

// Execute parses os.Args, runs the requested command, and returns the
// process exit code: 0 on success, 1 if compilation reported errors, 2 on a
// usage or configuration failure, or when make mode cannot resolve its
// inputs or lex and parse one of its file-path roots.
func Execute() int {
	cli := olive.NewCLI("frayc", "frayc is the Fray compiler driver", true)

	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile Fray source", true)
	buildCmd.AddPrimaryArg("input", "the file, directory, or module name to compile", true)
	buildCmd.AddFlag("make", "m", "build the full dependency graph instead of just the given input")
	buildCmd.AddFlag("verbose", "v", "print per-pass timing information")
	buildCmd.AddFlag("ide", "ide", "retain diagnostics on state instead of draining them eagerly")
	buildCmd.AddFlag("run-javac", "rj", "invoke the host compiler once host sources are generated")
	buildCmd.AddStringArg("out", "o", "the output directory for generated host sources", false)
	buildCmd.AddStringArg("classpath", "cp", "the host compiler classpath", false)
	buildCmd.AddStringArg("profile", "p", "the name of the build profile to use", false)

	modCmd := cli.AddSubcommand("mod", "manage Fray modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	cli.AddSubcommand("version", "print the frayc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 2
	}

	subcmdName, subResult, _ := result.Subcommand()
	loglevel, _ := result.Arguments["loglevel"].(string)
	logging.Init(logLevels[loglevel])

	switch subcmdName {
	case "build":
		return execBuild(subResult)
	case "mod":
		return execMod(subResult)
	case "version":
		fmt.Println("frayc " + common.FrayVersion)
		return 0
	}

	return 2
}

func execBuild(result *olive.ArgParseResult) int {
	inputArg, _ := result.PrimaryArg()

	opts, inputs, err := resolveBuildOptions(result, inputArg)
	if err != nil {
		logging.PrintErrorMessage("Module Load Error", err)
		return 2
	}

	var q logging.MessageQueue
	var ok bool

	if opts.Make {
		b := makemode.NewBuilder(opts)
		if buildErr := b.Build(inputs, &q); buildErr != nil {
			q.Drain()
			return 2
		}
		ok = makemode.Run(b, opts, &q)
	} else {
		results := driver.CompileAll(opts, inputs, &q)
		ok = true
		for _, r := range results {
			ok = ok && r.OK
		}
	}
	q.Drain()

	errCount, warnCount := logging.Totals()
	logging.PrintSummary(errCount, warnCount)

	if !ok || errCount > 0 {
		return 1
	}
	return 0
}

// resolveBuildOptions assembles state.Options for the build command: it
// optionally loads the module manifest that owns inputArg (if one exists
// above it in the directory tree) to supply defaults for the source path,
// class path, and output directory, then layers any explicit CLI flags on
// top.
func resolveBuildOptions(result *olive.ArgParseResult, inputArg string) (state.Options, []string, error) {
	opts := state.Options{
		Make:            result.HasFlag("make"),
		Verbose:         result.HasFlag("verbose"),
		IDEMode:         result.HasFlag("ide"),
		RunHostCompiler: result.HasFlag("run-javac"),
	}

	abs, err := filepath.Abs(inputArg)
	if err != nil {
		return opts, nil, err
	}

	searchDir := abs
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		searchDir = filepath.Dir(abs)
	}

	mod, modErr := findModule(searchDir)
	if modErr == nil {
		opts.SourcePath = append(opts.SourcePath, mod.Root)
		opts.SourcePath = append(opts.SourcePath, mod.LocalImportDirs...)

		depPaths, depErr := resolveDependencyPaths(mod)
		if depErr != nil {
			return opts, nil, depErr
		}
		opts.SourcePath = append(opts.SourcePath, depPaths...)

		profName, _ := result.Arguments["profile"].(string)
		profile, profErr := mod.SelectProfile(profName)
		if profErr != nil {
			return opts, nil, profErr
		}
		if profile != nil {
			opts.OutputDir = profile.OutputPath
			opts.ClassPath = append(opts.ClassPath, profile.ClassPath...)
		}
	} else {
		opts.SourcePath = append(opts.SourcePath, searchDir)
	}

	if out, ok := result.Arguments["out"].(string); ok && out != "" {
		opts.OutputDir = out
	}
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join(searchDir, "build")
	}

	if cp, ok := result.Arguments["classpath"].(string); ok && cp != "" {
		opts.ClassPath = append(opts.ClassPath, strings.Split(cp, string(os.PathListSeparator))...)
	}

	return opts, []string{abs}, nil
}

// resolveDependencyPaths resolves every module mod declares in its
// [[module.dependencies]] list to an on-disk directory via
// mod.ResolveModulePath, so a declared dependency's sibling directory, local
// import directory, FRAY_PATH entry, or path-replacement override ends up on
// the search path handed to the resolver and make orchestrator.
func resolveDependencyPaths(mod *config.Module) ([]string, error) {
	paths := make([]string, 0, len(mod.Dependencies))
	for _, dep := range mod.Dependencies {
		path, ok := mod.ResolveModulePath(dep.Name)
		if !ok {
			return nil, fmt.Errorf("module %q declares a dependency on %q but it could not be located", mod.Name, dep.Name)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// findModule walks upward from dir looking for a fray-mod.toml.
func findModule(dir string) (*config.Module, error) {
	for {
		if mod, err := config.LoadModule(dir); err == nil {
			return mod, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s found above %s", common.ModuleFileName, dir)
		}
		dir = parent
	}
}

func execMod(result *olive.ArgParseResult) int {
	subcmdName, subResult, _ := result.Subcommand()

	switch subcmdName {
	case "init":
		modulePath, _ := subResult.PrimaryArg()
		if err := initModule(modulePath); err != nil {
			logging.PrintErrorMessage("Module Init Error", err)
			return 2
		}
		return 0
	}

	return 2
}

func initModule(modulePath string) error {
	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return err
	}

	name := filepath.Base(abs)
	if !config.IsValidIdentifier(name) {
		return fmt.Errorf("directory name %q is not a valid module name; pass an explicit module directory", name)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return err
	}

	manifest := fmt.Sprintf(`[module]
name = %q

[[module.profiles]]
name = "debug"
output = "build"
default = true
`, name)

	target := filepath.Join(abs, common.ModuleFileName)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("%s already exists", target)
	}

	return os.WriteFile(target, []byte(manifest), 0o644)
}
