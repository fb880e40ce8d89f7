package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"fray/common"
)

// ResolveModulePath attempts to locate a module by name: the module itself
// if name is its own name, then a path-replacement override (a relative one
// joined against Root), then this module's own parent directory, then its
// declared local import directories, then $FRAY_PATH/lib.
func (m *Module) ResolveModulePath(name string) (string, bool) {
	if name == m.Name {
		return m.Root, true
	}

	if override, ok := m.PathReplacements[name]; ok {
		if filepath.IsAbs(override) {
			return override, true
		}
		return filepath.Join(m.Root, override), true
	}

	if path, ok := searchDir(filepath.Dir(m.Root), name); ok {
		return path, true
	}

	for _, dir := range m.LocalImportDirs {
		if path, ok := searchDir(dir, name); ok {
			return path, true
		}
	}

	if frayPath := os.Getenv(common.FrayPathEnvVar); frayPath != "" {
		if path, ok := searchDir(filepath.Join(frayPath, "lib"), name); ok {
			return path, true
		}
	}

	return "", false
}

// searchDir looks for a module named modName directly under dir, checking
// the identically-named subdirectory first before falling back to a linear
// scan of every child directory's manifest.
func searchDir(dir, modName string) (string, bool) {
	candidate := filepath.Join(dir, modName)
	if manifestNames(candidate, modName) {
		return candidate, true
	}

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate = filepath.Join(dir, entry.Name())
		if manifestNames(candidate, modName) {
			return candidate, true
		}
	}

	return "", false
}

// manifestNames reports whether the manifest at abspath loads successfully
// and declares modName as its module name.
func manifestNames(abspath, modName string) bool {
	mod, err := LoadModule(abspath)
	if err != nil {
		return false
	}
	return mod.Name == modName
}
