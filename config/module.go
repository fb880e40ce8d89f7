// Package config loads a Fray module's fray-mod.toml manifest: its name,
// declared dependencies, local import directories, and build profiles.
package config

// Module is a loaded and validated fray-mod.toml manifest.
type Module struct {
	// Name is the module's declared name.
	Name string

	// Root is the absolute path to the directory containing the manifest.
	Root string

	// LocalImportDirs are extra directories searched when resolving a
	// sibling module by name, beyond the module's parent directory.
	LocalImportDirs []string

	// PathReplacements overrides specific import paths with a different
	// on-disk directory (vendoring / monorepo override hook).
	PathReplacements map[string]string

	// Dependencies lists modules this module declares it needs, by name.
	Dependencies []Dependency

	// Profiles are the build profiles declared for this module.
	Profiles []Profile
}

// Dependency is a single declared module dependency.
type Dependency struct {
	Name    string
	Version string
	URL     string
}

// Profile is one named build configuration.
type Profile struct {
	Name       string
	OutputPath string
	Debug      bool
	Primary    bool
	Default    bool

	// ClassPath entries forwarded to the host compiler's -cp.
	ClassPath []string
}

// IsValidIdentifier reports whether idstr is a legal module or package name.
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	first := idstr[0]
	if !(first == '_' || ('a' <= first && first <= 'z') || ('A' <= first && first <= 'Z')) {
		return false
	}

	for _, c := range idstr[1:] {
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		return false
	}

	return true
}
