package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"fray/common"
)

// tomlManifest mirrors fray-mod.toml's on-disk shape.
type tomlManifest struct {
	Module *tomlModule `toml:"module"`
}

type tomlModule struct {
	Name             string            `toml:"name"`
	LocalImportDirs  []string          `toml:"local-import-dirs,omitempty"`
	PathReplacements map[string]string `toml:"path-replacements,omitempty"`
	Dependencies     []tomlDependency  `toml:"dependencies"`
	Profiles         []tomlProfile     `toml:"profiles"`
}

type tomlDependency struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	URL     string `toml:"url"`
}

type tomlProfile struct {
	Name       string   `toml:"name"`
	OutputPath string   `toml:"output"`
	Debug      bool     `toml:"debug"`
	Primary    bool     `toml:"primary"`
	Default    bool     `toml:"default"`
	ClassPath  []string `toml:"class-path,omitempty"`
}

// LoadModule reads and validates <path>/fray-mod.toml.
func LoadModule(path string) (*Module, error) {
	manifestPath := filepath.Join(path, common.ModuleFileName)

	f, err := os.Open(manifestPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var tm tomlManifest
	if err := toml.Unmarshal(buf, &tm); err != nil {
		return nil, fmt.Errorf("malformed manifest %s: %w", manifestPath, err)
	}

	if tm.Module == nil {
		return nil, fmt.Errorf("%s has no [module] table", manifestPath)
	}

	if tm.Module.Name == "" {
		return nil, fmt.Errorf("missing module name in %s", manifestPath)
	}
	if !IsValidIdentifier(tm.Module.Name) {
		return nil, fmt.Errorf("module name %q must be a valid identifier", tm.Module.Name)
	}

	mod := &Module{
		Name:             tm.Module.Name,
		Root:             path,
		LocalImportDirs:  tm.Module.LocalImportDirs,
		PathReplacements: tm.Module.PathReplacements,
	}

	for _, d := range tm.Module.Dependencies {
		mod.Dependencies = append(mod.Dependencies, Dependency{
			Name: d.Name, Version: d.Version, URL: d.URL,
		})
	}

	for _, p := range tm.Module.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("module %s: every profile must have a name", mod.Name)
		}
		mod.Profiles = append(mod.Profiles, Profile{
			Name:       p.Name,
			OutputPath: p.OutputPath,
			Debug:      p.Debug,
			Primary:    p.Primary,
			Default:    p.Default,
			ClassPath:  p.ClassPath,
		})
	}

	return mod, nil
}

// SelectProfile picks the build profile to use: an explicitly named one, or
// else the one marked default, or else — if exactly one profile exists — that
// profile, or else the one marked primary, or else an error naming the
// ambiguity. A module with no profiles yields (nil, nil).
func (m *Module) SelectProfile(name string) (*Profile, error) {
	if name != "" {
		for i := range m.Profiles {
			if m.Profiles[i].Name == name {
				return &m.Profiles[i], nil
			}
		}
		return nil, fmt.Errorf("module %q has no profile %q", m.Name, name)
	}

	if len(m.Profiles) == 0 {
		return nil, nil
	}

	for i := range m.Profiles {
		if m.Profiles[i].Default {
			return &m.Profiles[i], nil
		}
	}

	if len(m.Profiles) == 1 {
		return &m.Profiles[0], nil
	}

	for i := range m.Profiles {
		if m.Profiles[i].Primary {
			return &m.Profiles[i], nil
		}
	}

	return nil, fmt.Errorf("module %q declares %d profiles and none is marked default or primary; pass -profile", m.Name, len(m.Profiles))
}
