package depgraph

import "fray/state"

// Extract returns the set of modules st imports, deduplicated and excluding
// a (degenerate) self-import. Callable once a module has been lexed and
// parsed.
func Extract(st *state.CompilerState) []ID {
	self := Canon(st.Sub.ThisPack)

	seen := make(map[ID]bool)
	var deps []ID
	for _, def := range st.Sub.SourceDefs {
		if def.Kind != state.DefImport {
			continue
		}

		id := Canon(def.Name)
		if id == self || seen[id] {
			continue
		}
		seen[id] = true
		deps = append(deps, id)
	}

	return deps
}
