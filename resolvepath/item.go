// Package resolvepath turns command-line positional arguments into an
// ordered list of input work items, consulting the source-path list.
package resolvepath

import (
	"fray/common"
	"fray/depgraph"
)

// Item is one resolved input: either a concrete file to parse, or a module
// known only by name (to be located and rebuilt if required by make mode).
type Item struct {
	// FilePath is set for both kinds: the path to parse for a file item, or
	// the resolved path backing a named module.
	FilePath string

	// ModuleID is set only for a module-name item.
	ModuleID depgraph.ID
	IsModule bool

	// PathID is a stable numeric key derived from FilePath by
	// common.GenerateIDFromPath, for callers that need a dedup/ordering key
	// without re-hashing the path themselves.
	PathID uint64
}

func newItem(filePath string) Item {
	return Item{FilePath: filePath, PathID: common.GenerateIDFromPath(filePath)}
}
