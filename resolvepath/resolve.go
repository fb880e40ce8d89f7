package resolvepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fray/common"
	"fray/depgraph"
	"fray/logging"
)

// Resolve turns the given positional CLI arguments into an ordered sequence
// of Items. Diagnostics are appended to q; the caller is responsible for
// checking q's error count before compiling anything.
func Resolve(args []string, sourcePath []string, q *logging.MessageQueue) []Item {
	var items []Item

	for _, a := range args {
		items = append(items, resolveOne(a, sourcePath, q)...)
	}

	return items
}

func resolveOne(a string, sourcePath []string, q *logging.MessageQueue) []Item {
	if info, err := os.Stat(a); err == nil {
		if info.IsDir() {
			return resolveDir(a)
		}
		return []Item{newItem(a)}
	}

	if strings.HasSuffix(a, common.SrcFileExtension) {
		if filepath.IsAbs(a) {
			logging.LogConfigError(q, "Input", fmt.Sprintf("could not read %s", a))
			return nil
		}

		for _, dir := range sourcePath {
			candidate := filepath.Join(dir, a)
			if _, err := os.Stat(candidate); err == nil {
				return []Item{newItem(candidate)}
			}
		}

		logging.LogConfigError(q, "Input", fmt.Sprintf("could not find %s in source path", a))
		return nil
	}

	// Otherwise, treat a as a module name.
	id := depgraph.Canon(a)
	rel := id.SlashPath() + common.SrcFileExtension

	for _, dir := range sourcePath {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			item := newItem(candidate)
			item.ModuleID = id
			item.IsModule = true
			return []Item{item}
		}
	}

	logging.LogConfigError(q, "Input", fmt.Sprintf("could not resolve module %q in source path", a))
	return nil
}

// resolveDir recursively collects every readable source file under dir,
// in the filesystem's natural walk order.
func resolveDir(dir string) []Item {
	var items []Item

	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.HasSuffix(info.Name(), common.SrcFileExtension) {
			if f, openErr := os.Open(path); openErr == nil {
				f.Close()
				items = append(items, newItem(path))
			}
		}
		return nil
	})

	return items
}
