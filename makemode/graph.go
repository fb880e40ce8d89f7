package makemode

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fray/common"
	"fray/depgraph"
	"fray/frontend"
	"fray/logging"
	"fray/resolvepath"
	"fray/state"
)

// Builder holds the orchestrator's todo set: the mapping of module identity
// to Entry. Roots are inserted synchronously by Build; everything reachable
// only as an import is inserted as a CheckUpdate placeholder and left for
// Run's workers to locate, parse, and expand.
type Builder struct {
	opts state.Options

	mu      sync.Mutex
	entries map[depgraph.ID]*Entry
	edges   map[depgraph.ID][]depgraph.ID
	order   []depgraph.ID
}

// NewBuilder creates an empty todo set for the given options.
func NewBuilder(opts state.Options) *Builder {
	return &Builder{
		opts:    opts,
		entries: make(map[depgraph.ID]*Entry),
		edges:   make(map[depgraph.ID][]depgraph.ID),
	}
}

// Build processes every root in order: a module-name root is inserted as a
// CheckUpdate placeholder (it is already
// located, by resolvepath, but not yet parsed); a file-path root is parsed
// immediately and inserted as CompileAfterDeps, with every import it names
// inserted as a CheckUpdate unless some prior root already claimed that
// identity as CompileAfterDeps.
func (b *Builder) Build(args []string, q *logging.MessageQueue) error {
	items := resolvepath.Resolve(args, b.opts.SourcePath, q)
	if q.ErrorCount() > 0 {
		return fmt.Errorf("input resolution failed")
	}

	for _, it := range items {
		if it.IsModule {
			b.insertCheckUpdate(it.ModuleID, it.FilePath, ReasonRoot)
			continue
		}
		if err := b.insertRoot(it.FilePath, q); err != nil {
			return err
		}
	}

	if len(b.order) == 0 {
		return fmt.Errorf("no input resolved")
	}
	return nil
}

// Entries returns the current todo set in insertion order. Only meaningful
// to call after Build; Run mutates the set further as CheckUpdate entries
// resolve into CompileAfterDeps ones and new dependencies are discovered.
func (b *Builder) Entries() []*Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Entry, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.entries[id])
	}
	return out
}

func (b *Builder) entry(id depgraph.ID) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entries[id]
}

// insertCheckUpdate records id as a not-yet-parsed placeholder, unless it is
// already present — a CompileAfterDeps entry is never overwritten, and a
// second CheckUpdate for the same id is redundant.
func (b *Builder) insertCheckUpdate(id depgraph.ID, sourcePath string, reason Reason) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[id]; exists {
		return
	}
	b.entries[id] = &Entry{Kind: CheckUpdate, Reason: reason, ID: id, SourcePath: sourcePath}
	b.order = append(b.order, id)
}

// insertRoot lexes and parses an explicit file-path root, installs it as a
// CompileAfterDeps entry, and records its imports for later resolution.
func (b *Builder) insertRoot(sourcePath string, q *logging.MessageQueue) error {
	st := state.New(b.opts, sourcePath)

	frontend.Lex(st)
	if !st.HasErrors() {
		frontend.Parse(st)
	}
	if st.HasErrors() {
		mergeMessages(q, &st.Sub.Messages)
		return fmt.Errorf("failed to lex/parse %s", sourcePath)
	}

	id := depgraph.Canon(st.Sub.ThisPack)
	deps := depgraph.Extract(st)

	b.mu.Lock()
	b.entries[id] = &Entry{Kind: CompileAfterDeps, Reason: ReasonRoot, ID: id, SourcePath: sourcePath, Deps: deps, State: st}
	b.edges[id] = deps
	alreadyOrdered := false
	for _, o := range b.order {
		if o == id {
			alreadyOrdered = true
			break
		}
	}
	if !alreadyOrdered {
		b.order = append(b.order, id)
	}
	b.mu.Unlock()

	for _, dep := range deps {
		b.insertCheckUpdate(dep, "", ReasonDependency)
	}
	return nil
}

// resolve promotes a CheckUpdate entry to CompileAfterDeps: locating its
// source (if Build did not already know it, i.e. it arrived as an import
// rather than a named root), lexing and parsing it, and inserting a fresh
// CheckUpdate placeholder for every import it names that isn't already
// claimed. A worker performs this lazily, the first time it draws the entry,
// so the full dependency graph never needs to be known up front.
func (b *Builder) resolve(e *Entry, q *logging.MessageQueue) (*Entry, bool) {
	path := e.SourcePath
	if path == "" {
		located, found := locateModule(e.ID, b.opts.SourcePath)
		if !found {
			logging.LogConfigError(q, "Dependency", fmt.Sprintf("could not resolve module %q (%s)", e.ID, e.Reason))
			return nil, false
		}
		path = located
	}

	st := state.New(b.opts, path)
	frontend.Lex(st)
	if !st.HasErrors() {
		frontend.Parse(st)
	}
	if st.HasErrors() {
		mergeMessages(q, &st.Sub.Messages)
		return nil, false
	}

	deps := depgraph.Extract(st)
	resolved := &Entry{Kind: CompileAfterDeps, Reason: e.Reason, ID: e.ID, SourcePath: path, Deps: deps, State: st}

	b.mu.Lock()
	b.entries[e.ID] = resolved
	b.edges[e.ID] = deps
	b.mu.Unlock()

	for _, dep := range deps {
		b.insertCheckUpdate(dep, "", ReasonDependency)
	}
	return resolved, true
}

// hasPath reports whether, among edges recorded so far, to is reachable
// from from. Used to detect a dependency cycle without deadlocking: if
// resolving a module discloses an import back to something that can already
// reach it, that edge is rejected rather than waited on.
func (b *Builder) hasPath(from, to depgraph.ID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	visited := map[depgraph.ID]bool{}
	var walk func(depgraph.ID) bool
	walk = func(cur depgraph.ID) bool {
		if cur == to {
			return true
		}
		if visited[cur] {
			return false
		}
		visited[cur] = true
		for _, next := range b.edges[cur] {
			if walk(next) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

func locateModule(id depgraph.ID, sourcePath []string) (string, bool) {
	rel := id.SlashPath() + common.SrcFileExtension
	for _, dir := range sourcePath {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// mergeMessages appends every message queued on src to dst, preserving
// chronological order (src.Peek is oldest-first and dst.Append prepends, so
// appending in Peek order leaves dst most-recent-first, which Drain then
// prints oldest-first).
func mergeMessages(dst, src *logging.MessageQueue) {
	for _, m := range src.Peek() {
		dst.Append(m)
	}
}
