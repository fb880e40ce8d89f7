package makemode

import (
	"fmt"
	"runtime"
	"sync"

	"fray/depgraph"
	"fray/hostcompile"
	"fray/logging"
	"fray/pass"
	"fray/printer"
	"fray/state"
)

// scheduler drives the worker pool that turns a todo set into finished
// modules. It is built fresh for each Run call; Builder supplies the todo
// set and the
// lexing/parsing needed to expand a CheckUpdate entry, while scheduler owns
// the concurrency (one goroutine per module identity, spawned the first time
// that identity is seen, whether as a root or as a freshly discovered
// import) and the completion bookkeeping.
type scheduler struct {
	b   *Builder
	q   *logging.MessageQueue
	sem chan struct{}

	mu         sync.Mutex
	completion map[depgraph.ID]chan struct{}
	results    map[depgraph.ID]bool

	wg sync.WaitGroup
}

// Run drains a built todo set to completion: every entry waits on its
// dependencies' completion before running the make-mode pass list, and a
// CheckUpdate entry is resolved (located, lexed, parsed, its own imports
// enqueued) the first time a worker draws it, growing the todo set on the
// fly. Once every module has finished, Run makes a single batched
// host-compiler invocation over the generated set, rather than spawning a
// separate host-compiler process per module.
func Run(b *Builder, opts state.Options, q *logging.MessageQueue) bool {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	s := &scheduler{
		b:          b,
		q:          q,
		sem:        make(chan struct{}, workers),
		completion: make(map[depgraph.ID]chan struct{}),
		results:    make(map[depgraph.ID]bool),
	}

	for _, e := range b.Entries() {
		s.ensureScheduled(e.ID)
	}
	s.wg.Wait()

	allOK := true
	var targets []string
	s.mu.Lock()
	for id, ok := range s.results {
		allOK = allOK && ok
		if ok {
			targets = append(targets, printer.TargetPath(opts.OutputDir, id.String()))
		}
	}
	s.mu.Unlock()

	if allOK && opts.RunHostCompiler {
		if err := hostcompile.RunBatch(opts, targets); err != nil {
			logging.LogConfigError(q, "HostCompiler", err.Error())
			return false
		}
	}

	return allOK
}

// ensureScheduled spawns exactly one worker goroutine per module identity,
// idempotently: concurrent callers racing to depend on the same module all
// get back the same completion channel.
func (s *scheduler) ensureScheduled(id depgraph.ID) chan struct{} {
	s.mu.Lock()
	if ch, ok := s.completion[id]; ok {
		s.mu.Unlock()
		return ch
	}
	ch := make(chan struct{})
	s.completion[id] = ch
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(id, ch)
	return ch
}

func (s *scheduler) run(id depgraph.ID, done chan struct{}) {
	defer close(done)
	defer s.wg.Done()

	entry := s.b.entry(id)
	if entry == nil {
		s.setResult(id, false)
		return
	}

	if entry.Kind == CheckUpdate {
		s.sem <- struct{}{}
		resolved, ok := s.b.resolve(entry, s.q)
		<-s.sem
		if !ok {
			s.setResult(id, false)
			return
		}
		entry = resolved
	}

	depsOK := true
	var waitOn []depgraph.ID
	var waiting []chan struct{}
	for _, dep := range entry.Deps {
		if s.b.hasPath(dep, id) {
			logging.LogConfigError(s.q, "Dependency", fmt.Sprintf("dependency cycle detected between %q and %q", id, dep))
			depsOK = false
			continue
		}
		waitOn = append(waitOn, dep)
		waiting = append(waiting, s.ensureScheduled(dep))
	}
	for _, ch := range waiting {
		<-ch
	}

	s.mu.Lock()
	for _, dep := range waitOn {
		depsOK = depsOK && s.results[dep]
	}
	s.mu.Unlock()

	var ok bool
	s.sem <- struct{}{}
	if depsOK {
		ok = pass.Run(entry.State, pass.MakeModeList())
	}
	<-s.sem

	s.setResult(id, ok)
}

func (s *scheduler) setResult(id depgraph.ID, ok bool) {
	s.mu.Lock()
	s.results[id] = ok
	s.mu.Unlock()
}
