// Package driver runs the full pass registry against one source path with
// a fresh compiler state, and fans that out across every input the resolver
// produced.
package driver

import (
	"runtime"
	"sync"

	"fray/logging"
	"fray/pass"
	"fray/resolvepath"
	"fray/state"
)

// Result is one compiled item's outcome, gathered back on the main
// goroutine after CompileAll's fan-out.
type Result struct {
	Item resolvepath.Item
	OK   bool
}

// CompileOne runs the full registry against a single source path, in a
// fresh CompilerState derived from opts. It is the unit of work CompileAll
// dispatches to its workers; make mode does not use it (its workers run
// pass.MakeModeList on states the make orchestrator has already parsed).
func CompileOne(opts state.Options, sourcePath string) bool {
	st := state.New(opts, sourcePath)
	return pass.Run(st, pass.FullRegistry())
}

// CompileAll resolves args against opts.SourcePath and compiles every
// resulting item, one worker per available core, returning once every item
// has finished. Diagnostics from resolution itself are appended to q; if
// resolution reported any error, nothing is compiled and nil is returned.
func CompileAll(opts state.Options, args []string, q *logging.MessageQueue) []Result {
	items := resolvepath.Resolve(args, opts.SourcePath, q)
	if len(items) == 0 || q.ErrorCount() > 0 {
		return nil
	}

	results := make([]Result, len(items))
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Result{
					Item: items[i],
					OK:   CompileOne(opts, items[i].FilePath),
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
