package pass

import (
	"fmt"
	"time"

	"fray/logging"
	"fray/printer"
	"fray/state"
)

// Run drives st through every pass in list, in order:
//
//   - a pass is skipped once st.HasErrors() reports a prior failure, except
//     that the printer is still force-closed so a partially generated file
//     isn't left open;
//   - each executed pass is wall-clock timed;
//   - queued diagnostics are drained to the log after every pass, unless
//     st.Options.IDEMode is set (in IDE mode they stay queued on
//     st.Sub.Messages, readable with st.Sub.Messages.Peek);
//   - in verbose mode, one timing line per executed pass is printed in the
//     form "<desc>  took  N.NNNs, <count> <kind> (<rate> <kind>/s)".
//
// Run returns true if the module compiled without error.
func Run(st *state.CompilerState, list []Pass) bool {
	failed := false

	for _, p := range list {
		if failed {
			continue
		}

		start := time.Now()
		kind, count := p.Op(st)
		elapsed := time.Since(start)

		if st.Options.Verbose {
			printVerboseLine(p.Desc, elapsed, kind, count)
		}

		if !st.Options.IDEMode {
			st.Sub.Messages.Drain()
		}

		if st.HasErrors() {
			printer.ForceClose(st)
			failed = true
		}
	}

	return !failed
}

func printVerboseLine(desc string, elapsed time.Duration, kind string, count int) {
	ms := elapsed.Milliseconds()
	rate := int64(count) * 1000 / max64(1, ms+1)
	logging.PrintVerboseLine(fmt.Sprintf("%-40s  took  %.3fs, %d %s (%d %s/s)",
		desc, elapsed.Seconds(), count, kind, rate, kind))
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
