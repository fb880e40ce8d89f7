package logging

import "sync"

// Enumeration of the supported log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors and warnings, as LogLevelWarn (default); pass timing is controlled by Options.Verbose
)

// Logger is the shared diagnostic sink: the single place that actually
// writes to stderr. It is synchronized so that concurrent drivers (parallel
// single-file compiles, or make-mode workers) never interleave a partial
// line, per the concurrency model's per-line atomicity requirement.
type Logger struct {
	m        sync.Mutex
	logLevel int

	// errorCount and warnCount aggregate across every module processed by
	// this process, for the final summary line; they are not used for any
	// pass's own NumErrors accounting, which is always local to its state.
	errorCount int
	warnCount  int
}

var globalLogger = &Logger{logLevel: LogLevelVerbose}

// Init sets the process-wide log level. Safe to call once at startup before
// any compilation begins.
func Init(level int) {
	globalLogger.m.Lock()
	defer globalLogger.m.Unlock()
	globalLogger.logLevel = level
}

// display renders one message according to the current log level and
// updates the running totals. Holds the logger's mutex for the duration of
// the print so diagnostic lines from different goroutines never interleave.
func (l *Logger) display(m Message) {
	l.m.Lock()
	defer l.m.Unlock()

	if m.isError() {
		l.errorCount++
		if l.logLevel >= LogLevelError {
			m.display()
		}
	} else {
		l.warnCount++
		if l.logLevel >= LogLevelWarn {
			m.display()
		}
	}
}

// Totals returns the aggregate error and warning counts seen so far across
// every module this process has drained messages for.
func Totals() (errors, warnings int) {
	globalLogger.m.Lock()
	defer globalLogger.m.Unlock()
	return globalLogger.errorCount, globalLogger.warnCount
}

// writeLine prints a line to stderr while holding the logger's write lock,
// used for verbose timing lines which are not Messages but must still be
// serialized against diagnostic output.
func writeLine(f func()) {
	globalLogger.m.Lock()
	defer globalLogger.m.Unlock()
	f()
}
