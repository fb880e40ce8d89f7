// Package printer opens and closes the host-source output sink for a
// module and installs it into the compiler state's Gen.Printer field.
package printer

import (
	"bufio"
	"os"
)

// fileSink is a buffered writer over an on-disk host-source file.
type fileSink struct {
	f *os.File
	w *bufio.Writer
}

func (s *fileSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *fileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

func (s *fileSink) IsStdout() bool { return false }

// stdoutSink is the sentinel "no file" sink. Close on it only flushes its
// buffer; it never closes os.Stdout, since nothing owns stdout for it to
// close.
type stdoutSink struct {
	w *bufio.Writer
}

func (s *stdoutSink) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *stdoutSink) Close() error                { return s.w.Flush() }
func (s *stdoutSink) IsStdout() bool              { return true }

// Stdout is shared across every state that emits to standard output, since
// stdout itself is a single shared resource regardless of how many sinks
// reference it.
var Stdout = &stdoutSink{w: bufio.NewWriter(os.Stdout)}
