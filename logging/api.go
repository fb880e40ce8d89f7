package logging

// LogCompileError appends a compile error to q. Passes call this (via the
// compiler state they're given) rather than writing to stderr directly, so
// that IDE mode can defer display and make mode can keep per-module output
// from interleaving.
func LogCompileError(q *MessageQueue, lctx *LogContext, message string, kind int, pos *TextPosition) {
	q.Append(&CompileMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  lctx,
		IsError:  true,
	})
}

// LogCompileWarning appends a compile warning to q.
func LogCompileWarning(q *MessageQueue, lctx *LogContext, message string, kind int, pos *TextPosition) {
	q.Append(&CompileMessage{
		Message:  message,
		Kind:     kind,
		Position: pos,
		Context:  lctx,
		IsError:  false,
	})
}

// LogConfigError appends a driver/config error (unresolved module,
// unreadable file, malformed manifest) to q.
func LogConfigError(q *MessageQueue, kind, message string) {
	q.Append(&ConfigError{Kind: kind, Message: message})
}
