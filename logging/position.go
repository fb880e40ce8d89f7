package logging

// TextPosition locates a span of source text for diagnostic display.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol      int
}

// LogContext attributes a diagnostic to a module and a file within it.
type LogContext struct {
	ModuleName string
	FilePath   string
}
