package logging

// Message is anything that can be appended to a compiler state's diagnostic
// queue and later drained to the diagnostics sink.
type Message interface {
	display()
	isError() bool
}

// Enumeration of compile message kinds (what part of the pipeline produced
// the diagnostic).
const (
	LMKSyntax = iota
	LMKName
	LMKTyping
	LMKDef
	LMKImport
	LMKMetadata
	LMKUsage
	LMKHostCompiler
)

var compileMsgStrings = map[int]string{
	LMKSyntax:       "Syntax",
	LMKName:         "Name",
	LMKTyping:       "Type",
	LMKDef:          "Definition",
	LMKImport:       "Import",
	LMKMetadata:     "Metadata",
	LMKUsage:        "Usage",
	LMKHostCompiler: "Host Compiler",
}

// CompileMessage is a diagnostic produced by a pass against a source
// position (user-induced, bad Fray code or a host-compiler failure).
type CompileMessage struct {
	Message  string
	Kind     int
	Position *TextPosition
	Context  *LogContext
	IsError  bool
}

func (cm *CompileMessage) isError() bool { return cm.IsError }

// ConfigError is a driver-level error unrelated to any specific source
// position: an unresolved module, a malformed manifest, a bad CLI argument.
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool { return true }
