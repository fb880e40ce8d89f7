// Package common holds constants and small helpers shared across the
// compiler driver that don't belong to any one component.
package common

const (
	// SrcFileExtension is the extension recognized for Fray source files.
	SrcFileExtension = ".fray"

	// HostFileExtension is the extension of the generated host source files.
	HostFileExtension = ".java"

	// ModuleFileName is the name of a Fray module's manifest file.
	ModuleFileName = "fray-mod.toml"

	// FrayVersion is the current driver version, printed in the host-source
	// banner and by the `version` subcommand.
	FrayVersion = "0.1.0"

	// DefaultHostCompiler is the binary invoked by the host-compiler invoker
	// when FRAY_JAVAC is unset.
	DefaultHostCompiler = "javac"

	// HostCompilerEnvVar overrides DefaultHostCompiler; its value is split on
	// whitespace to form the command vector prefix.
	HostCompilerEnvVar = "FRAY_JAVAC"

	// FrayPathEnvVar locates the shared library tree searched by module name
	// resolution.
	FrayPathEnvVar = "FRAY_PATH"
)
