// Package codegen implements the driver's two host-code-emission passes:
// gen-metadata and gen-host-code. Fidelity to a real Fray-to-Java lowering
// is not the point here; what's implemented emits a plausible, minimal Java
// class per module, enough to exercise the printer manager and the
// host-compiler invoker end-to-end.
package codegen

import (
	"fmt"

	"fray/state"
)

// GenMetadata writes a header comment recording which top-level bindings
// are public, which the host-compiler invoker's native-declaration
// diagnostics can refer back to.
func GenMetadata(st *state.CompilerState) (string, int) {
	public := 0
	fmt.Fprintf(st.Gen.Printer, "// module: %s\n", st.Sub.ThisPack)
	for _, def := range st.Sub.SourceDefs {
		if def.Kind == state.DefValue && def.Public {
			fmt.Fprintf(st.Gen.Printer, "// export %s : %s\n", def.Name, def.ResolvedType)
			public++
		}
	}
	return "exports", public
}
