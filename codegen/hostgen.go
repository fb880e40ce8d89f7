package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"fray/state"
)

// GenHostCode lowers st.Sub.SourceDefs into a single Java class named after
// the module's last dotted segment, under a package derived from the
// preceding segments, and writes it through st.Gen.Printer.
func GenHostCode(st *state.CompilerState) (string, int) {
	pkg, class := splitModuleName(st.Sub.ThisPack)

	if pkg != "" {
		fmt.Fprintf(st.Gen.Printer, "package %s;\n\n", pkg)
	}
	fmt.Fprintf(st.Gen.Printer, "public final class %s {\n", class)

	written := 0
	for _, def := range st.Sub.SourceDefs {
		if def.Kind != state.DefValue {
			continue
		}

		visibility := "private"
		if def.Public {
			visibility = "public"
		}

		fmt.Fprintf(st.Gen.Printer, "    %s static final %s %s = %s;\n",
			visibility, javaType(def.ResolvedType), def.Name, javaLiteral(def))
		written++
	}

	fmt.Fprintln(st.Gen.Printer, "}")

	return "definitions", written
}

func splitModuleName(dotted string) (pkg, class string) {
	parts := strings.Split(dotted, ".")
	if len(parts) == 0 || dotted == "" {
		return "", "Module"
	}
	class = capitalize(parts[len(parts)-1])
	if len(parts) > 1 {
		pkg = strings.Join(parts[:len(parts)-1], ".")
	}
	return
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func javaType(resolved string) string {
	switch resolved {
	case "Int":
		return "int"
	case "Bool":
		return "boolean"
	case "String":
		return "String"
	default:
		return "Object"
	}
}

func javaLiteral(def state.SourceDef) string {
	switch def.LiteralKind {
	case state.TokString:
		return strconv.Quote(def.LiteralValue)
	default:
		if def.LiteralValue == "" {
			return "null"
		}
		return def.LiteralValue
	}
}
