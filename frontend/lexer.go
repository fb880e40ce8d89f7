// Package frontend implements the lexer/parser pair that turns Fray source
// text into the compiler state the rest of the driver walks: after Lex and
// Parse both run on a compiler state, state.Sub.ThisPack and
// state.Sub.SourceDefs must be populated, or state.Sub.NumErrors must be
// nonzero.
//
// The grammar recognized here is intentionally small — surface syntax is
// explicitly out of scope for the driver — but real enough to exercise
// every later pass: a `module` declaration, `import` statements, and `def`
// bindings of a name to a literal or another name.
package frontend

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fray/logging"
	"fray/state"
)

// Lex tokenizes st.Options.Source into st.Sub.Tokens. It is pass #1 in the
// full registry.
func Lex(st *state.CompilerState) (string, int) {
	lctx := &logging.LogContext{FilePath: st.Options.Source}

	f, err := os.Open(st.Options.Source)
	if err != nil {
		st.RaiseError(lctx, "could not open source file: "+err.Error(), logging.LMKSyntax, nil)
		return "tokens", 0
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)

	var tokens []state.Token
	lineNo := 0
	for sc.Scan() {
		lineNo++
		toks, ok := lexLine(sc.Text(), lineNo, lctx, st)
		if !ok {
			return "tokens", len(tokens)
		}
		tokens = append(tokens, toks...)
		if len(toks) > 0 {
			tokens = append(tokens, state.Token{Kind: state.TokNewline, Line: lineNo})
		}
	}
	tokens = append(tokens, state.Token{Kind: state.TokEOF, Line: lineNo + 1})

	st.Sub.Tokens = tokens
	return "tokens", len(tokens)
}

var keywords = map[string]state.TokenKind{
	"module": state.TokModule,
	"import": state.TokImport,
	"def":    state.TokDef,
	"true":   state.TokBool,
	"false":  state.TokBool,
}

func lexLine(line string, lineNo int, lctx *logging.LogContext, st *state.CompilerState) ([]state.Token, bool) {
	var toks []state.Token
	col := 0
	fields := splitKeepingStrings(line)

	for _, fld := range fields {
		col++
		switch {
		case fld == "":
			continue
		case fld == "=":
			toks = append(toks, state.Token{Kind: state.TokAssign, Value: "=", Line: lineNo, Col: col})
		case strings.HasPrefix(fld, `"`) && strings.HasSuffix(fld, `"`) && len(fld) >= 2:
			toks = append(toks, state.Token{Kind: state.TokString, Value: fld[1 : len(fld)-1], Line: lineNo, Col: col})
		case isDigits(fld):
			toks = append(toks, state.Token{Kind: state.TokInt, Value: fld, Line: lineNo, Col: col})
		case isDottedIdent(fld):
			if kind, isKw := keywords[fld]; isKw {
				toks = append(toks, state.Token{Kind: kind, Value: fld, Line: lineNo, Col: col})
			} else {
				toks = append(toks, state.Token{Kind: state.TokIdent, Value: fld, Line: lineNo, Col: col})
			}
		default:
			st.RaiseError(lctx, fmt.Sprintf("unrecognized token %q", fld), logging.LMKSyntax,
				&logging.TextPosition{StartLn: lineNo, EndLn: lineNo, StartCol: col, EndCol: col + len(fld)})
			return nil, false
		}
	}

	return toks, true
}

// splitKeepingStrings splits on whitespace but keeps a double-quoted
// substring as one field, and drops a `#`-prefixed trailing comment.
func splitKeepingStrings(line string) []string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		// Only treat '#' as a comment marker outside of a string literal.
		if strings.Count(line[:idx], `"`)%2 == 0 {
			line = line[:idx]
		}
	}

	var fields []string
	var b strings.Builder
	inString := false

	flush := func() {
		if b.Len() > 0 {
			fields = append(fields, b.String())
			b.Reset()
		}
	}

	for _, r := range line {
		switch {
		case r == '"':
			b.WriteRune(r)
			if inString {
				flush()
			}
			inString = !inString
		case inString:
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			flush()
		case r == '=':
			flush()
			fields = append(fields, "=")
		default:
			b.WriteRune(r)
		}
	}
	flush()

	return fields
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isDottedIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '.' && i > 0:
			continue
		case r == '_':
			continue
		case r >= 'a' && r <= 'z':
			continue
		case r >= 'A' && r <= 'Z':
			continue
		case r >= '0' && r <= '9' && i > 0:
			continue
		default:
			return false
		}
	}
	return true
}
