package frontend

import (
	"fmt"

	"fray/logging"
	"fray/state"
)

// Parse consumes st.Sub.Tokens into st.Sub.SourceDefs and st.Sub.ThisPack.
// It is pass #2 in the full registry and, together with Lex, turns raw
// source text into the shape every later pass walks.
func Parse(st *state.CompilerState) (string, int) {
	lctx := &logging.LogContext{FilePath: st.Options.Source}
	p := &parser{toks: st.Sub.Tokens, lctx: lctx, st: st}

	if !p.parseModuleDecl() {
		return "definitions", 0
	}

	var defs []state.SourceDef
	for !p.at(state.TokEOF) {
		if p.at(state.TokNewline) {
			p.advance()
			continue
		}

		def, ok := p.parseTopLevel()
		if !ok {
			return "definitions", len(defs)
		}
		defs = append(defs, def)
	}

	st.Sub.SourceDefs = defs
	if lctx.ModuleName == "" {
		lctx.ModuleName = st.Sub.ThisPack
	}
	return "definitions", len(defs)
}

type parser struct {
	toks []state.Token
	pos  int
	lctx *logging.LogContext
	st   *state.CompilerState
}

func (p *parser) cur() state.Token {
	if p.pos >= len(p.toks) {
		return state.Token{Kind: state.TokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) at(k state.TokenKind) bool { return p.cur().Kind == k }

func (p *parser) advance() state.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) errAt(t state.Token, msg string) {
	p.st.RaiseError(p.lctx, msg, logging.LMKSyntax, &logging.TextPosition{
		StartLn: t.Line, EndLn: t.Line, StartCol: t.Col, EndCol: t.Col + len(t.Value) + 1,
	})
}

// parseModuleDecl requires the file to begin with `module <ident>`.
func (p *parser) parseModuleDecl() bool {
	for p.at(state.TokNewline) {
		p.advance()
	}

	if !p.at(state.TokModule) {
		p.errAt(p.cur(), "source file must begin with a module declaration")
		return false
	}
	p.advance()

	nameTok := p.cur()
	if nameTok.Kind != state.TokIdent {
		p.errAt(nameTok, "expected a module name after `module`")
		return false
	}
	p.advance()

	p.st.Sub.ThisPack = nameTok.Value

	if p.at(state.TokNewline) {
		p.advance()
	}
	return true
}

func (p *parser) parseTopLevel() (state.SourceDef, bool) {
	switch p.cur().Kind {
	case state.TokImport:
		return p.parseImport()
	case state.TokDef:
		return p.parseDef()
	default:
		p.errAt(p.cur(), fmt.Sprintf("expected `import` or `def`, found %q", p.cur().Value))
		return state.SourceDef{}, false
	}
}

func (p *parser) parseImport() (state.SourceDef, bool) {
	kw := p.advance()
	nameTok := p.cur()
	if nameTok.Kind != state.TokIdent {
		p.errAt(nameTok, "expected a module name after `import`")
		return state.SourceDef{}, false
	}
	p.advance()

	if p.at(state.TokNewline) {
		p.advance()
	}

	return state.SourceDef{
		Kind: state.DefImport,
		Name: nameTok.Value,
		Pos:  logging.TextPosition{StartLn: kw.Line, EndLn: nameTok.Line, StartCol: kw.Col, EndCol: nameTok.Col},
	}, true
}

func (p *parser) parseDef() (state.SourceDef, bool) {
	kw := p.advance()

	nameTok := p.cur()
	if nameTok.Kind != state.TokIdent {
		p.errAt(nameTok, "expected an identifier after `def`")
		return state.SourceDef{}, false
	}
	p.advance()

	if !p.at(state.TokAssign) {
		p.errAt(p.cur(), "expected `=` in `def` binding")
		return state.SourceDef{}, false
	}
	p.advance()

	valTok := p.cur()
	def := state.SourceDef{
		Kind: state.DefValue,
		Name: nameTok.Value,
		Pos:  logging.TextPosition{StartLn: kw.Line, EndLn: valTok.Line, StartCol: kw.Col, EndCol: valTok.Col + len(valTok.Value)},
	}

	switch valTok.Kind {
	case state.TokInt, state.TokString, state.TokBool:
		def.LiteralKind = valTok.Kind
		def.LiteralValue = valTok.Value
	case state.TokIdent:
		def.RefName = valTok.Value
	default:
		p.errAt(valTok, "expected a literal or identifier on the right of `=`")
		return state.SourceDef{}, false
	}
	p.advance()

	if p.at(state.TokNewline) {
		p.advance()
	}

	return def, true
}
