// Package parser implements the recursive-descent parser: a
// token stream becomes an AST rooted at a Block of top-level
// declarations. Expression parsing uses a lowest-precedence split-point
// algorithm rather than Pratt precedence climbing — see expressions.go.
package parser

import (
	"github.com/go-slc/slc/internal/ast"
	"github.com/go-slc/slc/internal/lexer"
	"github.com/go-slc/slc/internal/types"
)

// Parser holds the full pre-scanned token stream (comments filtered, a
// single EOF trailing) and a cursor position. Operating on a materialized
// slice — rather than streaming from the Lexer token by token — is what
// lets the split-point algorithm re-slice and re-scan token ranges
// freely.
type Parser struct {
	tokens []lexer.Token
	pos    int
	errors []*Error
}

// State is a lightweight snapshot for speculative parsing: just the
// cursor position and how many errors had been recorded, enough to
// restore this parser's flat-slice cursor on backtrack.
type State struct {
	pos        int
	errorCount int
}

// New scans source completely (comments dropped — they are ignored by
// the parser) and returns a Parser positioned at the first token.
func New(source string) *Parser {
	var toks []lexer.Token
	for _, t := range lexer.ScanAll(source) {
		if t.Type == lexer.COMMENT {
			continue
		}
		toks = append(toks, t)
	}
	return &Parser{tokens: toks}
}

// Errors returns every accumulated parse error. The CLI reports only the
// first, per propagation policy; tests may want to see more.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) addError(code, hint string) {
	p.errors = append(p.errors, newError(p.pos, p.cur(), code, hint))
}

func (p *Parser) cur() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) curIs(t lexer.TokenType) bool { return p.cur().Type == t }

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t lexer.TokenType, hint string) (lexer.Token, bool) {
	if p.curIs(t) {
		return p.advance(), true
	}
	p.addError(ErrUnexpectedToken, hint)
	return p.cur(), false
}

func (p *Parser) saveState() State { return State{pos: p.pos, errorCount: len(p.errors)} }

func (p *Parser) restoreState(s State) {
	p.pos = s.pos
	p.errors = p.errors[:s.errorCount]
}

// sliceUntil scans forward from the cursor, tracking paren/brace depth,
// and returns the tokens up to (not including) the first occurrence of
// any stopType at depth zero. The cursor is left on the stop token.
func (p *Parser) sliceUntil(stopTypes ...lexer.TokenType) []lexer.Token {
	stop := make(map[lexer.TokenType]bool, len(stopTypes))
	for _, t := range stopTypes {
		stop[t] = true
	}
	start := p.pos
	depth := 0
	for p.pos < len(p.tokens) {
		t := p.cur().Type
		if depth == 0 && stop[t] {
			break
		}
		switch t {
		case lexer.LPAREN, lexer.LBRACE:
			depth++
		case lexer.RPAREN, lexer.RBRACE:
			depth--
		case lexer.EOF:
			return p.tokens[start:p.pos]
		}
		p.advance()
	}
	return p.tokens[start:p.pos]
}

// ParseProgram parses the whole token stream into a root Block of
// top-level declarations (`program := decl*`).
func ParseProgram(source string) (*ast.Block, []*Error) {
	p := New(source)
	root := &ast.Block{}
	for !p.curIs(lexer.EOF) {
		decl := p.parseDecl()
		if decl == nil {
			// Parse error already recorded; stop at first failure.
			break
		}
		root.Items = append(root.Items, decl)
	}
	return root, p.errors
}

// parseDecl dispatches on the leading keyword: fun-decl or var-decl
// (`decl := fun-decl | var-decl`).
func (p *Parser) parseDecl() ast.Decl {
	switch p.cur().Type {
	case lexer.FUN:
		return p.parseFunDecl()
	case lexer.LET, lexer.CONST:
		return p.parseVarDecl()
	default:
		p.addError(ErrUnexpectedToken, "expected 'fun', 'let', or 'const'")
		return nil
	}
}

func (p *Parser) parseType() (types.Type, bool) {
	tok := p.cur()
	if tok.Type != lexer.TYPEKW {
		p.addError(ErrUnexpectedToken, "expected a type name")
		return types.Void, false
	}
	p.advance()
	t, ok := types.Lookup(tok.Literal)
	if !ok {
		p.addError(ErrUnexpectedToken, "unrecognized type spelling "+tok.Literal)
		return types.Void, false
	}
	return t, true
}
