package parser

import (
	"github.com/go-slc/slc/internal/ast"
	"github.com/go-slc/slc/internal/lexer"
	"github.com/go-slc/slc/internal/types"
)

// parseFunDecl parses `'fun' ident '(' params? ')' ('->' type)? block`.
func (p *Parser) parseFunDecl() ast.Decl {
	tok := p.advance() // 'fun'

	nameTok, ok := p.expect(lexer.IDENT, "expected function name")
	if !ok {
		return nil
	}

	if _, ok := p.expect(lexer.LPAREN, "expected '(' after function name"); !ok {
		return nil
	}

	var params []ast.Param
	if !p.curIs(lexer.RPAREN) {
		for {
			pname, ok := p.expect(lexer.IDENT, "expected parameter name")
			if !ok {
				return nil
			}
			if _, ok := p.expect(lexer.COLON, "expected ':' after parameter name"); !ok {
				return nil
			}
			ptype, ok := p.parseType()
			if !ok {
				return nil
			}
			params = append(params, ast.Param{Name: pname.Literal, Type: ptype})
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(lexer.RPAREN, "expected ')' after parameter list"); !ok {
		return nil
	}

	ret := types.Void
	if p.curIs(lexer.ARROW) {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return nil
		}
		ret = t
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.FunctionDecl{Token: tok, Name: nameTok.Literal, Params: params, Return: ret, Body: body}
}

// parseVarDecl parses `('let'|'const') ident '=' expr-or-block ';'`.
func (p *Parser) parseVarDecl() ast.Decl {
	tok := p.advance() // 'let' or 'const'
	kind := ast.Mutable
	if tok.Type == lexer.CONST {
		kind = ast.Immutable
	}

	nameTok, ok := p.expect(lexer.IDENT, "expected variable name")
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.ASSIGN, "expected '=' in variable declaration"); !ok {
		return nil
	}

	init := p.parseExprOrBlock(lexer.SEMICOLON)
	if init == nil {
		return nil
	}
	if _, ok := p.expect(lexer.SEMICOLON, "expected ';' after variable declaration"); !ok {
		return nil
	}

	return &ast.VariableDecl{Token: tok, Kind: kind, Name: nameTok.Literal, Init: init}
}

// parseExprOrBlock parses a braced block-valued expression, an `if`
// used as a block-valued expression (`let a = if ... `, not itself
// part of expr grammar but required for var-decl initializers to reach
// an if/else), or a plain expression slice terminated by stop
// (exclusive).
func (p *Parser) parseExprOrBlock(stop lexer.TokenType) ast.Expression {
	if p.curIs(lexer.LBRACE) {
		return p.parseBlock()
	}
	if p.curIs(lexer.IF) {
		stmt := p.parseIfStatement()
		if stmt == nil {
			return nil
		}
		return stmt.(ast.Expression)
	}
	slice := p.sliceUntil(stop)
	return p.parseExpr(slice)
}
