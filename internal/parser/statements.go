package parser

import (
	"github.com/go-slc/slc/internal/ast"
	"github.com/go-slc/slc/internal/lexer"
)

// compoundAssignOps maps the two-character assignment operators to their
// AssignOp tag. Resolves open question (a): the parser performs the
// rewrite entirely, so the lowerer never sees a compound operator.
var compoundAssignOps = map[lexer.TokenType]ast.AssignOp{
	lexer.PLUS_ASSIGN:  ast.PlusAssign,
	lexer.MINUS_ASSIGN: ast.MinusAssign,
	lexer.STAR_ASSIGN:  ast.StarAssign,
	lexer.SLASH_ASSIGN: ast.SlashAssign,
}

// binaryOpSpelling is the operator text a desugared compound assignment
// expands to, e.g. PLUS_ASSIGN -> "+".
var binaryOpSpelling = map[ast.AssignOp]string{
	ast.PlusAssign:  "+",
	ast.MinusAssign: "-",
	ast.StarAssign:  "*",
	ast.SlashAssign: "/",
}

// parseBlock parses `'{' item* '}'`. Entry: cursor is at '{'.
// Exit: cursor is just past the matching '}'.
func (p *Parser) parseBlock() *ast.Block {
	tok, ok := p.expect(lexer.LBRACE, "expected '{'")
	if !ok {
		return nil
	}
	block := &ast.Block{Token: tok}

	for !p.curIs(lexer.RBRACE) {
		if p.curIs(lexer.EOF) {
			p.addError(ErrUnbalancedDelimiter, "unterminated block")
			return nil
		}
		item, last := p.parseItem()
		if item == nil {
			return nil
		}
		block.Items = append(block.Items, item)
		if last {
			break
		}
	}
	if _, ok := p.expect(lexer.RBRACE, "expected '}'"); !ok {
		return nil
	}
	return block
}

// parseItem parses one `item := decl | statement | expr ';' | expr`.
// The second return value is true when the item was a trailing
// expression with no semicolon (an implicit return), which is always the
// last item a block can have.
func (p *Parser) parseItem() (ast.Item, bool) {
	switch p.cur().Type {
	case lexer.FUN, lexer.LET, lexer.CONST:
		return p.parseDecl(), false
	case lexer.RETURN:
		return p.parseReturnStatement(), false
	case lexer.IF:
		return p.parseIfStatement(), false
	case lexer.WHILE:
		return p.parseWhileStatement(), false
	case lexer.IDENT:
		if _, isAssign := compoundAssignOps[p.peekType(1)]; isAssign || p.peekType(1) == lexer.ASSIGN {
			return p.parseAssignmentStatement(), false
		}
	}
	return p.parseExprItem()
}

func (p *Parser) peekType(n int) lexer.TokenType {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return lexer.EOF
	}
	return p.tokens[idx].Type
}

// parseReturnStatement parses `'return' expr ';'`.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.advance() // 'return'
	slice := p.sliceUntil(lexer.SEMICOLON)
	value := p.parseExpr(slice)
	if value == nil {
		return nil
	}
	if _, ok := p.expect(lexer.SEMICOLON, "expected ';' after return value"); !ok {
		return nil
	}
	return &ast.ReturnStatement{Token: tok, Value: value}
}

// parseIfStatement parses `'if' expr block ('else' (block | if-stmt))?`,
// building the else-if chain as a nested ControlFlowStatement inside a
// single-item Else block.
func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.advance() // 'if'
	slice := p.sliceUntil(lexer.LBRACE)
	cond := p.parseExpr(slice)
	if cond == nil {
		return nil
	}
	then := p.parseBlock()
	if then == nil {
		return nil
	}

	stmt := &ast.ControlFlowStatement{Token: tok, Condition: cond, Then: then}

	if !p.curIs(lexer.ELSE) {
		return stmt
	}
	elseTok := p.advance() // 'else'

	if p.curIs(lexer.IF) {
		nested := p.parseIfStatement()
		if nested == nil {
			return nil
		}
		stmt.Else = &ast.Block{Token: elseTok, Items: []ast.Item{nested}}
		return stmt
	}

	elseBlock := p.parseBlock()
	if elseBlock == nil {
		return nil
	}
	stmt.Else = elseBlock
	return stmt
}

// parseWhileStatement parses `'while' expr block`.
func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.advance() // 'while'
	slice := p.sliceUntil(lexer.LBRACE)
	cond := p.parseExpr(slice)
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseAssignmentStatement parses `ident (= | += | -= | *= | /=) expr ;`,
// desugaring the compound operators in place (option (a)): `x += y`
// becomes Op == Assign, Value == Binary(Identifier(x), y, "+").
func (p *Parser) parseAssignmentStatement() ast.Statement {
	nameTok := p.advance() // identifier
	opTok := p.advance()   // assignment operator

	slice := p.sliceUntil(lexer.SEMICOLON)
	rhs := p.parseExpr(slice)
	if rhs == nil {
		return nil
	}
	if _, ok := p.expect(lexer.SEMICOLON, "expected ';' after assignment"); !ok {
		return nil
	}

	if opTok.Type == lexer.ASSIGN {
		return &ast.AssignmentStatement{Token: nameTok, Name: nameTok.Literal, Op: ast.Assign, Value: rhs}
	}

	spelling := binaryOpSpelling[compoundAssignOps[opTok.Type]]
	desugared := &ast.BinaryExpr{
		Token:    opTok,
		Left:     &ast.Identifier{Token: nameTok, Name: nameTok.Literal},
		Operator: spelling,
		Right:    rhs,
	}
	return &ast.AssignmentStatement{Token: nameTok, Name: nameTok.Literal, Op: ast.Assign, Value: desugared}
}

// parseExprItem parses `expr ';'` or a trailing `expr` with no semicolon,
// the implicit-return case: final without ';' means the block's value.
func (p *Parser) parseExprItem() (ast.Item, bool) {
	slice := p.sliceUntil(lexer.SEMICOLON, lexer.RBRACE)
	expr := p.parseExpr(slice)
	if expr == nil {
		return nil, false
	}
	if p.curIs(lexer.SEMICOLON) {
		p.advance()
		return expr, false
	}
	// No semicolon: must be the block's final item.
	return &ast.ImplicitReturnStatement{Value: expr}, true
}
