package parser

import (
	"github.com/go-slc/slc/internal/ast"
	"github.com/go-slc/slc/internal/lexer"
)

// precedence is the frozen lattice (lowest → highest, excluding
// assignment which is statement-level, not an expression operator here):
// logical-or < logical-and < comparisons < additive < multiplicative.
// Lower numbers split first (bind loosest).
var precedence = map[lexer.TokenType]int{
	lexer.OR_OR:   1,
	lexer.AND_AND: 2,
	lexer.EQ:      3,
	lexer.NOT_EQ:  3,
	lexer.LT:      3,
	lexer.GT:      3,
	lexer.LE:      3,
	lexer.GE:      3,
	lexer.PLUS:    4,
	lexer.MINUS:   4,
	lexer.STAR:    5,
	lexer.SLASH:   5,
}

// splitPoint finds the lowest-precedence operator at depth zero in
// tokens: scan the token slice left-to-right, tracking depth of () and
// {} nesting, and among operators encountered at depth zero, identify
// the one with minimum precedence (ties resolved to the rightmost
// occurrence, yielding left-associative grouping). Returns -1 if no
// operator is found (the slice is a leaf).
func splitPoint(tokens []lexer.Token) int {
	depth := 0
	best := -1
	bestRank := 1 << 30
	for i, t := range tokens {
		switch t.Type {
		case lexer.LPAREN, lexer.LBRACE:
			depth++
			continue
		case lexer.RPAREN, lexer.RBRACE:
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		rank, isOp := precedence[t.Type]
		if !isOp {
			continue
		}
		if rank <= bestRank {
			bestRank = rank
			best = i
		}
	}
	return best
}

// parseExpr parses a token slice into an Expression using the
// lowest-precedence split-point algorithm. Records a parse error
// and returns nil on a malformed slice.
func (p *Parser) parseExpr(tokens []lexer.Token) ast.Expression {
	if len(tokens) == 0 {
		p.addError(ErrUnexpectedToken, "expected an expression")
		return nil
	}

	if idx := splitPoint(tokens); idx >= 0 {
		left := p.parseExpr(tokens[:idx])
		if left == nil {
			return nil
		}
		right := p.parseExpr(tokens[idx+1:])
		if right == nil {
			return nil
		}
		return &ast.BinaryExpr{Token: tokens[idx], Left: left, Operator: tokens[idx].Literal, Right: right}
	}

	return p.parseLeaf(tokens)
}

// parseLeaf handles the no-split-point productions: a literal,
// an identifier, a parenthesized expression (strip one outer pair), a
// braced block, or a call `ident(args)`.
func (p *Parser) parseLeaf(tokens []lexer.Token) ast.Expression {
	if len(tokens) == 1 {
		return p.parseAtom(tokens[0])
	}

	first := tokens[0]

	if first.Type == lexer.LPAREN {
		if closeIdx, ok := matchParen(tokens, 0); ok && closeIdx == len(tokens)-1 {
			return p.parseExpr(tokens[1 : len(tokens)-1])
		}
	}

	if first.Type == lexer.LBRACE {
		if closeIdx, ok := matchBrace(tokens, 0); ok && closeIdx == len(tokens)-1 {
			return parseBlockSlice(tokens, p)
		}
	}

	if first.Type == lexer.IDENT && len(tokens) >= 3 && tokens[1].Type == lexer.LPAREN {
		if closeIdx, ok := matchParen(tokens, 1); ok && closeIdx == len(tokens)-1 {
			return p.parseCallArgs(first, tokens[2:len(tokens)-1])
		}
	}

	p.addError(ErrUnexpectedToken, "malformed expression")
	return nil
}

func (p *Parser) parseAtom(tok lexer.Token) ast.Expression {
	switch tok.Type {
	case lexer.NUMBER:
		return &ast.Literal{Token: tok, Kind: ast.NumberLit, Text: tok.Literal}
	case lexer.STRING:
		return &ast.Literal{Token: tok, Kind: ast.StringLit, Text: tok.Literal}
	case lexer.TRUE:
		return &ast.Literal{Token: tok, Kind: ast.BoolLit, Bool: true}
	case lexer.FALSE:
		return &ast.Literal{Token: tok, Kind: ast.BoolLit, Bool: false}
	case lexer.IDENT:
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	default:
		p.addError(ErrUnexpectedToken, "expected a literal or identifier")
		return nil
	}
}

// parseCallArgs builds a CallExpr from the callee token and the raw
// token slice between its parens, splitting arguments on top-level
// commas (call leaf production).
func (p *Parser) parseCallArgs(callee lexer.Token, argTokens []lexer.Token) ast.Expression {
	var args []ast.Expression
	if len(argTokens) > 0 {
		for _, argSlice := range splitTopLevel(argTokens, lexer.COMMA) {
			arg := p.parseExpr(argSlice)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}
	}
	return &ast.CallExpr{Token: callee, Callee: callee.Literal, Args: args}
}

// parseBlockSlice parses a self-contained `{ ... }` token slice as a
// block-valued expression, sharing the error accumulator of the
// enclosing parse but not its cursor.
func parseBlockSlice(tokens []lexer.Token, outer *Parser) ast.Expression {
	sub := &Parser{tokens: append(append([]lexer.Token{}, tokens...), lexer.NewToken(lexer.EOF, "", tokens[len(tokens)-1].Pos))}
	block := sub.parseBlock()
	outer.errors = append(outer.errors, sub.errors...)
	if block == nil {
		return nil
	}
	return block
}
