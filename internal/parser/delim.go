package parser

import "github.com/go-slc/slc/internal/lexer"

// matchDelimiter is the delimiter-balance utility: given a token
// slice and the index of an opener, it returns the index of the matching
// closer by maintaining a single counter (+1 on open, -1 on close,
// returning when the counter reaches zero). It is generic over the
// delimiter pair so the same function serves parens and braces.
func matchDelimiter(tokens []lexer.Token, openIdx int, open, close lexer.TokenType) (closeIdx int, ok bool) {
	depth := 0
	for i := openIdx; i < len(tokens); i++ {
		switch tokens[i].Type {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// matchParen finds the LPAREN/RPAREN matching tokens[openIdx].
func matchParen(tokens []lexer.Token, openIdx int) (int, bool) {
	return matchDelimiter(tokens, openIdx, lexer.LPAREN, lexer.RPAREN)
}

// matchBrace finds the LBRACE/RBRACE matching tokens[openIdx].
func matchBrace(tokens []lexer.Token, openIdx int) (int, bool) {
	return matchDelimiter(tokens, openIdx, lexer.LBRACE, lexer.RBRACE)
}

// splitTopLevel splits tokens on every occurrence of sep that sits at
// depth zero with respect to both paren and brace nesting — used for
// comma-separated call arguments.
func splitTopLevel(tokens []lexer.Token, sep lexer.TokenType) [][]lexer.Token {
	if len(tokens) == 0 {
		return nil
	}
	var parts [][]lexer.Token
	depth := 0
	start := 0
	for i, t := range tokens {
		switch t.Type {
		case lexer.LPAREN, lexer.LBRACE:
			depth++
		case lexer.RPAREN, lexer.RBRACE:
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, tokens[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, tokens[start:])
	return parts
}
