package parser

import (
	"fmt"

	"github.com/go-slc/slc/internal/lexer"
)

// Error codes, short machine-stable strings rather than typed values:
// unexpected token, unbalanced delimiter, malformed parameter list.
const (
	ErrUnexpectedToken     = "unexpected_token"
	ErrUnbalancedDelimiter = "unbalanced_delimiter"
	ErrMalformedParams     = "malformed_params"
)

// Error is a single parse failure: a token index, its position, a short
// machine-stable code, and a human hint.
type Error struct {
	TokenIdx int
	Pos      lexer.Position
	Code     string
	Hint     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: %s at token %d: %s", e.Code, e.TokenIdx, e.Hint)
}

func newError(idx int, tok lexer.Token, code, hint string) *Error {
	return &Error{TokenIdx: idx, Pos: tok.Pos, Code: code, Hint: hint}
}
