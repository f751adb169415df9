package lower

import (
	"fmt"

	"github.com/go-slc/slc/internal/lexer"
)

// Error codes: a declaration used where an expression is required, and
// a reference to an identifier unbound at the point of use. Unbound
// references could be deferred to a later semantic pass, but it is
// cheap to catch here since the scope stack already tracks every
// binding.
const (
	ErrDeclAsExpression  = "declaration_as_expression"
	ErrUnboundIdentifier = "unbound_identifier"
)

// Error is a single lowering failure.
type Error struct {
	Pos  lexer.Position
	Code string
	Hint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lower: %s at %s: %s", e.Code, e.Pos, e.Hint)
}
