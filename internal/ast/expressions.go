package ast

import (
	"strings"

	"github.com/go-slc/slc/internal/lexer"
)

// LiteralKind tags which kind of literal token backs a Literal node:
// NUMBER, STRING, or a boolean (TRUE and FALSE share BoolLit).
type LiteralKind int

const (
	NumberLit LiteralKind = iota
	StringLit
	BoolLit
)

// Literal is a typed literal value (Expression.Literal). Number
// literals keep their source spelling verbatim ("leaf-operand"
// constraint never requires arithmetic on the literal text itself until
// lowering decides what to do with it).
type Literal struct {
	Token lexer.Token
	Kind  LiteralKind
	Text  string // NumberLit/StringLit spelling
	Bool  bool   // valid when Kind == BoolLit
}

func (l *Literal) expressionNode()    {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() lexer.Position  { return l.Token.Pos }
func (l *Literal) String() string {
	switch l.Kind {
	case StringLit:
		return "\"" + l.Text + "\""
	case BoolLit:
		if l.Bool {
			return "true"
		}
		return "false"
	default:
		return l.Text
	}
}

// Identifier is a reference to a bound name (Expression.Identifier).
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()    {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }

// BinaryExpr is a two-operand operator application (Expression.Binary).
// Operator is the token spelling, e.g. "+", "==".
type BinaryExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpr) expressionNode()    {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// CallExpr is a function call `ident(args)` (Expression.Call).
// Callee is a bare name: the language has no first-class function values
// in scope, so the callee is always resolved by name.
type CallExpr struct {
	Token  lexer.Token // the callee identifier token
	Callee string
	Args   []Expression
}

func (c *CallExpr) expressionNode()    {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpr) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee + "(" + strings.Join(parts, ", ") + ")"
}
