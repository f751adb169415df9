package ast

import "github.com/go-slc/slc/internal/lexer"

// ReturnStatement is an explicit `return expr;`.
type ReturnStatement struct {
	Token lexer.Token // the 'return' token
	Value Expression
}

func (r *ReturnStatement) statementNode()    {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() lexer.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string       { return "return " + r.Value.String() + ";" }

// ImplicitReturnStatement wraps the final expression of a block that has
// no trailing semicolon ("implicit return" rewrite, applied at
// parse time).
type ImplicitReturnStatement struct {
	Value Expression
}

func (r *ImplicitReturnStatement) statementNode()    {}
func (r *ImplicitReturnStatement) TokenLiteral() string { return r.Value.TokenLiteral() }
func (r *ImplicitReturnStatement) Pos() lexer.Position  { return r.Value.Pos() }
func (r *ImplicitReturnStatement) String() string       { return r.Value.String() }

// ControlFlowStatement is an `if cond { } (else ({ } | if ))?`. Else is
// nil when absent. An `else if` chain is represented as a nested
// ControlFlowStatement inside a single-item Else block.
type ControlFlowStatement struct {
	Token     lexer.Token // the 'if' token
	Condition Expression
	Then      *Block
	Else      *Block // nil if absent
}

func (c *ControlFlowStatement) statementNode()    {}
func (c *ControlFlowStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ControlFlowStatement) Pos() lexer.Position  { return c.Token.Pos }

// expressionNode lets an if/else stand in as a block-valued expression,
// e.g. `let a = if b > c { b } else { c };`. Not reachable
// from parseExprItem's split-point grammar since 'if' starts a statement,
// not an expr token; parseExprOrBlock special-cases it for initializers.
func (c *ControlFlowStatement) expressionNode() {}
func (c *ControlFlowStatement) String() string {
	out := "if " + c.Condition.String() + " " + c.Then.String()
	if c.Else != nil {
		out += " else " + c.Else.String()
	}
	return out
}

// WhileStatement is a `while cond { }` loop.
type WhileStatement struct {
	Token     lexer.Token // the 'while' token
	Condition Expression
	Body      *Block
}

func (w *WhileStatement) statementNode()    {}
func (w *WhileStatement) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStatement) Pos() lexer.Position  { return w.Token.Pos }
func (w *WhileStatement) String() string {
	return "while " + w.Condition.String() + " " + w.Body.String()
}

// AssignOp is the operator spelling of an AssignmentStatement.
type AssignOp int

const (
	Assign AssignOp = iota
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
)

func (op AssignOp) String() string {
	switch op {
	case PlusAssign:
		return "+="
	case MinusAssign:
		return "-="
	case StarAssign:
		return "*="
	case SlashAssign:
		return "/="
	default:
		return "="
	}
}

// AssignmentStatement reassigns a Stack binding: `ident (= | += | -= | *=
// | /=) expr ;`. A supplemental node, required to make the Stack/SSA
// distinction meaningful — see DESIGN.md for the grounding. The parser
// desugars the compound operators: `x += y` becomes an AssignmentStatement
// with Op == Assign and Value == Binary(Identifier(x), y, +).
type AssignmentStatement struct {
	Token lexer.Token // the identifier token
	Name  string
	Op    AssignOp
	Value Expression
}

func (a *AssignmentStatement) statementNode()    {}
func (a *AssignmentStatement) TokenLiteral() string { return a.Token.Literal }
func (a *AssignmentStatement) Pos() lexer.Position  { return a.Token.Pos }
func (a *AssignmentStatement) String() string {
	return a.Name + " " + a.Op.String() + " " + a.Value.String() + ";"
}
