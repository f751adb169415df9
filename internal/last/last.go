// Package last defines the linearized single-assignment form the
// Lowerer produces from an AST. LAST is a flat sequence of units; every
// operand of every Binary or Call is an Identifier or a Literal, never a
// nested expression.
package last

import "github.com/go-slc/slc/internal/types"

// Alloc distinguishes an SSA binding (immutable, single-assignment) from
// a Stack binding (a mutable slot that may be read and overwritten).
type Alloc int

const (
	SSA Alloc = iota
	Stack
)

func (a Alloc) String() string {
	if a == Stack {
		return "Stack"
	}
	return "SSA"
}

// Expr is the LAST expression shape: the same variant set as the AST's
// expressions, but constrained so Binary and Call operands are always
// Identifier or Literal.
type Expr interface {
	exprNode()
}

// Literal carries a value exactly as the AST's ast.Literal did; LAST
// never re-interprets literal text.
type Literal struct {
	Kind LiteralKind
	Text string
	Bool bool
}

type LiteralKind int

const (
	NumberLit LiteralKind = iota
	StringLit
	BoolLit
)

func (Literal) exprNode() {}

// Identifier references a name bound by an earlier unit, a function
// parameter, or a function name in the mangler table (invariant).
type Identifier struct {
	Name string
}

func (Identifier) exprNode() {}

// Binary is a leaf-operand binary operation: Left and Right are each an
// Identifier or a Literal (critical constraint), never nested.
type Binary struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (Binary) exprNode() {}

// Call is a leaf-operand function call: every argument is an Identifier
// or a Literal.
type Call struct {
	Callee string
	Args   []Expr
}

func (Call) exprNode() {}

// Unit is one element of a LAST sequence: a Decl, a Stmt, or a bare Expr
// evaluated for side effects.
type Unit interface {
	unitNode()
}

// Decl introduces a name bound to expr. Temporaries the Lowerer
// introduces are SSA decls named by a fresh decimal string from the
// function's monotonic counter; a declared variable is named by its
// (possibly shadow-suffixed) source identifier, as a Stack decl for
// `let` and an SSA decl for `const`.
type Decl struct {
	Alloc Alloc
	Name  string
	Expr  Expr
}

func (Decl) unitNode() {}

// FunctionDecl represents a lowered function: a mangled name, its
// parameter list, return type, and its body as a unit sequence. It is
// itself a Unit so it can sit in the top-level LAST sequence alongside
// global variable Decls.
type FunctionDecl struct {
	MangledName string
	Params      []Param
	Return      types.Type
	Body        []Unit
}

func (FunctionDecl) unitNode() {}

// Param is one function parameter, visible in the body's scope under its
// source name with no remapping.
type Param struct {
	Name string
	Type types.Type
}

// Return is `Stmt(Return(expr))`: expr is always an Identifier, since
// the statement lowerer binds the return expression to a fresh name
// before emitting the Return unit.
type Return struct {
	Value Identifier
}

func (Return) unitNode() {}

// ControlFlow is `Stmt(ControlFlow(cond, then-seq, else-seq?))`. Cond is
// always an Identifier; Then and Else are complete, self-contained unit
// sequences (IR-emitter contract).
type ControlFlow struct {
	Cond Identifier
	Then []Unit
	Else []Unit // nil if absent
}

func (ControlFlow) unitNode() {}

// Loop is `Stmt(Loop(While(...)))`, carrying a separated header and body:
// Header lowers the condition (re-evaluated each iteration), Cond is the
// header's final identifier, Body is the loop body's unit sequence.
type Loop struct {
	Header []Unit
	Cond   Identifier
	Body   []Unit
}

func (Loop) unitNode() {}

// ExprStmt is a bare expression evaluated for side effects (a mid-block
// call like `foo(x);`).
type ExprStmt struct {
	Expr Expr
}

func (ExprStmt) unitNode() {}
