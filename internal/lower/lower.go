// Package lower implements the Lowerer: it turns an *ast.Block
// into a flat LAST unit sequence. Every Binary/Call operand in the
// result is an Identifier or a Literal, never a nested expression — the
// central invariant the rest of this package exists to enforce.
package lower

import (
	"github.com/go-slc/slc/internal/ast"
	"github.com/go-slc/slc/internal/last"
)

// ctx is the lowering state for one function body or the top-level
// sequence: a monotonic fresh-name counter and a scope stack, both
// reset per top-level function (state item 1).
type ctx struct {
	counter int
	sc      *scope
}

func newCtx() *ctx {
	return &ctx{sc: newScope()}
}

// fresh allocates the next SSA name: successive decimal strings from
// this context's counter (state item 1).
func (c *ctx) fresh() string {
	n := c.counter
	c.counter++
	return suffixed("", n)
}

// Lowerer holds the cross-function state that must stay consistent for
// the whole program: the name mangler (state item 2), shared by
// every function declaration and call site.
type Lowerer struct {
	mangler *mangler
}

// New returns a Lowerer ready to lower one program.
func New() *Lowerer {
	return &Lowerer{mangler: newMangler()}
}

// Lower turns the parsed program root into a LAST unit sequence. Per
// propagation policy, lowering stops at the first error.
func Lower(root *ast.Block) ([]last.Unit, *Error) {
	return New().LowerProgram(root)
}

// LowerProgram lowers root's top-level items: function declarations
// become last.FunctionDecl units; top-level variable declarations share
// one context, treating the program root as its own fresh-counter/scope
// region exactly as a function body would (generalizes "fresh per
// top-level function" to the top-level sequence itself, since nothing
// in grammar forbids top-level `let`).
func (lw *Lowerer) LowerProgram(root *ast.Block) ([]last.Unit, *Error) {
	topCtx := newCtx()
	var out []last.Unit
	for _, item := range root.Items {
		switch d := item.(type) {
		case *ast.FunctionDecl:
			fn, err := lw.lowerFunction(d)
			if err != nil {
				return nil, err
			}
			out = append(out, fn)
		case *ast.VariableDecl:
			units, err := lw.lowerVariableDecl(d, topCtx)
			if err != nil {
				return nil, err
			}
			out = append(out, units...)
		default:
			return nil, &Error{Pos: item.Pos(), Code: ErrDeclAsExpression, Hint: "expected a top-level declaration"}
		}
	}
	return out, nil
}

// lowerFunction lowers one function declaration (declaration
// lowering, Function case): a fresh scope and fresh-name counter, with
// parameters bound under their source names, then the body lowered with
// no sink (its tail item, if an ImplicitReturn, is a true Return).
func (lw *Lowerer) lowerFunction(fn *ast.FunctionDecl) (last.FunctionDecl, *Error) {
	mangled := lw.mangler.mangle(fn.Name)
	fctx := newCtx()

	params := make([]last.Param, len(fn.Params))
	for i, prm := range fn.Params {
		fctx.sc.bindParam(prm.Name)
		params[i] = last.Param{Name: prm.Name, Type: prm.Type}
	}

	body, err := lw.lowerItems(fn.Body.Items, fctx, "")
	if err != nil {
		return last.FunctionDecl{}, err
	}
	return last.FunctionDecl{MangledName: mangled, Params: params, Return: fn.Return, Body: body}, nil
}

// lowerBlock lowers a nested block (an if/else branch, a while body, or
// a braced block-valued expression) in its own scope layer. sink is the
// name an enclosing expression wants the block's implicit-return value
// bound to; "" means the block is not itself block-valued (a function
// body, or a loop body).
func (lw *Lowerer) lowerBlock(block *ast.Block, c *ctx, sink string) ([]last.Unit, *Error) {
	c.sc.push()
	defer c.sc.pop()
	return lw.lowerItems(block.Items, c, sink)
}

func (lw *Lowerer) lowerItems(items []ast.Item, c *ctx, sink string) ([]last.Unit, *Error) {
	var out []last.Unit
	for _, item := range items {
		units, err := lw.lowerItem(item, c, sink)
		if err != nil {
			return nil, err
		}
		out = append(out, units...)
	}
	return out, nil
}

// lowerItem dispatches one block item (grammar: item := decl |
// statement | expr ';' | expr).
func (lw *Lowerer) lowerItem(item ast.Item, c *ctx, sink string) ([]last.Unit, *Error) {
	switch v := item.(type) {
	case *ast.FunctionDecl:
		fn, err := lw.lowerFunction(v)
		if err != nil {
			return nil, err
		}
		return []last.Unit{fn}, nil
	case *ast.VariableDecl:
		return lw.lowerVariableDecl(v, c)
	case *ast.ReturnStatement:
		return lw.lowerReturn(v, c)
	case *ast.ImplicitReturnStatement:
		return lw.lowerImplicitReturn(v, c, sink)
	case *ast.ControlFlowStatement:
		return lw.lowerControlFlowStmt(v, c, sink)
	case *ast.WhileStatement:
		return lw.lowerWhile(v, c)
	case *ast.AssignmentStatement:
		return lw.lowerAssignment(v, c)
	case ast.Expression:
		return lw.lowerExprForEffect(v, c)
	default:
		return nil, &Error{Pos: item.Pos(), Code: ErrDeclAsExpression, Hint: "unrecognized block item"}
	}
}

// lowerVariableDecl lowers `('let'|'const') name = init;`: the initializer
// is lowered into a fresh temporary, then that temporary is bound to the
// declared name (shadow-suffixed if taken), Stack-allocated for `let`, SSA
// for `const`.
func (lw *Lowerer) lowerVariableDecl(v *ast.VariableDecl, c *ctx) ([]last.Unit, *Error) {
	t := c.fresh()
	units, err := lw.lowerExprTo(v.Init, c, t)
	if err != nil {
		return nil, err
	}
	canonical := c.sc.declare(v.Name)
	alloc := last.SSA
	if v.Kind == ast.Mutable {
		alloc = last.Stack
	}
	units = append(units, last.Decl{Alloc: alloc, Name: canonical, Expr: last.Identifier{Name: t}})
	return units, nil
}

// lowerReturn lowers `return expr;`: expr into a fresh name r, then
// Stmt(Return(Identifier(r))).
func (lw *Lowerer) lowerReturn(r *ast.ReturnStatement, c *ctx) ([]last.Unit, *Error) {
	rn := c.fresh()
	units, err := lw.lowerExprTo(r.Value, c, rn)
	if err != nil {
		return nil, err
	}
	units = append(units, last.Return{Value: last.Identifier{Name: rn}})
	return units, nil
}

// lowerImplicitReturn lowers a block's trailing no-semicolon expression.
// When sink != "" the block is itself block-valued, so the value binds
// to sink as an SSA decl, letting the enclosing expression pick it up
// ("sink name" threading). When sink == "" this is a function
// body's tail, which behaves exactly like an explicit return.
func (lw *Lowerer) lowerImplicitReturn(ir *ast.ImplicitReturnStatement, c *ctx, sink string) ([]last.Unit, *Error) {
	if sink == "" {
		rn := c.fresh()
		units, err := lw.lowerExprTo(ir.Value, c, rn)
		if err != nil {
			return nil, err
		}
		units = append(units, last.Return{Value: last.Identifier{Name: rn}})
		return units, nil
	}
	rn := c.fresh()
	units, err := lw.lowerExprTo(ir.Value, c, rn)
	if err != nil {
		return nil, err
	}
	units = append(units, last.Decl{Alloc: last.SSA, Name: sink, Expr: last.Identifier{Name: rn}})
	return units, nil
}

// lowerControlFlowStmt lowers an if/else used as a statement (sink ==
// "") or as a block-valued expression (sink != ""): the condition
// lowers into a fresh name, and Then/Else lower as block sequences with
// sink threaded through so each branch's ImplicitReturn binds to the
// same name.
func (lw *Lowerer) lowerControlFlowStmt(cf *ast.ControlFlowStatement, c *ctx, sink string) ([]last.Unit, *Error) {
	condName := c.fresh()
	units, err := lw.lowerExprTo(cf.Condition, c, condName)
	if err != nil {
		return nil, err
	}

	thenUnits, err := lw.lowerBlock(cf.Then, c, sink)
	if err != nil {
		return nil, err
	}

	var elseUnits []last.Unit
	if cf.Else != nil {
		elseUnits, err = lw.lowerBlock(cf.Else, c, sink)
		if err != nil {
			return nil, err
		}
	}

	units = append(units, last.ControlFlow{Cond: last.Identifier{Name: condName}, Then: thenUnits, Else: elseUnits})
	return units, nil
}

// lowerWhile lowers `while cond { body }`: cond becomes the loop's
// re-evaluated header, body lowers with no sink since a loop is never
// block-valued ("separated header and body sequences").
func (lw *Lowerer) lowerWhile(w *ast.WhileStatement, c *ctx) ([]last.Unit, *Error) {
	condName := c.fresh()
	header, err := lw.lowerExprTo(w.Condition, c, condName)
	if err != nil {
		return nil, err
	}
	body, err := lw.lowerBlock(w.Body, c, "")
	if err != nil {
		return nil, err
	}
	return []last.Unit{last.Loop{Header: header, Cond: last.Identifier{Name: condName}, Body: body}}, nil
}

// lowerAssignment lowers the supplemental AssignmentStatement (DESIGN.md):
// the new value lowers into a fresh temporary, then the Stack slot
// already bound to Name is overwritten by re-declaring its *same*
// canonical name — distinct from lowerVariableDecl, which always
// allocates a new canonical name via declare().
func (lw *Lowerer) lowerAssignment(a *ast.AssignmentStatement, c *ctx) ([]last.Unit, *Error) {
	t := c.fresh()
	units, err := lw.lowerExprTo(a.Value, c, t)
	if err != nil {
		return nil, err
	}
	canonical, ok := c.sc.lookupOK(a.Name)
	if !ok {
		return nil, &Error{Pos: a.Pos(), Code: ErrUnboundIdentifier, Hint: "assignment to undeclared name " + a.Name}
	}
	units = append(units, last.Decl{Alloc: last.Stack, Name: canonical, Expr: last.Identifier{Name: t}})
	return units, nil
}

// lowerExprTo is the central expression-lowering contract:
// lower expr such that the returned unit sequence makes target hold its
// value. For Literal/Identifier/Binary/Call the sequence ends with an
// SSA decl of target; ControlFlow-valued expressions are the documented
// exception (see lowerControlFlowStmt), ending instead with the branch
// statement whose arms each bind target themselves.
func (lw *Lowerer) lowerExprTo(expr ast.Expression, c *ctx, target string) ([]last.Unit, *Error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return []last.Unit{last.Decl{Alloc: last.SSA, Name: target, Expr: toLastLiteral(e)}}, nil

	case *ast.Identifier:
		canonical, ok := c.sc.lookupOK(e.Name)
		if !ok {
			return nil, &Error{Pos: e.Pos(), Code: ErrUnboundIdentifier, Hint: "reference to undeclared name " + e.Name}
		}
		return []last.Unit{last.Decl{Alloc: last.SSA, Name: target, Expr: last.Identifier{Name: canonical}}}, nil

	case *ast.BinaryExpr:
		// Lower the right operand first, then the left — the
		// right-then-left unit order this produces is the rule's whole
		// point, independent of which operand the split-point algorithm
		// chose as syntactic left/right.
		rhsName := c.fresh()
		rhsUnits, err := lw.lowerExprTo(e.Right, c, rhsName)
		if err != nil {
			return nil, err
		}
		lhsName := c.fresh()
		lhsUnits, err := lw.lowerExprTo(e.Left, c, lhsName)
		if err != nil {
			return nil, err
		}
		units := append(rhsUnits, lhsUnits...)
		units = append(units, last.Decl{
			Alloc: last.SSA,
			Name:  target,
			Expr:  last.Binary{Left: last.Identifier{Name: lhsName}, Operator: e.Operator, Right: last.Identifier{Name: rhsName}},
		})
		return units, nil

	case *ast.CallExpr:
		var units []last.Unit
		args := make([]last.Expr, len(e.Args))
		for i, a := range e.Args {
			an := c.fresh()
			argUnits, err := lw.lowerExprTo(a, c, an)
			if err != nil {
				return nil, err
			}
			units = append(units, argUnits...)
			args[i] = last.Identifier{Name: an}
		}
		mangled := lw.mangler.mangle(e.Callee)
		units = append(units, last.Decl{Alloc: last.SSA, Name: target, Expr: last.Call{Callee: mangled, Args: args}})
		return units, nil

	case *ast.Block:
		return lw.lowerBlock(e, c, target)

	case *ast.ControlFlowStatement:
		return lw.lowerControlFlowStmt(e, c, target)

	default:
		return nil, &Error{Pos: expr.Pos(), Code: ErrDeclAsExpression, Hint: "not a valid expression"}
	}
}

// lowerExprForEffect lowers a bare mid-block expression evaluated only
// for its side effects, e.g. `log(x);` (Expr(expr) unit). The
// expression lowers exactly as any other, then its final SSA decl is
// replaced with an ExprStmt carrying the same underlying Expr, since
// the name it would have bound is never referenced.
func (lw *Lowerer) lowerExprForEffect(expr ast.Expression, c *ctx) ([]last.Unit, *Error) {
	t := c.fresh()
	units, err := lw.lowerExprTo(expr, c, t)
	if err != nil {
		return nil, err
	}
	if n := len(units); n > 0 {
		if d, ok := units[n-1].(last.Decl); ok && d.Name == t {
			units[n-1] = last.ExprStmt{Expr: d.Expr}
		}
	}
	return units, nil
}

func toLastLiteral(l *ast.Literal) last.Expr {
	switch l.Kind {
	case ast.StringLit:
		return last.Literal{Kind: last.StringLit, Text: l.Text}
	case ast.BoolLit:
		return last.Literal{Kind: last.BoolLit, Bool: l.Bool}
	default:
		return last.Literal{Kind: last.NumberLit, Text: l.Text}
	}
}
