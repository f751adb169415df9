// Package emitter is a minimal IR emitter: it walks the LAST sequence
// and renders each unit to a readable pseudo-IR line rather than real
// LLVM textual IR, since real LLVM IR construction would normally hand
// off to an external builder library.
package emitter

import (
	"fmt"
	"strings"

	"github.com/go-slc/slc/internal/last"
)

// Emit walks units linearly — every Decl(SSA,...)
// defines a value later Identifier references resolve to, every
// Decl(Stack, ...) is an alloca-and-store, Binary/Call operands are
// always Identifier or Literal, ControlFlow branches are self-contained
// sequences, and Loop carries a separated header and body — and
// produces the textual contents written to `<stem>.ll`.
func Emit(units []last.Unit) string {
	var b strings.Builder
	for _, u := range units {
		emitUnit(&b, u, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func emitUnit(b *strings.Builder, u last.Unit, depth int) {
	indent(b, depth)
	switch v := u.(type) {
	case last.Decl:
		fmt.Fprintf(b, "%%%s = %s %s\n", v.Name, v.Alloc, emitExpr(v.Expr))
	case last.Return:
		fmt.Fprintf(b, "ret %%%s\n", v.Value.Name)
	case last.ExprStmt:
		fmt.Fprintf(b, "%s\n", emitExpr(v.Expr))
	case last.ControlFlow:
		fmt.Fprintf(b, "br %%%s {\n", v.Cond.Name)
		for _, t := range v.Then {
			emitUnit(b, t, depth+1)
		}
		if v.Else != nil {
			indent(b, depth)
			b.WriteString("} else {\n")
			for _, e := range v.Else {
				emitUnit(b, e, depth+1)
			}
		}
		indent(b, depth)
		b.WriteString("}\n")
	case last.Loop:
		indent(b, depth)
		b.WriteString("loop {\n")
		for _, h := range v.Header {
			emitUnit(b, h, depth+1)
		}
		indent(b, depth+1)
		fmt.Fprintf(b, "while %%%s {\n", v.Cond.Name)
		for _, s := range v.Body {
			emitUnit(b, s, depth+2)
		}
		indent(b, depth+1)
		b.WriteString("}\n")
		indent(b, depth)
		b.WriteString("}\n")
	case last.FunctionDecl:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = fmt.Sprintf("%%%s: %s", p.Name, p.Type)
		}
		fmt.Fprintf(b, "define @%s(%s) -> %s {\n", v.MangledName, strings.Join(params, ", "), v.Return)
		for _, bu := range v.Body {
			emitUnit(b, bu, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	}
}

func emitExpr(e last.Expr) string {
	switch v := e.(type) {
	case last.Literal:
		switch v.Kind {
		case last.StringLit:
			return fmt.Sprintf("%q", v.Text)
		case last.BoolLit:
			return fmt.Sprintf("%v", v.Bool)
		default:
			return v.Text
		}
	case last.Identifier:
		return "%" + v.Name
	case last.Binary:
		return fmt.Sprintf("%s %s %s", emitExpr(v.Left), v.Operator, emitExpr(v.Right))
	case last.Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = emitExpr(a)
		}
		return fmt.Sprintf("call @%s(%s)", v.Callee, strings.Join(args, ", "))
	default:
		return "<?>"
	}
}
