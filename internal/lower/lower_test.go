package lower

import (
	"testing"

	"github.com/go-slc/slc/internal/last"
	"github.com/go-slc/slc/internal/parser"
)

func mustLower(t *testing.T, src string) []last.Unit {
	t.Helper()
	root, errs := parser.ParseProgram(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	units, err := Lower(root)
	if err != nil {
		t.Fatalf("unexpected lower error for %q: %v", src, err)
	}
	return units
}

// leafOnly reports whether e is an Identifier or a Literal — the
// universal constraint every Binary/Call operand must satisfy.
func leafOnly(e last.Expr) bool {
	switch e.(type) {
	case last.Identifier, last.Literal:
		return true
	default:
		return false
	}
}

// checkLeafOperands walks every unit in seq and fails t if any Binary or
// Call operand is itself a nested expression.
func checkLeafOperands(t *testing.T, seq []last.Unit) {
	t.Helper()
	var walkExpr func(e last.Expr)
	var walkUnits func(units []last.Unit)

	walkExpr = func(e last.Expr) {
		switch v := e.(type) {
		case last.Binary:
			if !leafOnly(v.Left) {
				t.Errorf("Binary.Left is not a leaf operand: %#v", v.Left)
			}
			if !leafOnly(v.Right) {
				t.Errorf("Binary.Right is not a leaf operand: %#v", v.Right)
			}
		case last.Call:
			for i, a := range v.Args {
				if !leafOnly(a) {
					t.Errorf("Call.Args[%d] is not a leaf operand: %#v", i, a)
				}
			}
		}
	}

	walkUnits = func(units []last.Unit) {
		for _, u := range units {
			switch v := u.(type) {
			case last.Decl:
				walkExpr(v.Expr)
			case last.ExprStmt:
				walkExpr(v.Expr)
			case last.FunctionDecl:
				walkUnits(v.Body)
			case last.ControlFlow:
				walkUnits(v.Then)
				walkUnits(v.Else)
			case last.Loop:
				walkUnits(v.Header)
				walkUnits(v.Body)
			}
		}
	}

	walkUnits(seq)
}

// firstFunction returns the first FunctionDecl unit in units. Mangled
// names are sequential decimal strings assigned in order of first use,
// not derived from the source name, so tests with a single function
// declaration use this rather than searching by name.
func firstFunction(units []last.Unit) *last.FunctionDecl {
	for _, u := range units {
		if fn, ok := u.(last.FunctionDecl); ok {
			return &fn
		}
	}
	return nil
}

func TestLeafOperandInvariantHoldsAcrossNestedArithmetic(t *testing.T) {
	units := mustLower(t, `fun f(a: i32, b: i32, c: i32) -> i32 { a + b * c - 1 }`)
	checkLeafOperands(t, units)
}

func TestBinaryLowersRightOperandBeforeLeft(t *testing.T) {
	// a call used as the right operand must lower (and so bind its
	// temporary) before the left operand's own temporary is allocated.
	units := mustLower(t, `fun f(a: i32) -> i32 { a + g(a) }`)
	fn := firstFunction(units)
	if fn == nil {
		t.Fatalf("function not found")
	}
	var sawCall, sawBinaryAfterCall bool
	var bin last.Binary
	definedAt := map[string]int{}
	for i, u := range fn.Body {
		d, ok := u.(last.Decl)
		if !ok {
			continue
		}
		definedAt[d.Name] = i
		if _, ok := d.Expr.(last.Call); ok {
			sawCall = true
		}
		if b, ok := d.Expr.(last.Binary); ok && sawCall {
			sawBinaryAfterCall = true
			bin = b
		}
	}
	if !sawCall || !sawBinaryAfterCall {
		t.Fatalf("expected the right-hand call to lower before the enclosing binary, units=%#v", fn.Body)
	}
	lhs, _ := bin.Left.(last.Identifier)
	rhs, _ := bin.Right.(last.Identifier)
	if definedAt[rhs.Name] >= definedAt[lhs.Name] {
		t.Fatalf("expected right operand %q to be bound before left operand %q, units=%#v", rhs.Name, lhs.Name, fn.Body)
	}
}

func TestFreshNameCounterResetsPerFunction(t *testing.T) {
	units := mustLower(t, `
fun f(a: i32) -> i32 { a + 1 }
fun g(b: i32) -> i32 { b + 2 }
`)
	if len(units) != 2 {
		t.Fatalf("expected 2 top-level units, got %d", len(units))
	}
	f, ok1 := units[0].(last.FunctionDecl)
	g, ok2 := units[1].(last.FunctionDecl)
	if !ok1 || !ok2 {
		t.Fatalf("expected two FunctionDecls, got %T, %T", units[0], units[1])
	}
	firstName := func(body []last.Unit) string {
		for _, u := range body {
			if d, ok := u.(last.Decl); ok {
				return d.Name
			}
		}
		return ""
	}
	if firstName(f.Body) != firstName(g.Body) {
		t.Fatalf("expected both functions' first fresh name to match (counter reset), got %q vs %q",
			firstName(f.Body), firstName(g.Body))
	}
}

func TestLetIsStackAllocConstIsSSA(t *testing.T) {
	units := mustLower(t, `
fun f() {
	let a = 1;
	const b = 2;
}`)
	fn := firstFunction(units)
	var allocs []last.Alloc
	var names []string
	for _, u := range fn.Body {
		if d, ok := u.(last.Decl); ok && (d.Name == "a" || d.Name == "b") {
			allocs = append(allocs, d.Alloc)
			names = append(names, d.Name)
		}
	}
	if len(allocs) != 2 {
		t.Fatalf("expected to find decls for a and b, got names=%v", names)
	}
	if allocs[0] != last.Stack {
		t.Errorf("expected let-bound 'a' to be Stack, got %v", allocs[0])
	}
	if allocs[1] != last.SSA {
		t.Errorf("expected const-bound 'b' to be SSA, got %v", allocs[1])
	}
}

func TestShadowingProducesDistinctCanonicalNames(t *testing.T) {
	units := mustLower(t, `
fun f(a: i32) -> i32 {
	let x = a;
	let x = x + 1;
	x
}`)
	fn := firstFunction(units)
	var xDecls []last.Decl
	for _, u := range fn.Body {
		if d, ok := u.(last.Decl); ok && d.Alloc == last.Stack {
			xDecls = append(xDecls, d)
		}
	}
	if len(xDecls) != 2 {
		t.Fatalf("expected 2 stack decls for shadowed x, got %d: %#v", len(xDecls), xDecls)
	}
	if xDecls[0].Name == xDecls[1].Name {
		t.Fatalf("expected shadow-suffixed distinct canonical names, got the same name twice: %q", xDecls[0].Name)
	}
}

func TestAssignmentReusesCanonicalNameOfOriginalDecl(t *testing.T) {
	units := mustLower(t, `
fun f() -> i32 {
	let a = 1;
	a = 2;
	a
}`)
	fn := firstFunction(units)
	var stackNames []string
	for _, u := range fn.Body {
		if d, ok := u.(last.Decl); ok && d.Alloc == last.Stack {
			stackNames = append(stackNames, d.Name)
		}
	}
	if len(stackNames) != 2 {
		t.Fatalf("expected 2 Stack decls (original + reassignment), got %v", stackNames)
	}
	if stackNames[0] != stackNames[1] {
		t.Fatalf("expected reassignment to reuse the same canonical name, got %q then %q", stackNames[0], stackNames[1])
	}
}

func TestAssignmentToUndeclaredNameIsAnError(t *testing.T) {
	root, errs := parser.ParseProgram(`
fun f() {
	x = 1;
}`)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	_, err := Lower(root)
	if err == nil {
		t.Fatalf("expected a lower error for assignment to an undeclared name")
	}
	if err.Code != ErrUnboundIdentifier {
		t.Fatalf("expected ErrUnboundIdentifier, got %s", err.Code)
	}
}

func TestReferenceToUnboundIdentifierIsAnError(t *testing.T) {
	root, errs := parser.ParseProgram(`fun f() -> i32 { y }`)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	_, err := Lower(root)
	if err == nil {
		t.Fatalf("expected a lower error for an unbound identifier reference")
	}
	if err.Code != ErrUnboundIdentifier {
		t.Fatalf("expected ErrUnboundIdentifier, got %s", err.Code)
	}
}

func TestIfAsExpressionThreadsSinkThroughBothBranches(t *testing.T) {
	units := mustLower(t, `
fun f(a: i32, b: i32) -> i32 {
	let r = if a > b { a } else { b };
	r
}`)
	fn := firstFunction(units)
	var cf *last.ControlFlow
	for _, u := range fn.Body {
		if c, ok := u.(last.ControlFlow); ok {
			cf = &c
		}
	}
	if cf == nil {
		t.Fatalf("expected a ControlFlow unit, got %#v", fn.Body)
	}
	// each branch ends with the SSA decl that binds the shared sink.
	sinkOf := func(units []last.Unit) string {
		if n := len(units); n > 0 {
			if d, ok := units[n-1].(last.Decl); ok && d.Alloc == last.SSA {
				if _, isIdent := d.Expr.(last.Identifier); isIdent {
					return d.Name
				}
			}
		}
		return ""
	}
	thenSink := sinkOf(cf.Then)
	elseSink := sinkOf(cf.Else)
	if thenSink == "" || thenSink != elseSink {
		t.Fatalf("expected both branches to bind the same sink name, got %q vs %q", thenSink, elseSink)
	}
}

func TestWhileSeparatesHeaderAndBody(t *testing.T) {
	units := mustLower(t, `
fun f() {
	let i = 0;
	while i < 3 {
		i = i + 1;
	}
}`)
	fn := firstFunction(units)
	var loop *last.Loop
	for _, u := range fn.Body {
		if l, ok := u.(last.Loop); ok {
			loop = &l
		}
	}
	if loop == nil {
		t.Fatalf("expected a Loop unit, got %#v", fn.Body)
	}
	if len(loop.Header) == 0 {
		t.Fatalf("expected a non-empty header sequence")
	}
	if len(loop.Body) == 0 {
		t.Fatalf("expected a non-empty body sequence")
	}
}

func TestBareExpressionStatementLowersToExprStmt(t *testing.T) {
	units := mustLower(t, `
fun g(x: i32) -> i32 { x }
fun f(a: i32) {
	g(a);
}`)
	fn := units[1].(last.FunctionDecl)
	var sawExprStmt bool
	for _, u := range fn.Body {
		if _, ok := u.(last.ExprStmt); ok {
			sawExprStmt = true
		}
	}
	if !sawExprStmt {
		t.Fatalf("expected a bare call statement to lower to ExprStmt, got %#v", fn.Body)
	}
}

func TestFunctionNamesAreMangledConsistentlyAtDeclAndCallSite(t *testing.T) {
	units := mustLower(t, `
fun add(a: i32, b: i32) -> i32 { a + b }
fun f(a: i32) -> i32 { add(a, 1) }
`)
	add := units[0].(last.FunctionDecl)
	f := units[1].(last.FunctionDecl)
	var calleeName string
	for _, u := range f.Body {
		if d, ok := u.(last.Decl); ok {
			if call, ok := d.Expr.(last.Call); ok {
				calleeName = call.Callee
			}
		}
	}
	if calleeName == "" {
		t.Fatalf("expected to find a call site in f's body")
	}
	if calleeName != add.MangledName {
		t.Fatalf("expected call site callee %q to match declared mangled name %q", calleeName, add.MangledName)
	}
}

func TestParametersAreVisibleUnderSourceNames(t *testing.T) {
	units := mustLower(t, `fun f(a: i32) -> i32 { a }`)
	fn := firstFunction(units)
	if len(fn.Params) != 1 || fn.Params[0].Name != "a" {
		t.Fatalf("expected param named a, got %#v", fn.Params)
	}
	var foundRef bool
	for _, u := range fn.Body {
		if d, ok := u.(last.Decl); ok {
			if ident, ok := d.Expr.(last.Identifier); ok && ident.Name == "a" {
				foundRef = true
			}
		}
	}
	if !foundRef {
		t.Fatalf("expected the body to reference parameter 'a' directly, got %#v", fn.Body)
	}
}
