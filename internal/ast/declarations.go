package ast

import (
	"strings"

	"github.com/go-slc/slc/internal/lexer"
	"github.com/go-slc/slc/internal/types"
)

// VarKind distinguishes a `let` binding (mutable) from a `const` binding
// (immutable).
type VarKind int

const (
	Mutable VarKind = iota
	Immutable
)

func (k VarKind) String() string {
	if k == Mutable {
		return "let"
	}
	return "const"
}

// VariableDecl is a `let`/`const` declaration. Init is either a plain
// expression or a block whose implicit-return value is the initializer.
type VariableDecl struct {
	Token lexer.Token // the 'let' or 'const' token
	Kind  VarKind
	Name  string
	Init  Expression
}

func (v *VariableDecl) declNode()               {}
func (v *VariableDecl) TokenLiteral() string    { return v.Token.Literal }
func (v *VariableDecl) Pos() lexer.Position     { return v.Token.Pos }
func (v *VariableDecl) String() string {
	return v.Kind.String() + " " + v.Name + " = " + v.Init.String() + ";"
}

// Param is one entry of a function's ordered parameter list.
type Param struct {
	Name string
	Type types.Type
}

// FunctionDecl is a `fun` declaration. Return is types.Void when the
// arrow-return-type is omitted.
type FunctionDecl struct {
	Token  lexer.Token // the 'fun' token
	Name   string
	Params []Param
	Return types.Type
	Body   *Block
}

func (f *FunctionDecl) declNode()            {}
func (f *FunctionDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDecl) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDecl) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.Name + ": " + p.Type.String()
	}
	sig := "fun " + f.Name + "(" + strings.Join(parts, ", ") + ")"
	if !f.Return.IsVoid() {
		sig += " -> " + f.Return.String()
	}
	return sig + " " + f.Body.String()
}
