// Package ast defines the abstract syntax tree produced by the parser.
// The tree is rooted at a Block; every non-root node is owned by
// exactly one parent.
package ast

import "github.com/go-slc/slc/internal/lexer"

// Node is the base interface every AST node implements.
type Node interface {
	// TokenLiteral returns the literal text of the node's leading token.
	TokenLiteral() string
	// String renders the node for debugging and golden tests.
	String() string
	// Pos returns the node's source position.
	Pos() lexer.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself being a
// value (though it may wrap one, as ImplicitReturn does).
type Statement interface {
	Node
	statementNode()
}

// Decl is a top-level or block-level declaration: Variable or Function.
type Decl interface {
	Node
	declNode()
}

// Item is anything that may appear inside a Block: a Decl, a Statement, or
// a bare Expression (grammar: item := decl | statement | expr ';' |
// expr).
type Item interface {
	Node
}

// Block is an ordered sequence of items. The program root is a Block of
// top-level declarations; function bodies and control-flow branches are
// Blocks too.
type Block struct {
	Token lexer.Token // the '{' token, or a zero Token for the program root
	Items []Item
}

func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() lexer.Position  { return b.Token.Pos }

// expressionNode lets a Block stand in as a block-valued expression — the
// initializer of a let/const is allowed to be a bare braced block.
func (b *Block) expressionNode() {}

func (b *Block) String() string {
	out := "{\n"
	for _, it := range b.Items {
		out += "  " + it.String() + "\n"
	}
	return out + "}"
}
