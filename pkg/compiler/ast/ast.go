package ast

import "github.com/agenthands/calc/pkg/compiler/lexer"

// Op tags a BinaryOp node with its arithmetic operation.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Expr represents an expression that yields a value. The two
// implementations below are the only node shapes; consumers dispatch with
// a type switch rather than a visitor.
type Expr interface {
	Pos() lexer.Token
	exprNode()
}

// Literal is an integer constant.
type Literal struct {
	Token lexer.Token
	Value int64
}

func (l *Literal) Pos() lexer.Token { return l.Token }
func (l *Literal) exprNode()        {}

// BinaryOp applies Op to two child expressions. Token is the operator
// token, kept for diagnostics. Children are owned exclusively by their
// parent; a parse yields exactly one root.
type BinaryOp struct {
	Token lexer.Token
	Op    Op
	Left  Expr
	Right Expr
}

func (b *BinaryOp) Pos() lexer.Token { return b.Token }
func (b *BinaryOp) exprNode()        {}
