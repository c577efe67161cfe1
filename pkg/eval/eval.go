// Package eval walks an expression tree and computes its int64 value.
// Division is Go's native truncated integer division.
package eval

import (
	"fmt"
	"math"

	"github.com/agenthands/calc/pkg/compiler/ast"
	"github.com/agenthands/calc/pkg/compiler/lexer"
	"github.com/agenthands/calc/pkg/compiler/parser"
)

// ArithmeticError reports an operation with no defined result, such as
// division by zero. Offset is the byte position of the operator.
type ArithmeticError struct {
	Offset int
	Msg    string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error at offset %d: %s", e.Offset, e.Msg)
}

// InternalError reports a node shape the evaluator has no rule for. With
// only two node shapes this branch is unreachable; it exists so an AST
// extension cannot silently evaluate to garbage.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

// Evaluate computes the value of the tree rooted at node, visiting the
// left child before the right.
func Evaluate(node ast.Expr) (int64, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.BinaryOp:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case ast.OpAdd:
			return left + right, nil
		case ast.OpSub:
			return left - right, nil
		case ast.OpMul:
			return left * right, nil
		case ast.OpDiv:
			if right == 0 {
				return 0, &ArithmeticError{
					Offset: int(n.Token.Offset),
					Msg:    "division by zero",
				}
			}
			// The one int64 quotient that does not fit: MinInt64 / -1.
			if left == math.MinInt64 && right == -1 {
				return 0, &ArithmeticError{
					Offset: int(n.Token.Offset),
					Msg:    "quotient overflows int64",
				}
			}
			return left / right, nil
		default:
			return 0, &InternalError{
				Msg: fmt.Sprintf("no evaluation rule for operator %d", n.Op),
			}
		}

	default:
		return 0, &InternalError{
			Msg: fmt.Sprintf("no evaluation rule for node %T", node),
		}
	}
}

// Run scans, parses, and evaluates a single expression. Each call owns its
// scanner, parser, and tree, so Run is safe to invoke from concurrent
// callers.
func Run(src []byte) (int64, error) {
	s := lexer.NewScanner(src)
	p, err := parser.NewParser(s, src)
	if err != nil {
		return 0, err
	}
	node, err := p.Parse()
	if err != nil {
		return 0, err
	}
	return Evaluate(node)
}
