package ast

import (
	"strconv"
	"strings"
)

// Print renders the tree as an S-expression, e.g. "(- (- 10 3) 2)".
// Used by tests to pin down shape, and by the REPL's :ast command.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e)
	return b.String()
}

func printExpr(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Literal:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *BinaryOp:
		b.WriteByte('(')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		printExpr(b, n.Left)
		b.WriteByte(' ')
		printExpr(b, n.Right)
		b.WriteByte(')')
	default:
		b.WriteString("<?>")
	}
}
