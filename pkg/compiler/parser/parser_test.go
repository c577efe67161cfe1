package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/calc/pkg/compiler/ast"
	"github.com/agenthands/calc/pkg/compiler/lexer"
	"github.com/agenthands/calc/pkg/compiler/parser"
)

func parse(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	b := []byte(src)
	s := lexer.NewScanner(b)
	p, err := parser.NewParser(s, b)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Bare Literal",
			src:  "7",
			want: "7",
		},
		{
			name: "Precedence Mul Over Add",
			src:  "2+3*4",
			want: "(+ 2 (* 3 4))",
		},
		{
			name: "Parens Override Precedence",
			src:  "(2+3)*4",
			want: "(* (+ 2 3) 4)",
		},
		{
			name: "Left Associative Sub",
			src:  "10-3-2",
			want: "(- (- 10 3) 2)",
		},
		{
			name: "Left Associative Div",
			src:  "100/10/5",
			want: "(/ (/ 100 10) 5)",
		},
		{
			name: "Redundant Parens",
			src:  "(1+2)",
			want: "(+ 1 2)",
		},
		{
			name: "Nested Parens",
			src:  "((7))",
			want: "7",
		},
		{
			name: "Mixed With Whitespace",
			src:  " 14 + 2 * 3 - 6 / 2 ",
			want: "(- (+ 14 (* 2 3)) (/ 6 2))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := parse(t, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ast.Print(node))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "Missing Operand", src: "2+"},
		{name: "Missing Closing Paren", src: "(2+3"},
		{name: "Stray Closing Paren", src: ")"},
		{name: "Empty Input", src: ""},
		{name: "Operator First", src: "*3"},
		{name: "Trailing Paren", src: "1+1)"},
		{name: "Trailing Integer", src: "1 2"},
		{name: "Double Operator", src: "1+*2"},
		{name: "Empty Parens", src: "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src)
			var parseErr *parser.ParsingError
			require.ErrorAs(t, err, &parseErr, "src %q", tt.src)
		})
	}
}

func TestParseErrorOffsets(t *testing.T) {
	_, err := parse(t, "1+1)")
	var parseErr *parser.ParsingError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Offset)
	assert.Contains(t, parseErr.Error(), "trailing input")

	_, err = parse(t, "2+")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Offset)
}

// Lexical failures keep their identity when they surface through the
// parser, including the one hit while priming the lookahead.
func TestParseLexicalPassthrough(t *testing.T) {
	var lexErr *lexer.LexicalError

	_, err := parse(t, "2+@")
	require.ErrorAs(t, err, &lexErr)

	b := []byte("@")
	_, err = parser.NewParser(lexer.NewScanner(b), b)
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 0, lexErr.Offset)
}
