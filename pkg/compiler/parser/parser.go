package parser

import (
	"fmt"

	"github.com/agenthands/calc/pkg/compiler/ast"
	"github.com/agenthands/calc/pkg/compiler/lexer"
)

// ParsingError reports a token sequence that violates the grammar. Offset
// is the byte position of the offending token.
type ParsingError struct {
	Offset int
	Msg    string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

// Parser builds an expression tree by recursive descent over the grammar
//
//	expr   := term ( ('+'|'-') term )*
//	term   := factor ( ('*'|'/') factor )*
//	factor := INTEGER | '(' expr ')'
//
// It pulls tokens from the scanner on demand and holds exactly one token
// of lookahead; the grammar is LL(1), so no backtracking is needed.
type Parser struct {
	scanner *lexer.Scanner
	src     []byte
	curTok  lexer.Token
}

// NewParser primes the lookahead with the first token, so construction
// itself can fail on lexically invalid input.
func NewParser(s *lexer.Scanner, src []byte) (*Parser, error) {
	p := &Parser{scanner: s, src: src}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse consumes exactly one expression and requires that nothing but the
// end marker follows it. Trailing input is rejected rather than silently
// ignored.
func (p *Parser) Parse() (ast.Expr, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curTok.Kind != lexer.KindEOF {
		return nil, &ParsingError{
			Offset: int(p.curTok.Offset),
			Msg:    fmt.Sprintf("trailing input after expression: %s", p.curTok.Kind),
		}
	}
	return node, nil
}

func (p *Parser) advance() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.curTok = tok
	return nil
}

// eat consumes the lookahead if it matches the expected kind and pulls the
// next token into its place.
func (p *Parser) eat(kind lexer.Kind) error {
	if p.curTok.Kind != kind {
		return &ParsingError{
			Offset: int(p.curTok.Offset),
			Msg:    fmt.Sprintf("unexpected token: want %s, got %s", kind, p.curTok.Kind),
		}
	}
	return p.advance()
}

// parseExpr handles the lowest precedence level, folding '+' and '-' left
// to right so "10-3-2" groups as "(10-3)-2".
func (p *Parser) parseExpr() (ast.Expr, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		opTok := p.curTok
		op := ast.OpAdd
		if opTok.Kind == lexer.KindMinus {
			op = ast.OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Token: opTok, Op: op, Left: node, Right: right}
	}

	return node, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTok.Kind == lexer.KindStar || p.curTok.Kind == lexer.KindSlash {
		opTok := p.curTok
		op := ast.OpMul
		if opTok.Kind == lexer.KindSlash {
			op = ast.OpDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Token: opTok, Op: op, Left: node, Right: right}
	}

	return node, nil
}

// parseFactor handles integers and parenthesized sub-expressions. Any
// other lookahead (an operator, a stray ')', end of input) has no
// production and is rejected here.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curTok.Kind {
	case lexer.KindInteger:
		tok := p.curTok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Token: tok, Value: tok.Value}, nil

	case lexer.KindLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(lexer.KindRParen); err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, &ParsingError{
			Offset: int(p.curTok.Offset),
			Msg:    fmt.Sprintf("expected integer or '(', got %s", p.curTok.Kind),
		}
	}
}
