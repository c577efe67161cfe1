package lexer

import (
	"fmt"
	"math"
)

// LexicalError reports a byte the scanner cannot classify, or an integer
// literal that does not fit the result width. Offset is the byte position
// of the offending input.
type LexicalError struct {
	Offset int
	Msg    string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at offset %d: %s", e.Offset, e.Msg)
}

// Scanner performs lexical analysis on a single expression.
// The cursor only ever moves forward; once the source is exhausted every
// further Next call yields the end marker again.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: uint32(s.cursor)}, nil
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanInteger()
	}

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	default:
		return Token{}, &LexicalError{
			Offset: start,
			Msg:    fmt.Sprintf("unrecognized character %q", ch),
		}
	}

	s.cursor++
	return Token{Kind: kind, Offset: uint32(start), Length: 1}, nil
}

// scanInteger consumes a maximal run of digits and accumulates the value
// inline to keep the clean path allocation-free. Literals are int64; a run
// of digits that overflows is a lexical error.
func (s *Scanner) scanInteger() (Token, error) {
	start := s.cursor
	var v int64
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		d := int64(s.source[s.cursor] - '0')
		if v > (math.MaxInt64-d)/10 {
			// Still consume the rest of the run so the reported
			// span covers the whole literal.
			for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
				s.cursor++
			}
			return Token{}, &LexicalError{
				Offset: start,
				Msg:    fmt.Sprintf("integer literal %s out of range", s.source[start:s.cursor]),
			}
		}
		v = v*10 + d
		s.cursor++
	}

	return Token{
		Kind:   KindInteger,
		Offset: uint32(start),
		Length: uint32(s.cursor - start),
		Value:  v,
	}, nil
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.cursor++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
