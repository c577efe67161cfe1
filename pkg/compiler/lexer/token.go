package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindInteger
	KindPlus   // +
	KindMinus  // -
	KindStar   // *
	KindSlash  // /
	KindLParen // (
	KindRParen // )
)

var kindNames = [...]string{
	KindEOF:     "end of input",
	KindInteger: "integer",
	KindPlus:    "'+'",
	KindMinus:   "'-'",
	KindStar:    "'*'",
	KindSlash:   "'/'",
	KindLParen:  "'('",
	KindRParen:  "')'",
}

// String returns the name used in diagnostics, e.g. "')'" or "integer".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical unit pointing back to the source.
// Offset and Length locate the matched bytes; Value carries the parsed
// payload for KindInteger and is zero for every other kind.
type Token struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Value  int64
}

// Text returns the matched source bytes, empty for the end marker.
func (t Token) Text(src []byte) string {
	return string(src[t.Offset : t.Offset+t.Length])
}
