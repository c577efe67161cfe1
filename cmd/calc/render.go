package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/calc/pkg/compiler/lexer"
	"github.com/agenthands/calc/pkg/compiler/parser"
	"github.com/agenthands/calc/pkg/eval"
)

var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// errorOffset extracts the byte offset carried by the engine's typed
// errors, or -1 when the error carries none.
func errorOffset(err error) int {
	var lexErr *lexer.LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Offset
	}
	var parseErr *parser.ParsingError
	if errors.As(err, &parseErr) {
		return parseErr.Offset
	}
	var mathErr *eval.ArithmeticError
	if errors.As(err, &mathErr) {
		return mathErr.Offset
	}
	return -1
}

// renderError formats err below an echo of the source with a caret under
// the offending byte:
//
//	  2+@
//	    ^ lexical error at offset 2: unrecognized character '@'
//
// Errors without a usable offset render as the bare message.
func renderError(src []byte, err error) string {
	off := errorOffset(err)
	if off < 0 || off > len(src) || strings.ContainsRune(string(src), '\n') {
		return errorStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString("  ")
	b.Write(src)
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat(" ", off))
	b.WriteString("^ ")
	b.WriteString(err.Error())
	return errorStyle.Render(b.String())
}
