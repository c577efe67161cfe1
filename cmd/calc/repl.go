package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/agenthands/calc/pkg/compiler/ast"
	"github.com/agenthands/calc/pkg/compiler/lexer"
	"github.com/agenthands/calc/pkg/compiler/parser"
	"github.com/agenthands/calc/pkg/eval"
)

const (
	historyFile = ".calc_history"
	prompt      = "calc> "
)

const banner = "calc REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

const helpText = `
REPL commands:
  :quit    Exit the REPL
  :ast     Toggle printing the parse tree before each result
  :help    Show this help
`

// runREPL reads one line at a time, evaluates it, and prints the result or
// a caret-annotated error. Each line gets a fresh scanner and parser;
// nothing survives from one expression to the next.
func runREPL() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer saveHistory(line, histPath)

	fmt.Println(banner)
	printTree := showTree

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}

		src := strings.TrimSpace(input)
		if src == "" {
			continue
		}
		line.AppendHistory(input)

		switch src {
		case ":quit":
			return nil
		case ":help":
			fmt.Print(helpText)
			continue
		case ":ast":
			printTree = !printTree
			continue
		}

		evalLine([]byte(src), printTree)
	}
}

func evalLine(src []byte, printTree bool) {
	s := lexer.NewScanner(src)
	p, err := parser.NewParser(s, src)
	if err != nil {
		fmt.Println(renderError(src, err))
		return
	}
	node, err := p.Parse()
	if err != nil {
		fmt.Println(renderError(src, err))
		return
	}

	if printTree {
		fmt.Println(treeStyle.Render(ast.Print(node)))
	}

	result, err := eval.Evaluate(node)
	if err != nil {
		fmt.Println(renderError(src, err))
		return
	}
	fmt.Println(resultStyle.Render(strconv.FormatInt(result, 10)))
}

func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	line.WriteHistory(f)
	f.Close()
}
