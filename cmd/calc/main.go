package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenthands/calc/pkg/compiler/ast"
	"github.com/agenthands/calc/pkg/compiler/lexer"
	"github.com/agenthands/calc/pkg/compiler/parser"
	"github.com/agenthands/calc/pkg/eval"
)

var showTree bool

// rootCmd evaluates its arguments as one expression, or drops into the
// interactive loop when called bare.
var rootCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate integer arithmetic expressions",
	Long: `Calc evaluates integer arithmetic expressions with +, -, *, /,
parentheses, standard precedence, and left associativity.

With arguments, the arguments are joined and evaluated as one expression:

  calc '(2+3)*4'

Without arguments, calc starts an interactive read-evaluate-print loop.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL()
		}
		return evalOnce([]byte(strings.Join(args, " ")))
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-evaluate-print loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showTree, "ast", false, "Print the parse tree before the result")
	rootCmd.AddCommand(replCmd)
}

func evalOnce(src []byte) error {
	s := lexer.NewScanner(src)
	p, err := parser.NewParser(s, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(src, err))
		return err
	}
	node, err := p.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(src, err))
		return err
	}

	if showTree {
		fmt.Println(ast.Print(node))
	}

	result, err := eval.Evaluate(node)
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(src, err))
		return err
	}

	fmt.Println(result)
	return nil
}
