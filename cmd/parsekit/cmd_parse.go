package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/parsekit/arith"
	"github.com/dhamidi/parsekit/ast"
	"github.com/dhamidi/parsekit/driver"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var useAddStmtGrammar bool
	var rulesFile string

	cmd := &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse an arithmetic expression and dump its syntax tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			lexer, err := buildLexer(rulesFile)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(string(data))
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}

			grammar := arith.Grammar()
			if useAddStmtGrammar {
				grammar = arith.AddStmtGrammar()
			}

			d := driver.New(grammar)
			tree, ok := d.Parse(tokens)
			if !ok {
				return fmt.Errorf("parse: rejected at token %d of %d", d.Finish().Current, len(tokens))
			}

			dumpNode(os.Stdout, tree.Root(), 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useAddStmtGrammar, "add-stmt", false, "use the literal NUM ADD NUM seed grammar instead of the full expression grammar")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "load lexer rules from an EBNF grammar file instead of the built-in ones")

	return cmd
}

func dumpNode(w io.Writer, n ast.Node, depth int) {
	if n == nil {
		fmt.Fprintln(w, strings.Repeat("  ", depth)+"<empty>")
		return
	}

	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *arith.NumAST:
		fmt.Fprintf(w, "%sNum(%s)\n", indent, node.Value)
	case *arith.OpAST:
		fmt.Fprintf(w, "%sOp(%s)\n", indent, node.Op)
	case *arith.AddAST:
		fmt.Fprintf(w, "%sAdd\n", indent)
		for _, child := range node.Children {
			dumpNode(w, child, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%T\n", indent, node)
	}
}
