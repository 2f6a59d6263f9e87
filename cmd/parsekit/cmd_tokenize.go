package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var outputJSON bool
	var rulesFile string

	cmd := &cobra.Command{
		Use:           "tokenize <file>",
		Short:         "Tokenize an arithmetic expression with the built-in demo lexer",
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

			if outputJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tokens)
			}

			for _, tok := range tokens {
				fmt.Println(tok.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "emit tokens as a JSON array")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "load lexer rules from an EBNF grammar file instead of the built-in ones")

	return cmd
}
