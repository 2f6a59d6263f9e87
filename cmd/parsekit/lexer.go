package main

import (
	"fmt"

	"github.com/dhamidi/parsekit/arith"
	"github.com/dhamidi/parsekit/ebnflex"
	"github.com/dhamidi/parsekit/lex"
)

// arithProductionOrder and arithProductionTags describe the arith token set
// as named EBNF productions, so a grammar file can replace arith's
// hand-written regex rules while the rest of the demo (and its AST
// bindings) keeps using arith's tag values.
var arithProductionOrder = []string{"NUM", "ADD", "SUB", "MUL", "DIV", "OPEN", "CLOSE", "SPACE"}

var arithProductionTags = map[string]int{
	"NUM": arith.TagNum, "ADD": arith.TagAdd, "SUB": arith.TagSub, "MUL": arith.TagMul,
	"DIV": arith.TagDiv, "OPEN": arith.TagOpen, "CLOSE": arith.TagClose,
}

// buildLexer returns arith's built-in lexer, or one compiled from an EBNF
// grammar file via ebnflex when rulesFile is non-empty.
func buildLexer(rulesFile string) (*lex.Lexer, error) {
	if rulesFile == "" {
		return arith.Lexer(), nil
	}

	rules, err := ebnflex.LoadRules(rulesFile, arithProductionOrder, arithProductionTags)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	lexer, err := lex.New(rules)
	if err != nil {
		return nil, fmt.Errorf("build lexer: %w", err)
	}
	return lexer, nil
}
