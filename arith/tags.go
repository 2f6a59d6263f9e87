// Package arith implements the arithmetic grammar from the seed scenarios:
// a lexer over NUM/ADD/SUB/MUL/DIV/OPEN/CLOSE/SPACE tokens, and a grammar
// wiring them to NumAST/OpAST/AddAST nodes. It exists to be exercised by
// this module's own tests, by the parsekit CLI, and by the LSP server — a
// real, driver-bound grammar rather than just a lexer fixture.
package arith

import "github.com/dhamidi/parsekit/lex"

const (
	TagNum = iota + 1
	TagAdd
	TagSub
	TagMul
	TagDiv
	TagOpen
	TagClose
	TagSpace = 254
)

func rules() []lex.Rule {
	return []lex.Rule{
		{Pattern: `[0-9]+`, Tag: TagNum},
		{Pattern: `\+`, Tag: TagAdd},
		{Pattern: `-`, Tag: TagSub},
		{Pattern: `\*`, Tag: TagMul},
		{Pattern: `/`, Tag: TagDiv},
		{Pattern: `\(`, Tag: TagOpen},
		{Pattern: `\)`, Tag: TagClose},
		{Pattern: `\s+`, Tag: TagSpace, Ignorable: true},
	}
}

// Lexer returns a ready-to-use Lexer for the arithmetic token set.
func Lexer() *lex.Lexer {
	l, err := lex.New(rules())
	if err != nil {
		panic("arith: built-in rules are invalid: " + err.Error())
	}
	return l
}
