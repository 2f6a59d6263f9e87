// Package combinator implements the parser-combinator evaluation model: an
// immutable-by-convention State threaded through a closed set of combinator
// variants (Atom, Any, And, Or, OneOrMore, Forward, Decorated), each a pure
// function State -> State.
package combinator

import (
	"github.com/dhamidi/parsekit/ast"
	"github.com/dhamidi/parsekit/lex"
)

// State is threaded through every combinator evaluation. Tokens, Begin and
// End are fixed for the duration of one parse; Current moves forward as
// combinators consume input. Tree is a shared mutable context: two sibling
// branches of an Or share the same underlying *ast.SyntaxTree pointer, so a
// failing branch must restore the tree to its pre-branch shape (via
// SyntaxTree.Detach) before the next branch runs.
type State struct {
	Tokens  []lex.Token
	Begin   int
	End     int
	Current int
	Tree    *ast.SyntaxTree
	Accept  bool
}

// NewState builds the initial state for a fresh parse over tokens, with an
// empty tree (or the supplied seed tree, when composing into another tree).
func NewState(tokens []lex.Token, tree *ast.SyntaxTree) State {
	return State{
		Tokens:  tokens,
		Begin:   0,
		End:     len(tokens),
		Current: 0,
		Tree:    tree,
	}
}

// current returns the token at Current, or the sentinel empty token past End.
func (s State) current() lex.Token {
	if s.Current >= s.End {
		return lex.Token{}
	}
	return s.Tokens[s.Current]
}

// fail returns s with Accept cleared and its position left as it is.
// Atom, Any, And and Or call it on their input state, so a failure
// consumes nothing.
func (s State) fail() State {
	s.Accept = false
	return s
}
