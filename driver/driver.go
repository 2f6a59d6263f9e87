// Package driver provides the top-level entry points over a grammar built
// from the combinator package: a yes/no Accept and a tree-returning Parse,
// plus post-mortem access to the furthest state reached.
package driver

import (
	"github.com/dhamidi/parsekit/ast"
	"github.com/dhamidi/parsekit/combinator"
	"github.com/dhamidi/parsekit/lex"
)

// Driver runs a fixed root combinator over token streams.
type Driver struct {
	root  combinator.Parser
	final combinator.State
}

// New panics if root is not Valid — running an unbound Forward or a
// Decorated with a missing inner parser is a programming error the
// distilled spec requires drivers to catch eagerly.
func New(root combinator.Parser) *Driver {
	if !root.Valid() {
		panic("driver: root combinator is invalid")
	}
	return &Driver{root: root}
}

// Accept runs root against tokens and reports whether it accepted and
// consumed every token. Empty input is rejected without invoking root.
func (d *Driver) Accept(tokens []lex.Token) bool {
	if len(tokens) == 0 {
		d.final = combinator.NewState(tokens, nil)
		return false
	}
	s := combinator.NewState(tokens, ast.NewSyntaxTree())
	d.final = combinator.Eval(d.root, s)
	return d.final.Accept && d.final.Current == d.final.End
}

// Parse runs root against tokens and, on success, returns the tree built
// alongside it. seed, if given, becomes the tree's initial cursor so the
// parsed subtree attaches under a caller-supplied node rather than
// becoming a fresh root. On rejection, or on empty input, Parse returns an
// empty tree and false.
func (d *Driver) Parse(tokens []lex.Token, seed ...ast.Node) (*ast.SyntaxTree, bool) {
	tree := ast.NewSyntaxTree()
	if len(seed) > 0 && seed[0] != nil {
		tree.SetCursor(seed[0])
	}

	if len(tokens) == 0 {
		d.final = combinator.NewState(tokens, tree)
		return ast.NewSyntaxTree(), false
	}

	s := combinator.NewState(tokens, tree)
	out := combinator.Eval(d.root, s)
	d.final = out

	if !out.Accept || out.Current != out.End {
		return ast.NewSyntaxTree(), false
	}
	return tree, true
}

// Finish returns the final State observed by the most recent Accept or
// Parse call, for diagnostics (furthest position reached, partial tree).
func (d *Driver) Finish() combinator.State {
	return d.final
}
