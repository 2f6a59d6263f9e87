// Package bind supplies the canonical tree-building callback triples that
// turn a Decorated combinator into correct AST assembly: construct-before,
// ascend-on-accept, detach-on-fail.
package bind

import (
	"github.com/dhamidi/parsekit/ast"
	"github.com/dhamidi/parsekit/combinator"
)

// Custom is an optional additional callback triple a grammar can supply
// alongside a canonical binding. Canonical actions always run first, so
// cursor movement is observable by Custom but cannot be bypassed.
type Custom struct {
	Before   combinator.Action
	OnAccept combinator.Action
	OnFail   combinator.Action
}

func chain(canonical, custom combinator.Action) combinator.Action {
	switch {
	case canonical == nil:
		return custom
	case custom == nil:
		return canonical
	default:
		return func(s *combinator.State) {
			canonical(s)
			custom(s)
		}
	}
}

// Bind wraps p so that on entry it constructs a new T via newNode and
// attaches it under the current cursor, on acceptance ascends the cursor
// back to the parent (keeping the subtree), and on failure detaches the
// partial subtree so a sibling Alt branch starts clean.
func Bind[T ast.Node](p combinator.Parser, newNode func() T, custom ...Custom) combinator.Parser {
	var c Custom
	if len(custom) > 0 {
		c = custom[0]
	}

	opts := combinator.DecorateOptions{
		Before: chain(func(s *combinator.State) {
			s.Tree.Attach(newNode())
		}, c.Before),
		OnAccept: chain(func(s *combinator.State) {
			s.Tree.Ascend()
		}, c.OnAccept),
		OnFail: chain(func(s *combinator.State) {
			s.Tree.Detach()
		}, c.OnFail),
	}

	return combinator.Decorate(p, opts)
}

// BindPrimary wraps a terminal-matching combinator (typically an Atom) so
// that on acceptance it constructs a T from the most recently consumed
// token's content and attaches it as a leaf: attach and ascend happen
// together, since a terminal has no children to build underneath it.
func BindPrimary[T ast.Node](p combinator.Parser, newNode func(content string) T, custom ...Custom) combinator.Parser {
	var c Custom
	if len(custom) > 0 {
		c = custom[0]
	}

	opts := combinator.DecorateOptions{
		Before: c.Before,
		OnAccept: chain(func(s *combinator.State) {
			tok := s.Tokens[s.Current-1]
			s.Tree.Attach(newNode(tok.Content))
			s.Tree.Ascend()
		}, c.OnAccept),
		OnFail: c.OnFail,
	}

	return combinator.Decorate(p, opts)
}
