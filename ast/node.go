// Package ast provides the tree-node capability and the cursor-driven
// SyntaxTree that the combinator package's decoration protocol builds
// through as it parses.
package ast

import "sync/atomic"

var nextID atomic.Int64

func newID() int64 {
	return nextID.Add(1)
}

// Visitor is implemented by callers that want to walk a tree via Accept.
type Visitor interface {
	Visit(n Node) error
}

// Node is the capability every tree element — client AST nodes and the
// SyntaxTree itself — must support. Identity is assigned once at
// construction and is stable for the lifetime of the process; it exists
// only for equality checks and logging, never for ordering.
type Node interface {
	ID() int64
	Parent() Node
	SetParent(parent Node)
	Append(child Node)
	Pop(child Node)
	Accept(v Visitor) error
}

// Base is an embeddable helper that gives a client node type identity and
// parent bookkeeping for free. It does not implement Append/Pop/Accept;
// leaf node types that embed Base still need to supply those themselves
// (often as no-ops, since leaves have no children to own).
type Base struct {
	id     int64
	parent Node
}

// NewBase returns a Base with a freshly assigned identity.
func NewBase() Base {
	return Base{id: newID()}
}

func (b *Base) ID() int64 {
	return b.id
}

func (b *Base) Parent() Node {
	return b.parent
}

func (b *Base) SetParent(parent Node) {
	b.parent = parent
}
