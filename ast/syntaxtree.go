package ast

// SyntaxTree is the one concrete Node the substrate provides. It wraps a
// root pointer, set once the first node is attached, and a cursor, the
// insertion point the combinator decoration protocol moves around via
// Attach/Ascend/Detach. SyntaxTree itself implements Node, so a tree can be
// attached as a child inside another tree.
type SyntaxTree struct {
	Base
	root   Node
	cursor Node
}

// NewSyntaxTree returns an empty tree: no root, no cursor.
func NewSyntaxTree() *SyntaxTree {
	return &SyntaxTree{Base: NewBase()}
}

// Root returns the tree's root node, or nil if nothing has been attached.
func (t *SyntaxTree) Root() Node {
	return t.root
}

// Cursor returns the current insertion point, or nil if the tree is empty.
func (t *SyntaxTree) Cursor() Node {
	return t.cursor
}

// SetCursor seeds the tree with an existing node as both root and cursor,
// so a fresh parse attaches under a caller-supplied node instead of
// becoming a new root. Only meaningful on an otherwise empty tree.
func (t *SyntaxTree) SetCursor(n Node) {
	t.root = n
	t.cursor = n
}

// Attach constructs the before() half of the decoration protocol: child
// becomes a child of the current cursor (or the tree's root, if the tree is
// still empty), and the cursor moves to child.
func (t *SyntaxTree) Attach(child Node) {
	if t.cursor == nil {
		child.SetParent(nil)
		t.root = child
	} else {
		child.SetParent(t.cursor)
		t.cursor.Append(child)
	}
	t.cursor = child
}

// Ascend is the on_accept half: the cursor moves back to its parent,
// leaving the just-built subtree attached.
func (t *SyntaxTree) Ascend() {
	if t.cursor == nil {
		return
	}
	t.cursor = t.cursor.Parent()
}

// Detach is the on_fail half: the node under the cursor is removed from its
// parent (or, if it was the root, the tree becomes empty again) and the
// cursor moves up to where it was before Attach ran.
func (t *SyntaxTree) Detach() {
	victim := t.cursor
	if victim == nil {
		return
	}
	parent := victim.Parent()
	t.cursor = parent
	if parent != nil {
		parent.Pop(victim)
	} else {
		t.root = nil
	}
}

// Append implements Node by delegating to the current cursor, so that a
// SyntaxTree nested inside another tree obeys the same cursor discipline as
// any other attach. On an empty tree it becomes the root instead.
func (t *SyntaxTree) Append(child Node) {
	if t.cursor == nil {
		child.SetParent(nil)
		t.root = child
		t.cursor = child
		return
	}
	t.cursor.Append(child)
}

// Pop implements Node by delegating to the current cursor, unless child is
// the root itself.
func (t *SyntaxTree) Pop(child Node) {
	if child == t.root {
		t.root = nil
		if t.cursor == child {
			t.cursor = nil
		}
		return
	}
	if t.cursor != nil {
		t.cursor.Pop(child)
	}
}

// Accept dispatches to the root, per the substrate contract: the tree
// itself is never visited, only what it contains.
func (t *SyntaxTree) Accept(v Visitor) error {
	if t.root == nil {
		return nil
	}
	return t.root.Accept(v)
}
