package bind

import (
	"testing"

	"github.com/dhamidi/parsekit/ast"
	"github.com/dhamidi/parsekit/combinator"
	"github.com/dhamidi/parsekit/lex"
)

const (
	tagNum = iota + 1
	tagAdd
	tagMul
)

// testNode is a minimal composite AST node used only by these tests.
type testNode struct {
	ast.Base
	kind     string
	content  string
	children []ast.Node
}

func newComposite(kind string) *testNode {
	return &testNode{Base: ast.NewBase(), kind: kind}
}

func newPrimary(kind string) func(content string) *testNode {
	return func(content string) *testNode {
		return &testNode{Base: ast.NewBase(), kind: kind, content: content}
	}
}

func (n *testNode) Append(child ast.Node) { n.children = append(n.children, child) }
func (n *testNode) Pop(child ast.Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
func (n *testNode) Accept(v ast.Visitor) error { return v.Visit(n) }

func toks(pairs ...[2]any) []lex.Token {
	out := make([]lex.Token, len(pairs))
	for i, p := range pairs {
		out[i] = lex.Token{Tag: p[0].(int), Content: p[1].(string)}
	}
	return out
}

func runOverFreshTree(p combinator.Parser, tokens []lex.Token) (combinator.State, *ast.SyntaxTree) {
	tree := ast.NewSyntaxTree()
	s := combinator.NewState(tokens, tree)
	return combinator.Eval(p, s), tree
}

// TestSeedScenarioS3 parses "3+4" with add_stmt = NUM + ADD + NUM, bound to
// AddAST with NUM -> NumAST, ADD -> OpAST, and checks the resulting tree
// shape exactly.
func TestSeedScenarioS3(t *testing.T) {
	num := BindPrimary(combinator.Atom(tagNum), newPrimary("Num"))
	op := BindPrimary(combinator.Atom(tagAdd), newPrimary("Op"))
	addStmt := Bind(combinator.Seq(num, combinator.Seq(op, num)), func() *testNode { return newComposite("Add") })

	tokens := toks([2]any{tagNum, "3"}, [2]any{tagAdd, "+"}, [2]any{tagNum, "4"})
	out, tree := runOverFreshTree(addStmt, tokens)

	if !out.Accept || out.Current != 3 {
		t.Fatalf("accept=%v current=%d, want accept at 3", out.Accept, out.Current)
	}

	root, ok := tree.Root().(*testNode)
	if !ok || root.kind != "Add" {
		t.Fatalf("root = %+v, want an Add node", tree.Root())
	}
	if len(root.children) != 3 {
		t.Fatalf("root has %d children, want 3", len(root.children))
	}
	wantKinds := []string{"Num", "Op", "Num"}
	wantContent := []string{"3", "+", "4"}
	for i, child := range root.children {
		c := child.(*testNode)
		if c.kind != wantKinds[i] || c.content != wantContent[i] {
			t.Errorf("child[%d] = %+v, want kind=%s content=%s", i, c, wantKinds[i], wantContent[i])
		}
	}
}

// TestSeedScenarioS4 mirrors S4: "3+" rejected, with full rollback.
func TestSeedScenarioS4(t *testing.T) {
	num := BindPrimary(combinator.Atom(tagNum), newPrimary("Num"))
	op := BindPrimary(combinator.Atom(tagAdd), newPrimary("Op"))
	addStmt := Bind(combinator.Seq(num, combinator.Seq(op, num)), func() *testNode { return newComposite("Add") })

	tokens := toks([2]any{tagNum, "3"}, [2]any{tagAdd, "+"})
	out, tree := runOverFreshTree(addStmt, tokens)

	if out.Accept {
		t.Fatal("expected reject: trailing NUM missing")
	}
	if out.Current != 0 {
		t.Fatalf("Current = %d, want 0 (full rollback to input position)", out.Current)
	}
	if tree.Root() != nil {
		t.Fatalf("Root() = %v, want nil after full rollback", tree.Root())
	}
	if tree.Cursor() != nil {
		t.Fatalf("Cursor() = %v, want nil after full rollback", tree.Cursor())
	}
}

// TestSeedScenarioS6 mirrors S6: alt = Atom(MUL) | Atom(ADD), input [ADD].
// The failed MUL branch must leak no node.
func TestSeedScenarioS6(t *testing.T) {
	mul := BindPrimary(combinator.Atom(tagMul), newPrimary("Mul"))
	add := BindPrimary(combinator.Atom(tagAdd), newPrimary("Add"))
	alt := combinator.Alt(mul, add)

	tokens := toks([2]any{tagAdd, "+"})
	out, tree := runOverFreshTree(alt, tokens)

	if !out.Accept {
		t.Fatal("expected accept via the right branch")
	}
	root, ok := tree.Root().(*testNode)
	if !ok || root.kind != "Add" {
		t.Fatalf("root = %+v, want a single Add node", tree.Root())
	}
	if len(root.children) != 0 {
		t.Fatalf("root has children %v, want none: no leak from the failed Mul branch", root.children)
	}
}

func TestCustomActionRunsAfterCanonical(t *testing.T) {
	var order []string
	var rootSeenByCustom ast.Node
	num := BindPrimary(combinator.Atom(tagNum), newPrimary("Num"), Custom{
		OnAccept: func(s *combinator.State) {
			order = append(order, "custom")
			rootSeenByCustom = s.Tree.Root()
		},
	})

	tree := ast.NewSyntaxTree()
	// custom shares the tree pointer with the canonical action, so the
	// root it observes when it fires shows whether the canonical attach
	// had already run.
	s := combinator.NewState(toks([2]any{tagNum, "7"}), tree)
	combinator.Eval(num, s)

	if len(order) != 1 || order[0] != "custom" {
		t.Fatalf("order = %v, want [custom] to have run", order)
	}
	if rootSeenByCustom == nil {
		t.Fatal("custom saw an empty tree: canonical attach should have run before custom")
	}
	if tree.Root() == nil {
		t.Fatal("canonical attach should have left the leaf attached")
	}
}
