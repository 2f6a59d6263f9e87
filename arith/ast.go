package arith

import "github.com/dhamidi/parsekit/ast"

// NumAST is a terminal node holding a number literal's text.
type NumAST struct {
	ast.Base
	Value string
}

func newNum(content string) *NumAST {
	return &NumAST{Base: ast.NewBase(), Value: content}
}

func (n *NumAST) Append(ast.Node)            {}
func (n *NumAST) Pop(ast.Node)               {}
func (n *NumAST) Accept(v ast.Visitor) error { return v.Visit(n) }

// OpAST is a terminal node holding an operator's text.
type OpAST struct {
	ast.Base
	Op string
}

func newOp(content string) *OpAST {
	return &OpAST{Base: ast.NewBase(), Op: content}
}

func (o *OpAST) Append(ast.Node)            {}
func (o *OpAST) Pop(ast.Node)               {}
func (o *OpAST) Accept(v ast.Visitor) error { return v.Visit(o) }

// AddAST is the composite node for any binary operation: a left operand, an
// OpAST, and a right operand, in that order. It is reused for both the
// literal add_stmt seed grammar and the fuller expr/term grammar's
// multiplication and addition levels.
type AddAST struct {
	ast.Base
	Children []ast.Node
}

func newAdd() *AddAST {
	return &AddAST{Base: ast.NewBase()}
}

func (a *AddAST) Append(child ast.Node) {
	a.Children = append(a.Children, child)
}

func (a *AddAST) Pop(child ast.Node) {
	for i, c := range a.Children {
		if c == child {
			a.Children = append(a.Children[:i], a.Children[i+1:]...)
			return
		}
	}
}

func (a *AddAST) Accept(v ast.Visitor) error {
	if err := v.Visit(a); err != nil {
		return err
	}
	for _, c := range a.Children {
		if err := c.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
