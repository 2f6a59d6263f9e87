package arith

import (
	"github.com/dhamidi/parsekit/bind"
	"github.com/dhamidi/parsekit/combinator"
)

// AddStmtGrammar implements the literal grammar add_stmt = NUM + ADD + NUM,
// bound to AddAST with NUM -> NumAST and ADD -> OpAST. It is the minimal
// grammar exercising a Bind over a Seq of two BindPrimary leaves, kept
// alongside the fuller Grammar below as a smaller fixture for tests.
func AddStmtGrammar() combinator.Parser {
	num := bind.BindPrimary(combinator.Atom(TagNum), newNum)
	op := bind.BindPrimary(combinator.Atom(TagAdd), newOp)
	return bind.Bind(combinator.Seq(num, combinator.Seq(op, num)), newAdd)
}

// Grammar builds the full expression grammar:
//
//	expr   = term (('+'|'-') expr)?
//	term   = factor (('*'|'/') term)?
//	factor = NUM | '(' expr ')'
//
// Operator chains are right-recursive rather than left-folded: this keeps
// the grammar a direct composition of Bind/Seq/Alt/Forward with no manual
// cursor surgery, at the cost of right- rather than left-associativity,
// which ambiguity resolution beyond ordered choice is a declared non-goal
// of anyway.
func Grammar() combinator.Parser {
	exprFwd := combinator.NewForward()
	termFwd := combinator.NewForward()

	num := bind.BindPrimary(combinator.Atom(TagNum), newNum)
	factor := combinator.Alt(
		num,
		combinator.Seq(combinator.Atom(TagOpen), combinator.Seq(exprFwd.Parser(), combinator.Atom(TagClose))),
	)

	mulOp := combinator.Alt(
		bind.BindPrimary(combinator.Atom(TagMul), newOp),
		bind.BindPrimary(combinator.Atom(TagDiv), newOp),
	)
	term := combinator.Alt(
		bind.Bind(combinator.Seq(factor, combinator.Seq(mulOp, termFwd.Parser())), newAdd),
		factor,
	)
	termFwd.Bind(func(_ combinator.Parser, s combinator.State) combinator.State {
		return combinator.Eval(term, s)
	})

	addOp := combinator.Alt(
		bind.BindPrimary(combinator.Atom(TagAdd), newOp),
		bind.BindPrimary(combinator.Atom(TagSub), newOp),
	)
	expr := combinator.Alt(
		bind.Bind(combinator.Seq(term, combinator.Seq(addOp, exprFwd.Parser())), newAdd),
		term,
	)
	exprFwd.Bind(func(_ combinator.Parser, s combinator.State) combinator.State {
		return combinator.Eval(expr, s)
	})

	return exprFwd.Parser()
}
