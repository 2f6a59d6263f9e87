package combinator

import (
	"testing"

	"github.com/dhamidi/parsekit/lex"
)

const (
	tagNum = iota + 1
	tagAdd
	tagMul
)

func toks(tags ...int) []lex.Token {
	out := make([]lex.Token, len(tags))
	for i, tag := range tags {
		out[i] = lex.Token{Tag: tag, Content: "x"}
	}
	return out
}

func TestAtomMatchesTag(t *testing.T) {
	s := NewState(toks(tagNum), nil)
	out := Eval(Atom(tagNum), s)
	if !out.Accept {
		t.Fatal("expected accept")
	}
	if out.Current != 1 {
		t.Fatalf("Current = %d, want 1", out.Current)
	}
}

func TestAtomRejectsWrongTag(t *testing.T) {
	s := NewState(toks(tagNum), nil)
	out := Eval(Atom(tagAdd), s)
	if out.Accept {
		t.Fatal("expected reject")
	}
	if out.Current != s.Current {
		t.Fatalf("Current moved on failure: %d != %d", out.Current, s.Current)
	}
}

func TestAtomAtEndFails(t *testing.T) {
	s := NewState(toks(), nil)
	out := Eval(Atom(tagNum), s)
	if out.Accept {
		t.Fatal("expected reject on empty input")
	}
}

func TestAtomZeroIsInvalid(t *testing.T) {
	if Atom(0).Valid() {
		t.Fatal("Atom(0) must be invalid")
	}
}

func TestAnyConsumesRegardlessOfTag(t *testing.T) {
	s := NewState(toks(tagMul), nil)
	out := Eval(Any(), s)
	if !out.Accept || out.Current != 1 {
		t.Fatalf("Any() over one token: accept=%v current=%d", out.Accept, out.Current)
	}
}

func TestSeqBothMustAccept(t *testing.T) {
	s := NewState(toks(tagNum, tagAdd), nil)
	p := Seq(Atom(tagNum), Atom(tagAdd))
	out := Eval(p, s)
	if !out.Accept || out.Current != 2 {
		t.Fatalf("Seq(NUM,ADD) over [NUM,ADD]: accept=%v current=%d", out.Accept, out.Current)
	}
}

func TestSeqRightFailureRollsBackFully(t *testing.T) {
	s := NewState(toks(tagNum, tagMul), nil)
	p := Seq(Atom(tagNum), Atom(tagAdd))
	out := Eval(p, s)
	if out.Accept {
		t.Fatal("expected reject: right side doesn't match")
	}
	if out.Current != s.Current {
		t.Fatalf("Current moved on Seq failure: %d != %d", out.Current, s.Current)
	}
}

func TestAltPrefersLeft(t *testing.T) {
	// Both branches accept; the left stops after one token, the right
	// would consume two, so Current tells which branch won.
	s := NewState(toks(tagNum, tagNum), nil)
	p := Alt(Atom(tagNum), Seq(Atom(tagNum), Atom(tagNum)))
	out := Eval(p, s)
	if !out.Accept || out.Current != 1 {
		t.Fatalf("Alt should accept via left branch: accept=%v current=%d", out.Accept, out.Current)
	}
}

func TestAltFallsBackToRight(t *testing.T) {
	s := NewState(toks(tagAdd), nil)
	p := Alt(Atom(tagMul), Atom(tagAdd))
	out := Eval(p, s)
	if !out.Accept || out.Current != 1 {
		t.Fatalf("Alt should accept via right branch: accept=%v current=%d", out.Accept, out.Current)
	}
}

func TestAltBothFail(t *testing.T) {
	s := NewState(toks(tagNum), nil)
	p := Alt(Atom(tagMul), Atom(tagAdd))
	out := Eval(p, s)
	if out.Accept {
		t.Fatal("expected reject")
	}
	if out.Current != s.Current {
		t.Fatalf("Current moved on Alt failure: %d != %d", out.Current, s.Current)
	}
}

func TestOneOrMoreRequiresOne(t *testing.T) {
	s := NewState(toks(tagAdd), nil)
	p := OneOrMore(Atom(tagNum))
	out := Eval(p, s)
	if out.Accept {
		t.Fatal("expected reject: zero matches is not enough")
	}
}

func TestOneOrMoreGreedy(t *testing.T) {
	s := NewState(toks(tagNum, tagNum, tagNum, tagAdd), nil)
	p := OneOrMore(Atom(tagNum))
	out := Eval(p, s)
	if !out.Accept || out.Current != 3 {
		t.Fatalf("OneOrMore should consume 3 NUMs: accept=%v current=%d", out.Accept, out.Current)
	}
}

// zeroWidth always accepts without consuming, to exercise the progress
// guard: OneOrMore(zeroWidth) must terminate rather than loop forever.
type zeroWidthParser struct{}

func (zeroWidthParser) Valid() bool { return true }
func (zeroWidthParser) eval(s State) State {
	s.Accept = true
	return s
}

func TestOneOrMoreTerminatesOnNoProgress(t *testing.T) {
	s := NewState(toks(tagNum, tagNum), nil)
	p := OneOrMore(zeroWidthParser{})
	out := Eval(p, s)
	if !out.Accept {
		t.Fatal("expected accept: at least one iteration always succeeds")
	}
	if out.Current != s.Current {
		t.Fatalf("Current moved despite zero-width matches: %d != %d", out.Current, s.Current)
	}
}

func TestForwardRecursesThroughSelf(t *testing.T) {
	// depth = (NUM depth) | NUM -- a right-recursive run of NUMs.
	depth := NewForward()
	depth.Bind(func(self Parser, s State) State {
		return Eval(Alt(Seq(Atom(tagNum), self), Atom(tagNum)), s)
	})

	s := NewState(toks(tagNum, tagNum, tagNum), nil)
	out := Eval(depth.Parser(), s)
	if !out.Accept || out.Current != 3 {
		t.Fatalf("recursive Forward: accept=%v current=%d", out.Accept, out.Current)
	}
}

func TestUnboundForwardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic evaluating an unbound Forward")
		}
	}()
	f := NewForward()
	Eval(f.Parser(), NewState(toks(tagNum), nil))
}

func TestDecoratedRunsCallbacksOnBothOutcomes(t *testing.T) {
	var befores, accepts, fails int
	p := Decorate(Atom(tagNum), DecorateOptions{
		Before:   func(*State) { befores++ },
		OnAccept: func(*State) { accepts++ },
		OnFail:   func(*State) { fails++ },
	})

	Eval(p, NewState(toks(tagNum), nil))
	Eval(p, NewState(toks(tagAdd), nil))

	if befores != 2 {
		t.Errorf("befores = %d, want 2", befores)
	}
	if accepts != 1 {
		t.Errorf("accepts = %d, want 1", accepts)
	}
	if fails != 1 {
		t.Errorf("fails = %d, want 1", fails)
	}
}

func TestDecoratedBeforePositionDoesNotLeak(t *testing.T) {
	var observedDuringBefore int
	p := Decorate(Atom(tagNum), DecorateOptions{
		Before: func(s *State) {
			s.Current = 99 // mutate the copy
			observedDuringBefore = s.Current
		},
	})

	out := Eval(p, NewState(toks(tagNum), nil))
	if observedDuringBefore != 99 {
		t.Fatal("Before should see its own mutation")
	}
	if out.Current != 1 {
		t.Fatalf("Current = %d, want 1: Before's mutation must not leak into eval", out.Current)
	}
}
