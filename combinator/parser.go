package combinator

// Parser is the closed combinator interface. Every variant — Atom, Any,
// And, Or, OneOrMore, Forward, Decorated — is an unexported concrete type
// in this package implementing Parser; client code only ever holds a
// Parser value returned by one of this package's exported constructors.
type Parser interface {
	eval(s State) State
	Valid() bool
}

// Eval runs p against s. It is the single entry point a Driver (or a test)
// uses to step a combinator; combinators call each other's eval directly.
func Eval(p Parser, s State) State {
	return p.eval(s)
}
