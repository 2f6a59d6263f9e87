package combinator

// Action is a lifecycle callback hung off a Decorated combinator. It
// receives a pointer to a State so it can mutate the shared Tree pointer
// in place; position fields on the pointee are only ever observed in
// practice, never usefully mutated (see Before below).
type Action func(*State)

// DecorateOptions bundles the three optional lifecycle callbacks plus a
// diagnostic name for a Decorated combinator.
type DecorateOptions struct {
	Before   Action
	OnAccept Action
	OnFail   Action
	Name     string
}

type decoratedParser struct {
	inner Parser
	opts  DecorateOptions
}

// Decorate wraps p with before/on_accept/on_fail callbacks, the sole
// channel through which a grammar side-effects the AST while parsing.
func Decorate(p Parser, opts DecorateOptions) Parser {
	return decoratedParser{inner: p, opts: opts}
}

func (d decoratedParser) Valid() bool {
	return d.inner != nil && d.inner.Valid()
}

func (d decoratedParser) eval(s State) State {
	if d.opts.Before != nil {
		// Before receives a copy of the input state: mutations to
		// Current/Begin/End are discarded when this local copy goes out
		// of scope, but mutations through the shared Tree pointer
		// persist, since Tree is a pointer field. This is intentional:
		// Before is meant for tree-side setup before descending, not for
		// influencing position.
		before := s
		d.opts.Before(&before)
	}

	out := d.inner.eval(s)

	if out.Accept {
		if d.opts.OnAccept != nil {
			d.opts.OnAccept(&out)
		}
	} else if d.opts.OnFail != nil {
		d.opts.OnFail(&out)
	}

	return out
}

// Name returns the decorated parser's diagnostic name, or "" if none was
// set. Useful for furthest-failure diagnostics in a Driver.
func Name(p Parser) string {
	if d, ok := p.(decoratedParser); ok {
		return d.opts.Name
	}
	return ""
}
