package lex

import "fmt"

// UnexpectedLexemError reports that no rule matched at Offset.
type UnexpectedLexemError struct {
	Input  string
	Offset int
}

func (e *UnexpectedLexemError) Error() string {
	rest := e.Input[e.Offset:]
	if len(rest) > 20 {
		rest = rest[:20] + "…"
	}
	return fmt.Sprintf("lex: unexpected input at offset %d: %q", e.Offset, rest)
}

// Lexer tokenizes input against an ordered list of Rules.
type Lexer struct {
	rules []compiledRule
}

// New compiles rules into a Lexer. Invalid rules are rejected eagerly.
func New(rules []Rule) (*Lexer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		if !r.Valid() {
			return nil, fmt.Errorf("lex: rule %d is invalid: empty pattern with Ignorable=true", i)
		}
		cr, err := compile(r)
		if err != nil {
			return nil, fmt.Errorf("lex: rule %d: %w", i, err)
		}
		compiled = append(compiled, cr)
	}
	return &Lexer{rules: compiled}, nil
}

// Tokenize scans input from left to right, returning the emitted (non-
// ignorable) tokens in order. It fails with *UnexpectedLexemError as soon as
// no rule matches at the current position.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0)
	pos := 0
	for pos < len(input) {
		matchLen, tag, ignorable := l.matchAt(input, pos)
		if matchLen == 0 {
			return tokens, &UnexpectedLexemError{Input: input, Offset: pos}
		}
		if !ignorable {
			tokens = append(tokens, newToken(input[pos:pos+matchLen], pos, tag))
		}
		pos += matchLen
	}
	return tokens, nil
}

// matchAt walks the rules in order and returns the first rule that produces
// a non-empty match anchored at pos. A zero-length match is treated as no
// match at all, regardless of which rule produced it, to guarantee progress.
func (l *Lexer) matchAt(input string, pos int) (matchLen, tag int, ignorable bool) {
	rest := input[pos:]
	for _, r := range l.rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		return loc[1], r.tag, r.ignorable
	}
	return 0, 0, false
}
