package lex

import "regexp"

// Rule describes one lexical rule: a regular expression, the tag to assign
// on match, and whether matches should be discarded (whitespace, comments).
// Rule order is significant; the first rule that matches at a position wins.
type Rule struct {
	Pattern   string
	Tag       int
	Ignorable bool
}

// Valid reports whether r is usable: either it carries a pattern, or it is
// not ignorable (an ignorable rule with no pattern would never fire and
// would never advance the position, which is a no-op, not an error, but the
// distilled spec treats it as invalid so callers notice the mistake).
func (r Rule) Valid() bool {
	return r.Pattern != "" || !r.Ignorable
}

type compiledRule struct {
	re        *regexp.Regexp
	tag       int
	ignorable bool
}

func compile(r Rule) (compiledRule, error) {
	re, err := regexp.Compile(`\A(?:` + r.Pattern + `)`)
	if err != nil {
		return compiledRule{}, err
	}
	return compiledRule{re: re, tag: r.Tag, ignorable: r.Ignorable}, nil
}
