// Package ebnflex derives lex.Rule lists from an EBNF grammar file instead
// of hand-written regexes, reusing golang.org/x/exp/ebnf as the grammar
// parser and the convention that an uppercase production name denotes a
// token (lowercase productions are helper definitions inlined into
// whichever token references them).
package ebnflex

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/parsekit/lex"
)

// LoadRules opens filename, parses it as an EBNF grammar, and emits one
// lex.Rule per name in order, in that order. tags assigns each name's
// lex.Rule.Tag; a name present in order but absent from tags is emitted as
// Ignorable. golang.org/x/exp/ebnf.Grammar has no defined iteration order,
// which is why order (not the grammar map) drives rule order.
func LoadRules(filename string, order []string, tags map[string]int) ([]lex.Rule, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ebnflex: open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("ebnflex: parse grammar: %w", err)
	}

	rules := make([]lex.Rule, 0, len(order))
	for _, name := range order {
		prod, ok := grammar[name]
		if !ok || prod.Expr == nil {
			return nil, fmt.Errorf("ebnflex: production %q not found in grammar", name)
		}

		pattern, err := compile(prod.Expr, grammar, map[string]bool{name: true})
		if err != nil {
			return nil, fmt.Errorf("ebnflex: production %q: %w", name, err)
		}

		tag, hasTag := tags[name]
		rules = append(rules, lex.Rule{
			Pattern:   pattern,
			Tag:       tag,
			Ignorable: !hasTag,
		})
	}
	return rules, nil
}

// compile walks an ebnf.Expression and returns an equivalent, fully
// inlined Go regular expression fragment. visiting guards against
// cyclic production references, which a lexical grammar has no business
// containing.
func compile(expr ebnf.Expression, grammar ebnf.Grammar, visiting map[string]bool) (string, error) {
	switch e := expr.(type) {
	case *ebnf.Token:
		return regexp.QuoteMeta(unquote(e.String)), nil

	case *ebnf.Range:
		begin, end := unquote(e.Begin.String), unquote(e.End.String)
		return fmt.Sprintf("[%s-%s]", regexp.QuoteMeta(begin), regexp.QuoteMeta(end)), nil

	case ebnf.Sequence:
		var b strings.Builder
		for _, item := range e {
			frag, err := compile(item, grammar, visiting)
			if err != nil {
				return "", err
			}
			b.WriteString(frag)
		}
		return b.String(), nil

	case ebnf.Alternative:
		parts := make([]string, len(e))
		for i, alt := range e {
			frag, err := compile(alt, grammar, visiting)
			if err != nil {
				return "", err
			}
			parts[i] = frag
		}
		return "(?:" + strings.Join(parts, "|") + ")", nil

	case *ebnf.Repetition:
		frag, err := compile(e.Body, grammar, visiting)
		if err != nil {
			return "", err
		}
		return "(?:" + frag + ")*", nil

	case *ebnf.Option:
		frag, err := compile(e.Body, grammar, visiting)
		if err != nil {
			return "", err
		}
		return "(?:" + frag + ")?", nil

	case *ebnf.Group:
		frag, err := compile(e.Body, grammar, visiting)
		if err != nil {
			return "", err
		}
		return "(?:" + frag + ")", nil

	case *ebnf.Name:
		if visiting[e.String] {
			return "", fmt.Errorf("cyclic reference to %q", e.String)
		}
		prod, ok := grammar[e.String]
		if !ok || prod.Expr == nil {
			return "", fmt.Errorf("undefined production %q", e.String)
		}
		next := make(map[string]bool, len(visiting)+1)
		for k := range visiting {
			next[k] = true
		}
		next[e.String] = true
		return compile(prod.Expr, grammar, next)

	default:
		return "", fmt.Errorf("unsupported EBNF expression %T", expr)
	}
}

func unquote(s string) string {
	return strings.Trim(s, "\"")
}
