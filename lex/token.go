// Package lex provides a regular-expression-driven tokenizer that turns a
// source string into a flat sequence of tagged Tokens for the combinator
// package to walk.
package lex

import "fmt"

// Token is a single lexeme: a tagged substring of the source together with
// its half-open span. The zero Token is the sentinel "no match" value.
type Token struct {
	Content string
	Start   int
	End     int
	Length  int
	Tag     int
}

// Empty reports whether t is the sentinel "no match" token.
func (t Token) Empty() bool {
	return t.Content == "" && t.Start == 0 && t.End == 0
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %q (tag %d)", t.Start, t.End, t.Content, t.Tag)
}

func newToken(content string, start, tag int) Token {
	return Token{
		Content: content,
		Start:   start,
		End:     start + len(content),
		Length:  len(content),
		Tag:     tag,
	}
}
