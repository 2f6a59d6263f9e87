// Package lsp exposes the arithmetic grammar as a language server:
// open documents are tokenized and parsed on every change, and the
// resulting failures are published as diagnostics.
package lsp

import (
	"sync"

	"github.com/dhamidi/parsekit/arith"
	"github.com/dhamidi/parsekit/driver"
	"github.com/dhamidi/parsekit/lex"
)

// Diagnostic is a single parse or lex failure, positioned by byte offset
// into the document's content.
type Diagnostic struct {
	Message string
	Start   int
	End     int
}

// Document is the last-known state of one open text document.
type Document struct {
	Path        string
	Content     string
	Diagnostics []Diagnostic
}

// Documents tracks every open document by path, re-deriving diagnostics
// on each update.
type Documents struct {
	mu    sync.RWMutex
	files map[string]*Document
}

func NewDocuments() *Documents {
	return &Documents{files: make(map[string]*Document)}
}

func (d *Documents) Update(path, content string) *Document {
	doc := &Document{Path: path, Content: content}
	doc.Diagnostics = diagnose(content)

	d.mu.Lock()
	d.files[path] = doc
	d.mu.Unlock()

	return doc
}

func (d *Documents) Remove(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
}

func (d *Documents) Get(path string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.files[path]
}

func diagnose(content string) []Diagnostic {
	tokens, err := arith.Lexer().Tokenize(content)
	if err != nil {
		if lexErr, ok := err.(*lex.UnexpectedLexemError); ok {
			return []Diagnostic{{Message: lexErr.Error(), Start: lexErr.Offset, End: len(content)}}
		}
		return []Diagnostic{{Message: err.Error(), Start: 0, End: len(content)}}
	}
	if len(tokens) == 0 {
		return nil
	}

	d := driver.New(arith.Grammar())
	if _, ok := d.Parse(tokens); ok {
		return nil
	}

	final := d.Finish()
	start, end := len(content), len(content)
	if final.Current < len(tokens) {
		start, end = tokens[final.Current].Start, tokens[final.Current].End
	}
	return []Diagnostic{{Message: "could not parse expression", Start: start, End: end}}
}

// offsetToPosition converts a byte offset into content to a zero-based
// (line, character) pair, as LSP positions require.
func offsetToPosition(content string, offset int) (line, character int) {
	if offset > len(content) {
		offset = len(content)
	}
	for i := 0; i < offset; i++ {
		if content[i] == '\n' {
			line++
			character = 0
			continue
		}
		character++
	}
	return line, character
}
