/*
Package editor implements the model of an interactive formula editor.

An editor holds a token array and a cursor. Users insert tokens at the
cursor, replace or delete tokens at a position, and the editor re-validates
the formula after every edit. Rendering shows either the recognized formula
or a diagnostic with the tokens at fault.

    ed := editor.New(arith.Grammar(arith.Any))
    ed.Insert(token.ScalarInt(1), token.NewArithmetic(token.Plus))
    fmt.Println(ed.Render())

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/formel/diag"
	"github.com/npillmayer/formel/rewrite"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'formel.editor'.
func tracer() tracing.Trace {
	return tracing.Select("formel.editor")
}

// ErrPosition is returned for positions outside of the token array.
var ErrPosition = errors.New("position out of range")

// Editor is the model of a formula editor. It is not safe for concurrent use.
type Editor struct {
	grammar *rewrite.Grammar
	printer *diag.Printer
	tokens  []token.Token
	cursor  int // insertion point, 0…len(tokens)
	result  rewrite.Result
}

// Option configures an editor.
type Option func(ed *Editor)

// WithPrinter sets the printer for diagnostics.
func WithPrinter(p *diag.Printer) Option {
	return func(ed *Editor) {
		if p != nil {
			ed.printer = p
		}
	}
}

// WithTokens sets the initial formula. The cursor is placed at the end.
func WithTokens(tokens []token.Token) Option {
	return func(ed *Editor) {
		ed.tokens = slices.Clone(tokens)
		ed.cursor = len(ed.tokens)
	}
}

// New creates an editor for formulas of grammar g.
func New(g *rewrite.Grammar, opts ...Option) *Editor {
	ed := &Editor{
		grammar: g,
		printer: diag.NewPrinter(false),
	}
	for _, opt := range opts {
		opt(ed)
	}
	ed.validate()
	return ed
}

// Tokens returns a copy of the current formula.
func (ed *Editor) Tokens() []token.Token {
	return slices.Clone(ed.tokens)
}

// Len returns the number of tokens of the formula.
func (ed *Editor) Len() int {
	return len(ed.tokens)
}

// Cursor returns the insertion point.
func (ed *Editor) Cursor() int {
	return ed.cursor
}

// Result returns the result of the latest validation.
func (ed *Editor) Result() rewrite.Result {
	return ed.result
}

// --- Edits -----------------------------------------------------------------

// MoveCursor places the insertion point before the token at position pos.
// A position of Len() places it at the end.
func (ed *Editor) MoveCursor(pos int) error {
	if pos < 0 || pos > len(ed.tokens) {
		return fmt.Errorf("%w: cursor %d", ErrPosition, pos)
	}
	ed.cursor = pos
	return nil
}

// Insert inserts tokens at the cursor and advances the cursor behind them.
func (ed *Editor) Insert(tokens ...token.Token) {
	if len(tokens) == 0 {
		return
	}
	ed.tokens = slices.Insert(ed.tokens, ed.cursor, tokens...)
	ed.cursor += len(tokens)
	ed.validate()
}

// Replace replaces the token at position pos.
func (ed *Editor) Replace(pos int, tok token.Token) error {
	if pos < 0 || pos >= len(ed.tokens) {
		return fmt.Errorf("%w: replace at %d", ErrPosition, pos)
	}
	ed.tokens[pos] = tok
	ed.validate()
	return nil
}

// Delete deletes the token at position pos. If the cursor is located behind
// the deleted token, it moves along.
func (ed *Editor) Delete(pos int) error {
	if pos < 0 || pos >= len(ed.tokens) {
		return fmt.Errorf("%w: delete at %d", ErrPosition, pos)
	}
	ed.tokens = slices.Delete(ed.tokens, pos, pos+1)
	if ed.cursor > pos {
		ed.cursor--
	}
	ed.validate()
	return nil
}

// Backspace deletes the token in front of the cursor, if any.
func (ed *Editor) Backspace() bool {
	if ed.cursor == 0 {
		return false
	}
	return ed.Delete(ed.cursor-1) == nil
}

// SetTokens replaces the complete formula and places the cursor at the end.
func (ed *Editor) SetTokens(tokens []token.Token) {
	ed.tokens = slices.Clone(tokens)
	ed.cursor = len(ed.tokens)
	ed.validate()
}

// Clear deletes all tokens.
func (ed *Editor) Clear() {
	ed.SetTokens(nil)
}

func (ed *Editor) validate() {
	ed.result = ed.grammar.Validate(ed.tokens)
	tracer().Debugf("%q valid=%v", token.Join(ed.tokens), ed.result.OK())
}

// --- Rendering -------------------------------------------------------------

// Render renders the current formula, either as the recognized tree or as a
// diagnostic.
func (ed *Editor) Render() string {
	r := ed.result
	if r.OK() {
		return fmt.Sprintf("%s\nrecognized as %s", token.Join(ed.tokens), r.Tree.String())
	}
	var rerr *rewrite.RangeError
	if errors.As(r.Err, &rerr) {
		return ed.printer.Render(rerr.Tokens, rerr.Ranges)
	}
	if errors.Is(r.Err, rewrite.ErrEmptyInput) {
		return "(empty)"
	}
	return fmt.Sprintf("%s\n%s", token.Join(ed.tokens), r.Err.Error())
}

// CursorLine returns the formula and a line marking the cursor position
// with a caret.
func (ed *Editor) CursorLine() (text string, marker string) {
	width := 0
	for _, t := range ed.tokens[:ed.cursor] {
		width += utf8.RuneCountInString(t.String())
	}
	return token.Join(ed.tokens), strings.Repeat(" ", width) + "^"
}
