/*
Package diag renders diagnostics for ranges of input tokens.

A diagnostic consists of the formula as entered, a line of squiggles below
every token covered by any of the ranges, and a reason for every range:

    1+(1+x))+1
           ~
    Reason: Extra closed bracket
      at position 7

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/fatih/color"
	"github.com/npillmayer/formel"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.diag'.
func tracer() tracing.Trace {
	return tracing.Select("formel.diag")
}

// Squiggle is the rune used to mark tokens at fault.
const Squiggle = '~'

// Covered returns the set of token positions covered by any of the ranges,
// in ascending order and without duplicates.
func Covered(ranges []formel.Range) []int {
	set := coverage(ranges)
	indexes := make([]int, 0, set.Size())
	for _, x := range set.Values() {
		indexes = append(indexes, x.(int))
	}
	return indexes
}

func coverage(ranges []formel.Range) *treeset.Set {
	set := treeset.NewWithIntComparator()
	for _, r := range ranges {
		for _, i := range r.Indexes() {
			set.Add(i)
		}
	}
	return set
}

// Squiggles returns the printed form of a token array together with a line of
// equal width, which marks the tokens covered by ranges.
func Squiggles(tokens []token.Token, ranges []formel.Range) (text string, marks string) {
	covered := coverage(ranges)
	var t, m strings.Builder
	for i, tok := range tokens {
		s := tok.String()
		t.WriteString(s)
		mark := " "
		if covered.Contains(i) {
			mark = string(Squiggle)
		}
		m.WriteString(strings.Repeat(mark, utf8.RuneCountInString(s)))
	}
	for _, x := range covered.Values() {
		if x.(int) >= len(tokens) {
			tracer().Errorf("range position %d beyond end of input", x.(int))
		}
	}
	return t.String(), strings.TrimRight(m.String(), " ")
}

// Reason returns the reason lines for a range.
func Reason(r formel.Range) string {
	return fmt.Sprintf("Reason: %s\n  at %s", r.Description, r.Position())
}

// Render renders a diagnostic without colors.
func Render(tokens []token.Token, ranges []formel.Range) string {
	return plain.Render(tokens, ranges)
}

// --- Printer ---------------------------------------------------------------

// Printer renders diagnostics, optionally with terminal colors.
type Printer struct {
	marks  *color.Color
	reason *color.Color
}

var plain = &Printer{}

// NewPrinter creates a printer. If colored is true, squiggles and reasons will
// be colored, regardless of the output being a terminal or not.
func NewPrinter(colored bool) *Printer {
	if !colored {
		return &Printer{}
	}
	p := &Printer{
		marks:  color.New(color.FgRed, color.Bold),
		reason: color.New(color.FgYellow),
	}
	p.marks.EnableColor()
	p.reason.EnableColor()
	return p
}

// Render renders a diagnostic for ranges of tokens.
func (p *Printer) Render(tokens []token.Token, ranges []formel.Range) string {
	text, marks := Squiggles(tokens, ranges)
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n")
	b.WriteString(p.paint(p.marks, marks))
	for _, r := range ranges {
		b.WriteString("\n")
		b.WriteString(p.paint(p.reason, Reason(r)))
	}
	return b.String()
}

func (p *Printer) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
