package rewrite

import (
	"fmt"
	"strings"

	"github.com/npillmayer/formel/token"
)

// --- Options ---------------------------------------------------------------

// Option is a single thing a rule looks for when matching an item: either a
// leaf with a token of a given type, or a node produced by a rule of a given
// name.
type Option struct {
	typ  token.Type // for token options
	name string     // for rule-name options
}

// T creates an option matching leafs with tokens of type typ.
func T(typ token.Type) Option {
	return Option{typ: typ}
}

// N creates an option matching nodes produced by rules named name.
func N(name string) Option {
	return Option{name: name}
}

// IsRuleName is a predicate: does this option refer to a rule name?
func (o Option) IsRuleName() bool {
	return o.name != ""
}

// TokenType returns the token type an option refers to, or token.Illegal for
// rule-name options.
func (o Option) TokenType() token.Type {
	return o.typ
}

// RuleName returns the rule name an option refers to, or "" for token options.
func (o Option) RuleName() string {
	return o.name
}

func (o Option) String() string {
	if o.IsRuleName() {
		return o.name
	}
	return "<" + o.typ.String() + ">"
}

// compare is the matching primitive: leafs match token options only, nodes
// match rule-name options only.
func compare(item Item, o Option) bool {
	switch x := item.(type) {
	case *Leaf:
		return !o.IsRuleName() && x.tok.Type() == o.typ
	case *Node:
		return o.IsRuleName() && x.rule.Name() == o.name
	case *ErrorNode:
		return o.IsRuleName() && x.rule.Name() == o.name
	}
	return false
}

func optionsString(options []Option) string {
	s := make([]string, len(options))
	for i, o := range options {
		s[i] = o.String()
	}
	return strings.Join(s, ", ")
}

// --- Rules -----------------------------------------------------------------

// Rule is a named grammar production. The set of rule types is closed:
// a rule is either a *Classify, a *Reduce or an *ErrorReduce.
//
// Apply tries to apply a rule to a sequence of items. If the rule is
// applicable, Apply returns a new sequence and true. Otherwise it returns
// (nil, false). The input sequence is never modified.
type Rule interface {
	Name() string
	Options() []Option
	Apply(seq []Item) ([]Item, bool)
	String() string
	isRule()
}

// Classify is a rule which reclassifies single items. Every item matching any
// of the options is wrapped into a node of its own.
type Classify struct {
	name    string
	options []Option
}

func (*Classify) isRule() {}

// Name is part of interface Rule.
func (c *Classify) Name() string {
	return c.name
}

// Options is part of interface Rule.
func (c *Classify) Options() []Option {
	return append([]Option(nil), c.options...)
}

func (c *Classify) String() string {
	return fmt.Sprintf("%s ⟵ either of [%s]", c.name, optionsString(c.options))
}

func (c *Classify) match(item Item) bool {
	for _, o := range c.options {
		if compare(item, o) {
			return true
		}
	}
	return false
}

// Apply is part of interface Rule. It scans the complete sequence once and
// wraps every matching item. Apply reports false if no item matched.
func (c *Classify) Apply(seq []Item) ([]Item, bool) {
	changed := false
	result := make([]Item, len(seq))
	for i, item := range seq {
		if c.match(item) {
			result[i] = newNode(c, []Item{item})
			changed = true
		} else {
			result[i] = item
		}
	}
	if !changed {
		return nil, false
	}
	return result, true
}

// Reduce is a rule which replaces windows of consecutive items by a node.
type Reduce struct {
	name    string
	options []Option
}

func (*Reduce) isRule() {}

// Name is part of interface Rule.
func (r *Reduce) Name() string {
	return r.name
}

// Options is part of interface Rule.
func (r *Reduce) Options() []Option {
	return append([]Option(nil), r.options...)
}

func (r *Reduce) String() string {
	return fmt.Sprintf("%s ⟵ sequence of [%s]", r.name, optionsString(r.options))
}

// Apply is part of interface Rule.
func (r *Reduce) Apply(seq []Item) ([]Item, bool) {
	return reduceWindows(seq, r.options, func(window []Item) Item {
		return newNode(r, window)
	})
}

// ErrorReduce is an error production. It matches like Reduce, but produces
// error nodes carrying a description of the error.
type ErrorReduce struct {
	Reduce
	description string
	blame       []int // window positions to blame; empty: blame the whole window
}

func (*ErrorReduce) isRule() {}

// Description returns the human readable description of an error production.
func (e *ErrorReduce) Description() string {
	return e.description
}

// Blamed returns the window positions an error production blames, or nil
// if the complete window is to blame.
func (e *ErrorReduce) Blamed() []int {
	if len(e.blame) == 0 {
		return nil
	}
	return append([]int(nil), e.blame...)
}

func (e *ErrorReduce) String() string {
	s := fmt.Sprintf("%s ⟵ error [%s] %q", e.name, optionsString(e.options), e.description)
	if len(e.blame) > 0 {
		s += fmt.Sprintf(" blame %v", e.blame)
	}
	return s
}

// Apply is part of interface Rule.
func (e *ErrorReduce) Apply(seq []Item) ([]Item, bool) {
	return reduceWindows(seq, e.options, func(window []Item) Item {
		return newErrorNode(e, window)
	})
}

// reduceWindows slides a window of len(options) over seq, from left to right.
// Matching windows are replaced by the item mk creates, and scanning resumes
// behind the window. Windows never overlap.
func reduceWindows(seq []Item, options []Option, mk func([]Item) Item) ([]Item, bool) {
	w := len(options)
	if w == 0 || w > len(seq) {
		return nil, false
	}
	result := make([]Item, 0, len(seq))
	changed := false
	i := 0
	for i <= len(seq)-w {
		window := seq[i : i+w]
		if matchWindow(window, options) {
			result = append(result, mk(window))
			i += w
			changed = true
		} else {
			result = append(result, seq[i])
			i++
		}
	}
	if !changed {
		return nil, false
	}
	return append(result, seq[i:]...), true
}

func matchWindow(window []Item, options []Option) bool {
	for i, o := range options {
		if !compare(window[i], o) {
			return false
		}
	}
	return true
}
