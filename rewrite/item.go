package rewrite

import (
	"fmt"
	"strings"

	"github.com/npillmayer/formel"
	"github.com/npillmayer/formel/token"
)

// Item is a parse item, i.e. an element of the sequence the rewriting operates
// on. The set of item types is closed: an item is either a *Leaf, a *Node or
// an *ErrorNode.
type Item interface {
	First() int            // index of the first input token covered
	Last() int             // index of the last input token covered
	Label() string         // short label for debug traces
	String() string        // extended representation
	Tokens() []token.Token // all input tokens covered, in order
	isItem()
}

// --- Leafs -----------------------------------------------------------------

// Leaf is an item wrapping a single input token.
type Leaf struct {
	tok   token.Token
	index int // position in the input token array; never changes
}

func newLeaf(tok token.Token, index int) *Leaf {
	return &Leaf{tok: tok, index: index}
}

func (*Leaf) isItem() {}

// Token returns the input token of a leaf.
func (l *Leaf) Token() token.Token {
	return l.tok
}

// Index returns the position of a leaf's token in the input token array.
func (l *Leaf) Index() int {
	return l.index
}

// First is part of interface Item.
func (l *Leaf) First() int {
	return l.index
}

// Last is part of interface Item.
func (l *Leaf) Last() int {
	return l.index
}

// Label is part of interface Item.
func (l *Leaf) Label() string {
	return l.tok.String()
}

// Tokens is part of interface Item.
func (l *Leaf) Tokens() []token.Token {
	return []token.Token{l.tok}
}

func (l *Leaf) String() string {
	return fmt.Sprintf("[token: %s]", l.tok.String())
}

// --- Nodes -----------------------------------------------------------------

// Node is an item produced by a successful rule application. It owns the
// items the rule matched.
type Node struct {
	rule     Rule
	children []Item
}

// newNode creates a node for a rule. Children are copied. Constructing a node
// without children is a programming error and will panic.
func newNode(rule Rule, children []Item) *Node {
	if len(children) == 0 {
		panic("rewrite: empty group of items for node")
	}
	ch := make([]Item, len(children))
	copy(ch, children)
	return &Node{rule: rule, children: ch}
}

func (*Node) isItem() {}

// Rule returns the rule which produced this node.
func (n *Node) Rule() Rule {
	return n.rule
}

// Name returns the name of the rule which produced this node.
func (n *Node) Name() string {
	return n.rule.Name()
}

// Len returns the number of children of n.
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns child number i of n.
func (n *Node) Child(i int) Item {
	return n.children[i]
}

// Children returns a copy of the children of n.
func (n *Node) Children() []Item {
	ch := make([]Item, len(n.children))
	copy(ch, n.children)
	return ch
}

// First is part of interface Item.
func (n *Node) First() int {
	return n.children[0].First()
}

// Last is part of interface Item.
func (n *Node) Last() int {
	return n.children[len(n.children)-1].Last()
}

// Label is part of interface Item.
func (n *Node) Label() string {
	return n.rule.Name()
}

// Tokens is part of interface Item.
func (n *Node) Tokens() []token.Token {
	var toks []token.Token
	for _, ch := range n.children {
		toks = append(toks, ch.Tokens()...)
	}
	return toks
}

func (n *Node) String() string {
	toks := n.Tokens()
	s := make([]string, len(toks))
	for i, t := range toks {
		s[i] = t.String()
	}
	return fmt.Sprintf("[%s: %s]", n.rule.Name(), strings.Join(s, ","))
}

// Walk visits n and all its descendants in pre-order, calling f for each
// item together with its depth. Leafs have no descendants.
func (n *Node) Walk(f func(item Item, depth int)) {
	walk(n, 0, f)
}

func walk(item Item, depth int, f func(Item, int)) {
	f(item, depth)
	switch x := item.(type) {
	case *Node:
		for _, ch := range x.children {
			walk(ch, depth+1, f)
		}
	case *ErrorNode:
		for _, ch := range x.children {
			walk(ch, depth+1, f)
		}
	}
}

// --- Error nodes -----------------------------------------------------------

// ErrorNode is a node produced by an error production.
type ErrorNode struct {
	Node
	errule *ErrorReduce
}

func newErrorNode(rule *ErrorReduce, children []Item) *ErrorNode {
	return &ErrorNode{
		Node:   *newNode(rule, children),
		errule: rule,
	}
}

func (*ErrorNode) isItem() {}

// ErrorRule returns the error production which matched.
func (en *ErrorNode) ErrorRule() *ErrorReduce {
	return en.errule
}

// Description returns the authored description of the error.
func (en *ErrorNode) Description() string {
	return en.errule.Description()
}

// Label is part of interface Item.
func (en *ErrorNode) Label() string {
	return "[!" + en.errule.Name() + "!]"
}

func (en *ErrorNode) String() string {
	return en.Label()
}

// Range returns the range of input tokens to blame for an error. If the error
// production selects window positions to blame, the range spans the children
// at these positions only. Otherwise it spans the complete node.
func (en *ErrorNode) Range() formel.Range {
	blame := en.errule.blame
	if len(blame) == 0 {
		return formel.MakeRange(en.First(), en.Last(), en.Description())
	}
	first, last := en.children[blame[0]].First(), en.children[blame[0]].Last()
	for _, pos := range blame[1:] {
		if f := en.children[pos].First(); f < first {
			first = f
		}
		if l := en.children[pos].Last(); l > last {
			last = l
		}
	}
	return formel.MakeRange(first, last, en.Description())
}

// --- Sequences -------------------------------------------------------------

func leaves(tokens []token.Token) []Item {
	seq := make([]Item, len(tokens))
	for i, t := range tokens {
		seq[i] = newLeaf(t, i)
	}
	return seq
}

// snapshot creates a human readable form of a sequence, for debug traces.
func snapshot(seq []Item) string {
	labels := make([]string, len(seq))
	for i, item := range seq {
		labels[i] = item.Label()
	}
	return strings.Join(labels, " ")
}

func errorNodes(seq []Item) []*ErrorNode {
	var errs []*ErrorNode
	for _, item := range seq {
		if en, ok := item.(*ErrorNode); ok {
			errs = append(errs, en)
		}
	}
	return errs
}

func containsErrors(seq []Item) bool {
	for _, item := range seq {
		if _, ok := item.(*ErrorNode); ok {
			return true
		}
	}
	return false
}
