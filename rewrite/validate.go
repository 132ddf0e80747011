package rewrite

import (
	"github.com/npillmayer/formel"
	"github.com/npillmayer/formel/token"
	"golang.org/x/exp/slices"
)

// Result is the outcome of validating a token array. Exactly one of Tree and
// Err is non-nil. DebugStrings holds a snapshot of the item sequence for the
// initial state and after every pass.
type Result struct {
	Tree         *Node
	Err          error
	DebugStrings []string
}

// OK is a predicate: has the input been recognized?
func (r Result) OK() bool {
	return r.Err == nil && r.Tree != nil
}

// Validate validates a token array with grammar g. See Grammar.Validate.
func Validate(tokens []token.Token, g *Grammar) Result {
	return g.Validate(tokens)
}

// Validate rewrites a token array until a fixpoint is reached.
//
// Preprocessors are applied to a copy of the tokens, then every token becomes a
// leaf. As long as the sequence does not contain any error nodes, rules are
// tried in order of declaration, and the first rule applicable produces the
// sequence for the next pass. The loop always terminates: reductions shorten
// the sequence, and classifications consume leafs which can never be
// classified again.
//
// The caller's token array is never modified. A grammar which has not been
// created by a GrammarBuilder results in ErrInvalidGrammar.
func (g *Grammar) Validate(tokens []token.Token) Result {
	if g == nil || g.final == nil {
		return Result{Err: ErrInvalidGrammar, DebugStrings: []string{}}
	}
	if len(tokens) == 0 {
		return Result{Err: ErrEmptyInput, DebugStrings: []string{}}
	}
	toks := slices.Clone(tokens)
	for _, pre := range g.preprocessors {
		toks = pre(slices.Clone(toks))
	}
	if len(toks) == 0 {
		return Result{Err: ErrEmptyInput, DebugStrings: []string{}}
	}
	seq := leaves(toks)
	debug := []string{snapshot(seq)}
	tracer().Debugf("%s: %s", g.Name, debug[0])
	for !containsErrors(seq) {
		next, rule, ok := g.pass(seq)
		if !ok {
			tracer().Debugf("%s: no rule applies", g.Name)
			break
		}
		seq = next
		debug = append(debug, snapshot(seq))
		tracer().Debugf("%s: %-20s %s", g.Name, rule.Name(), debug[len(debug)-1])
	}
	result := g.conclude(toks, seq)
	result.DebugStrings = debug
	if result.Err != nil {
		tracer().Infof("%s: %v", g.Name, result.Err)
	}
	return result
}

// pass applies the first rule applicable to seq.
func (g *Grammar) pass(seq []Item) ([]Item, Rule, bool) {
	for _, r := range g.rules {
		if next, ok := r.Apply(seq); ok {
			return next, r, true
		}
	}
	return nil, nil, false
}

// conclude classifies the terminal sequence of a validation.
func (g *Grammar) conclude(toks []token.Token, seq []Item) Result {
	if errs := errorNodes(seq); len(errs) > 0 {
		ranges := make([]formel.Range, len(errs))
		for i, en := range errs {
			ranges[i] = en.Range()
		}
		return Result{Err: newRangeError(ErrGrammar, toks, ranges, seq)}
	}
	if len(seq) == 1 {
		if n, ok := seq[0].(*Node); ok && g.IsFinal(n.Name()) {
			return Result{Tree: n}
		}
		return Result{Err: ErrIncompleteFinalNode}
	}
	var ranges []formel.Range
	for _, item := range seq {
		if leaf, ok := item.(*Leaf); ok {
			ranges = append(ranges, formel.MakeRange(leaf.First(), leaf.Last(), StuckDescription))
		}
	}
	return Result{Err: newRangeError(ErrStuck, toks, ranges, seq)}
}
