/*
Package rewrite implements a rewrite-rule grammar engine for flat token arrays.

Other than a conventional parser, which consumes tokens from left to right,
the engine repeatedly rewrites a sequence of parse items until it reaches a
fixpoint. Initially, every token is wrapped into a leaf item. Grammar rules
then replace items (or windows of items) by nodes, until either a single node
remains, no rule applies any more, or an error production matched.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add rules in
order of priority: whenever more than one rule could be applied to a sequence,
the rule declared first wins.

Example:

    b := rewrite.NewGrammarBuilder("G", "sum")           // "sum" is a final node name
    b.Classify("term").T(token.Scalar).T(token.Variable).End()  // term  ⟵ scalar | variable
    b.Reduce("sum").N("term").T(token.ArithmeticOperator).N("term").End()
    b.ErrorReduce("ops", "Two operators").                      // error production
        T(token.ArithmeticOperator).T(token.ArithmeticOperator).End()
    G, err := b.Grammar()

There are three kinds of rules:

■ Classify matches single items against any of its options and wraps each
matching item into a node of its own. It is applied to all matching items at
once.

■ Reduce matches a window of consecutive items, position by position, and
replaces the window by a single node. A single application reduces every
non-overlapping matching window, scanning from left to right.

■ ErrorReduce matches like Reduce, but produces error nodes. Error nodes stop
the rewriting process and are reported as diagnostics. An error production may
blame only some of the positions of its window, as in

    b.ErrorReduce("unclosed", "No matching bracket").
        T(token.OpeningBracket).N("term").Blame(0).End()

Options referring to rule names (N) can only match nodes which some rule has
produced in an earlier pass. Declaration order therefore encodes an implicit
dependency order between productions: a production referring to "term" will
never match before the rule producing "term" has been applied. The grammar
builder rejects references to names no rule produces.

Preprocessing

Some classifications depend on the neighbours of a token and are impractical
to express as rules. Grammars may carry preprocessors, functions
[]token.Token → []token.Token, which run once each, in order of registration,
before any rule is applied.

Validating

    result := rewrite.Validate(tokens, G)
    if result.Err != nil {
        var rerr *rewrite.RangeError
        if errors.As(result.Err, &rerr) {
            fmt.Println(rerr.Diagnostic())
        }
    }

Grammars are immutable after construction and may be shared between
goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("formel.rewrite")
}
