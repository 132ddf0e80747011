package rewrite

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/formel/token"
)

// Preprocessor is a function run over the complete token array before any
// rule is applied. Preprocessors have to be pure functions of their input.
type Preprocessor func([]token.Token) []token.Token

// Grammar is an ordered list of rules, together with preprocessors and the
// names of rules which represent complete top-level statements.
// Grammars are created with a GrammarBuilder and are immutable.
type Grammar struct {
	Name          string
	rules         []Rule
	preprocessors []Preprocessor
	final         *treeset.Set // names of final productions
}

// Rules returns the rules of g in order of priority.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Rule returns rule number n (in order of declaration), or nil.
func (g *Grammar) Rule(n int) Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Size returns the number of rules of g.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// FinalNames returns the names of the final productions of g, sorted.
func (g *Grammar) FinalNames() []string {
	names := make([]string, 0, g.final.Size())
	for _, x := range g.final.Values() {
		names = append(names, x.(string))
	}
	return names
}

// IsFinal is a predicate: is name the name of a final production?
func (g *Grammar) IsFinal(name string) bool {
	return g.final.Contains(name)
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	tracer().Debugf("final: %v", g.FinalNames())
	for i, r := range g.rules {
		tracer().Debugf("%3d: %s", i, r)
	}
	tracer().Debugf("-------------------------------------------")
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Rules are declared in order
// of priority.
//
// Example:
//
//    b := NewGrammarBuilder("G", "sum")
//    b.Classify("term").T(token.Scalar).End()
//    b.Reduce("sum").N("term").T(token.ArithmeticOperator).N("term").End()
//    G, err := b.Grammar()
//
type GrammarBuilder struct {
	name          string
	final         []string
	rules         []Rule
	preprocessors []Preprocessor
	errs          []error
}

// NewGrammarBuilder creates a builder for a grammar. finalNames are the names
// of rules which produce complete top-level statements.
func NewGrammarBuilder(name string, finalNames ...string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  name,
		final: append([]string(nil), finalNames...),
	}
}

// Preprocess appends a preprocessor. Preprocessors run in order of
// registration.
func (b *GrammarBuilder) Preprocess(pre Preprocessor) *GrammarBuilder {
	if pre == nil {
		b.errs = append(b.errs, errors.New("preprocessor may not be nil"))
		return b
	}
	b.preprocessors = append(b.preprocessors, pre)
	return b
}

// Classify starts a classification rule.
func (b *GrammarBuilder) Classify(name string) *RuleBuilder {
	return &RuleBuilder{b: b, kind: classifyRule, name: name}
}

// Reduce starts a reduction rule.
func (b *GrammarBuilder) Reduce(name string) *RuleBuilder {
	return &RuleBuilder{b: b, kind: reduceRule, name: name}
}

// ErrorReduce starts an error production with a human readable description.
func (b *GrammarBuilder) ErrorReduce(name string, description string) *RuleBuilder {
	return &RuleBuilder{b: b, kind: errorRule, name: name, description: description}
}

// Grammar returns the grammar built, or an error if any of the rule
// declarations were erroneous.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	errs := append([]error(nil), b.errs...)
	if len(b.rules) == 0 {
		errs = append(errs, fmt.Errorf("grammar %s has no rules", b.name))
	}
	produced := make(map[string]bool)
	for _, r := range b.rules {
		produced[r.Name()] = true
	}
	for _, r := range b.rules {
		for _, o := range r.Options() {
			if o.IsRuleName() && !produced[o.RuleName()] {
				errs = append(errs, fmt.Errorf("rule %q refers to %q, which no rule produces",
					r.Name(), o.RuleName()))
			}
		}
	}
	final := treeset.NewWithStringComparator()
	for _, name := range b.final {
		if !produced[name] {
			errs = append(errs, fmt.Errorf("final node %q is not produced by any rule", name))
		}
		final.Add(name)
	}
	if final.Empty() {
		errs = append(errs, fmt.Errorf("grammar %s has no final nodes", b.name))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	g := &Grammar{
		Name:          b.name,
		rules:         append([]Rule(nil), b.rules...),
		preprocessors: append([]Preprocessor(nil), b.preprocessors...),
		final:         final,
	}
	tracer().Infof("grammar %s has %d rules", g.Name, len(g.rules))
	return g, nil
}

// --- Rule Builder ----------------------------------------------------------

type ruleKind int8

const (
	classifyRule ruleKind = iota
	reduceRule
	errorRule
)

// RuleBuilder is a builder type for a single rule. Clients get a RuleBuilder
// from one of GrammarBuilder.Classify, .Reduce or .ErrorReduce and append
// options by calling T and N. End() completes the rule and appends it to the
// grammar.
type RuleBuilder struct {
	b           *GrammarBuilder
	kind        ruleKind
	name        string
	description string
	options     []Option
	blame       []int
}

// T appends an option matching a token of type typ.
func (rb *RuleBuilder) T(typ token.Type) *RuleBuilder {
	rb.options = append(rb.options, T(typ))
	return rb
}

// N appends an option matching a node produced by a rule named name.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.options = append(rb.options, N(name))
	return rb
}

// Options appends a list of pre-built options.
func (rb *RuleBuilder) Options(options ...Option) *RuleBuilder {
	rb.options = append(rb.options, options...)
	return rb
}

// Blame selects window positions of an error production, which are to blame
// for the error. Positions are counted from 0.
func (rb *RuleBuilder) Blame(positions ...int) *RuleBuilder {
	rb.blame = append(rb.blame, positions...)
	return rb
}

// End completes a rule and appends it to the grammar.
// Returns the new rule, or nil if the declaration is erroneous. Errors will be
// reported by GrammarBuilder.Grammar().
func (rb *RuleBuilder) End() Rule {
	if err := rb.check(); err != nil {
		rb.b.errs = append(rb.b.errs, err)
		return nil
	}
	var r Rule
	options := append([]Option(nil), rb.options...)
	switch rb.kind {
	case classifyRule:
		r = &Classify{name: rb.name, options: options}
	case reduceRule:
		r = &Reduce{name: rb.name, options: options}
	case errorRule:
		r = &ErrorReduce{
			Reduce:      Reduce{name: rb.name, options: options},
			description: rb.description,
			blame:       append([]int(nil), rb.blame...),
		}
	}
	rb.b.rules = append(rb.b.rules, r)
	return r
}

func (rb *RuleBuilder) check() error {
	if rb.name == "" {
		return errors.New("rule name may not be empty")
	}
	if len(rb.options) == 0 {
		return fmt.Errorf("rule %q has no options", rb.name)
	}
	for _, o := range rb.options {
		if !o.IsRuleName() && o.TokenType() == token.Illegal {
			return fmt.Errorf("rule %q refers to illegal token type", rb.name)
		}
	}
	if len(rb.blame) > 0 && rb.kind != errorRule {
		return fmt.Errorf("rule %q: only error productions may blame positions", rb.name)
	}
	for _, pos := range rb.blame {
		if pos < 0 || pos >= len(rb.options) {
			return fmt.Errorf("error production %q: blamed position %d out of range", rb.name, pos)
		}
	}
	return nil
}
