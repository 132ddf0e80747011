package arith

import (
	"fmt"
	"strings"

	"github.com/npillmayer/formel/rewrite"
	"github.com/npillmayer/formel/token"
)

// Names of productions.
const (
	Expr      = "expr"
	Statement = "statement"
)

// Kind selects which productions are accepted as a complete input.
type Kind int8

// Kinds of input.
const (
	Any        Kind = iota // expressions or inequations
	Expression             // expressions only, e.g. "a+b"
	Inequation             // inequations only, e.g. "a+b<4"
)

var kindNames = [...]string{"any", "expression", "inequation"}

func (k Kind) String() string {
	if k < Any || k > Inequation {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// KindFromString returns the kind for a name as returned by Kind.String().
func KindFromString(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return Any, fmt.Errorf("unknown kind of input %q", s)
}

func (k Kind) finalNames() []string {
	switch k {
	case Expression:
		return []string{Expr}
	case Inequation:
		return []string{Statement}
	}
	return []string{Expr, Statement}
}

// FixUnaryMinus re-classifies arithmetic "-" operators as unary minus where
// applicable. A "-" in last position is never a unary minus. Decisions look at
// the neighbours as they appear in the input, never at re-classified tokens.
// The result has the same length as the input.
func FixUnaryMinus(tokens []token.Token) []token.Token {
	fixed := make([]token.Token, len(tokens))
	for i, t := range tokens {
		fixed[i] = t
		if !t.Is(token.ArithmeticOperator, string(token.Minus)) || i == len(tokens)-1 {
			continue
		}
		if i == 0 {
			fixed[i] = token.NewUnaryMinus()
			continue
		}
		prev, next := tokens[i-1], tokens[i+1]
		if prev.Type() == token.OpeningBracket || prev.Type() == token.InequationOperator ||
			((prev.Is(token.ArithmeticOperator, string(token.Mul)) ||
				prev.Is(token.ArithmeticOperator, string(token.Div))) &&
				(next.Type() == token.Variable || next.Type() == token.Scalar)) {
			fixed[i] = token.NewUnaryMinus()
		}
	}
	return fixed
}

// NewGrammar creates the grammar for arithmetic expressions and inequations.
// Kind selects the productions accepted as a complete input.
func NewGrammar(kind Kind) (*rewrite.Grammar, error) {
	b := rewrite.NewGrammarBuilder("Arith/"+kind.String(), kind.finalNames()...)
	b.Preprocess(FixUnaryMinus)
	b.Classify(Expr).T(token.Scalar).T(token.Variable).End()
	b.ErrorReduce("two-expressions", "Expected an operator").
		N(Expr).N(Expr).Blame(1).End()
	b.Reduce(Expr).T(token.UnaryMinus).N(Expr).End()
	b.Reduce(Expr).N(Expr).T(token.ArithmeticOperator).N(Expr).End()
	b.Reduce(Expr).T(token.OpeningBracket).N(Expr).T(token.ClosingBracket).End()
	b.Reduce(Statement).N(Expr).T(token.InequationOperator).N(Expr).End()
	b.ErrorReduce("two-operators", "Two operators").
		T(token.ArithmeticOperator).T(token.ArithmeticOperator).End()
	b.ErrorReduce("extra-operator", "Extra operator after expression").
		T(token.OpeningBracket).N(Expr).T(token.ArithmeticOperator).T(token.ClosingBracket).
		Blame(2).End()
	b.ErrorReduce("extra-closed-bracket", "Extra closed bracket").
		N(Expr).T(token.ClosingBracket).Blame(1).End()
	b.ErrorReduce("empty-brackets", "Empty brackets").
		T(token.OpeningBracket).T(token.ClosingBracket).End()
	b.ErrorReduce("unclosed-bracket", "No matching bracket for opening bracket").
		T(token.OpeningBracket).N(Expr).Blame(0).End()
	return b.Grammar()
}

var grammars [Inequation + 1]*rewrite.Grammar

func init() {
	for k := Any; k <= Inequation; k++ {
		g, err := NewGrammar(k)
		if err != nil {
			panic(fmt.Sprintf("arith: cannot create grammar: %v", err))
		}
		grammars[k] = g
	}
}

// Grammar returns the shared grammar for a kind of input.
func Grammar(kind Kind) *rewrite.Grammar {
	if kind < Any || kind > Inequation {
		tracer().Errorf("unknown kind of input %d, using %s", kind, Any)
		kind = Any
	}
	return grammars[kind]
}

// Validate validates a token array, accepting expressions and inequations.
func Validate(tokens []token.Token) rewrite.Result {
	return rewrite.Validate(tokens, Grammar(Any))
}
