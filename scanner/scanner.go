package scanner

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/npillmayer/formel/token"
)

// Errors reported by scanning.
var (
	ErrUnrecognized    = errors.New("unrecognized symbol")
	ErrUnknownVariable = errors.New("unknown variable")
)

// Resolver resolves variable names to variable references.
type Resolver interface {
	Resolve(name string) (token.VarRef, bool)
}

// KnownNames is a resolver for a fixed set of variable names. Every name
// resolves to a variable with an ID equal to its name.
type KnownNames []string

// Resolve is part of interface Resolver.
func (kn KnownNames) Resolve(name string) (token.VarRef, bool) {
	for _, n := range kn {
		if n == name {
			return token.VarRef{ID: name, Name: name}, true
		}
	}
	return token.VarRef{}, false
}

var scalarRegex = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+$`)

// IsScalar is a predicate: is s the lexical form of a scalar?
// Scalars are decimal numbers with an optional sign and an optional
// fractional part, e.g. "1", "-0.5" or ".5".
func IsScalar(s string) bool {
	return scalarRegex.MatchString(s)
}

// Symbol recognizes a single symbol. Operators are checked first, then
// brackets, scalars and at last variable names. vars may be nil.
func Symbol(s string, vars Resolver) (token.Token, bool) {
	if op := token.ArithmeticOp(s); op.IsValid() {
		return token.NewArithmetic(op), true
	}
	if op := token.InequationOp(s); op.IsValid() {
		return token.NewInequation(op), true
	}
	switch s {
	case ")":
		return token.NewClosingBracket(), true
	case "(":
		return token.NewOpeningBracket(), true
	}
	if IsScalar(s) {
		if tok, err := token.ParseScalar(s); err == nil {
			return tok, true
		}
	}
	if vars != nil {
		if v, ok := vars.Resolve(s); ok {
			return token.NewVariable(v), true
		}
	}
	return token.Token{}, false
}

// Symbols recognizes input one character at a time. "12" will therefore
// result in two scalar tokens. Whitespace is not allowed.
func Symbols(input string, vars Resolver) ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(input))
	pos := 0
	for _, r := range input {
		tok, ok := Symbol(string(r), vars)
		if !ok {
			return nil, fmt.Errorf("%w %q at position %d", ErrUnrecognized, r, pos)
		}
		tokens = append(tokens, tok)
		pos++
	}
	tracer().Debugf("symbols %q → %s", input, token.Join(tokens))
	return tokens, nil
}
