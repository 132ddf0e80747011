/*
Package legacy converts tokens from and to the token format of earlier versions
of the formula editor.

Legacy tokens know only three kinds: scalars, metrics (variables referenced by
ID) and operators, where brackets count as operators. There is no legacy form
for inequations, and the distinction between unary and binary minus is lost.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package legacy

import (
	"errors"
	"fmt"

	"github.com/npillmayer/formel/token"
	"github.com/shopspring/decimal"
)

// Kind is the kind of a legacy token.
type Kind string

// Legacy token kinds
const (
	KindScalar   Kind = "scalar"
	KindMetric   Kind = "metric"
	KindOperator Kind = "operator"
)

// Token is a token in legacy format. For scalars, Scalar holds the value;
// for metrics and operators Value holds the metric ID or operator symbol.
//
// The serialized form is an object with fields "type" and "value", where
// "value" is a number for scalars and a string otherwise:
//
//    {"type":"scalar","value":3}
//    {"type":"metric","value":"host.cpu"}
//    {"type":"operator","value":"("}
//
type Token struct {
	Kind   Kind
	Value  string
	Scalar decimal.Decimal
}

// ErrNoLegacyForm is returned for tokens which cannot be expressed in the
// legacy format.
var ErrNoLegacyForm = errors.New("token has no legacy representation")

// FromLegacy converts a legacy token to a token.
func FromLegacy(lt Token) (token.Token, error) {
	switch lt.Kind {
	case KindScalar:
		return token.NewScalar(lt.Scalar), nil
	case KindMetric:
		if lt.Value == "" {
			return token.Token{}, errors.New("legacy metric without ID")
		}
		return token.NewVariable(token.VarRef{ID: lt.Value, Name: lt.Value}), nil
	case KindOperator:
		switch lt.Value {
		case "+", "-", "*", "/":
			return token.NewArithmetic(token.ArithmeticOp(lt.Value)), nil
		case "(":
			return token.NewOpeningBracket(), nil
		case ")":
			return token.NewClosingBracket(), nil
		}
		return token.Token{}, fmt.Errorf("unknown legacy operator %q", lt.Value)
	}
	return token.Token{}, fmt.Errorf("unknown legacy token kind %q", lt.Kind)
}

// ToLegacy converts a token to legacy format. A unary minus turns into a
// plain '-' operator. Inequation operators have no legacy form and result in
// an error wrapping ErrNoLegacyForm.
func ToLegacy(t token.Token) (Token, error) {
	switch t.Type() {
	case token.Scalar:
		d, _ := t.Value()
		return Token{Kind: KindScalar, Scalar: d}, nil
	case token.Variable:
		v, _ := t.Var()
		return Token{Kind: KindMetric, Value: v.ID}, nil
	case token.UnaryMinus:
		return Token{Kind: KindOperator, Value: "-"}, nil
	case token.ArithmeticOperator, token.OpeningBracket, token.ClosingBracket:
		return Token{Kind: KindOperator, Value: t.Symbol()}, nil
	case token.InequationOperator:
		return Token{}, fmt.Errorf("inequation %q: %w", t.Symbol(), ErrNoLegacyForm)
	}
	return Token{}, fmt.Errorf("token type %s: %w", t.Type(), ErrNoLegacyForm)
}

// FromLegacyTokens converts a complete legacy token array.
func FromLegacyTokens(lts []Token) ([]token.Token, error) {
	tokens := make([]token.Token, 0, len(lts))
	for i, lt := range lts {
		t, err := FromLegacy(lt)
		if err != nil {
			return nil, fmt.Errorf("legacy token #%d: %w", i, err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// ToLegacyTokens converts a complete token array to legacy format.
func ToLegacyTokens(tokens []token.Token) ([]Token, error) {
	lts := make([]Token, 0, len(tokens))
	for i, t := range tokens {
		lt, err := ToLegacy(t)
		if err != nil {
			return nil, fmt.Errorf("token #%d: %w", i, err)
		}
		lts = append(lts, lt)
	}
	return lts, nil
}
