package token

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// Type is a category type for a Token.
type Type int8

// Token types. The set of token types is closed.
const (
	Illegal Type = iota
	Scalar
	Variable
	UnaryMinus
	ArithmeticOperator
	InequationOperator
	OpeningBracket
	ClosingBracket
)

var typeNames = [...]string{
	Illegal:            "illegal",
	Scalar:             "scalar",
	Variable:           "variable",
	UnaryMinus:         "unary-minus",
	ArithmeticOperator: "arithmetic-operator",
	InequationOperator: "inequation-operator",
	OpeningBracket:     "opening-bracket",
	ClosingBracket:     "closing-bracket",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", t)
	}
	return typeNames[t]
}

// TypeFromString returns the token type for a name as returned by Type.String().
func TypeFromString(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s && Type(t) != Illegal {
			return Type(t), true
		}
	}
	return Illegal, false
}

// --- Operators -------------------------------------------------------------

// ArithmeticOp is one of + - * /
type ArithmeticOp string

// InequationOp is one of > >= < <= =
type InequationOp string

// Operators recognized in formulas.
const (
	Plus  ArithmeticOp = "+"
	Minus ArithmeticOp = "-"
	Mul   ArithmeticOp = "*"
	Div   ArithmeticOp = "/"

	Greater        InequationOp = ">"
	GreaterOrEqual InequationOp = ">="
	Less           InequationOp = "<"
	LessOrEqual    InequationOp = "<="
	Equal          InequationOp = "="
)

// ArithmeticOps lists all arithmetic operators.
var ArithmeticOps = []ArithmeticOp{Plus, Minus, Mul, Div}

// InequationOps lists all inequation operators.
var InequationOps = []InequationOp{Greater, GreaterOrEqual, Less, LessOrEqual, Equal}

// IsValid checks if op is one of the arithmetic operators.
func (op ArithmeticOp) IsValid() bool {
	for _, o := range ArithmeticOps {
		if o == op {
			return true
		}
	}
	return false
}

// IsValid checks if op is one of the inequation operators.
func (op InequationOp) IsValid() bool {
	for _, o := range InequationOps {
		if o == op {
			return true
		}
	}
	return false
}

// --- Variables -------------------------------------------------------------

// VarRef describes a variable a formula refers to. ID is the stable identifier
// of the variable, Name is its display name. Parameters are opaque to formel
// and carry strings or numbers.
type VarRef struct {
	ID         string
	Name       string
	Parameters map[string]interface{}
}

// --- Tokens ----------------------------------------------------------------

// Token is a lexical unit of a formula. The zero value is an illegal token.
type Token struct {
	typ    Type
	symbol string          // operators and brackets
	value  decimal.Decimal // scalars
	ref    *VarRef         // variables
}

// NewScalar creates a scalar token.
func NewScalar(d decimal.Decimal) Token {
	return Token{typ: Scalar, value: d}
}

// ScalarInt creates a scalar token from an integer.
func ScalarInt(n int64) Token {
	return NewScalar(decimal.NewFromInt(n))
}

// ParseScalar creates a scalar token from its string representation.
func ParseScalar(s string) (Token, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Token{}, fmt.Errorf("not a scalar: %q: %w", s, err)
	}
	return NewScalar(d), nil
}

// NewVariable creates a variable token. The parameters are copied.
func NewVariable(v VarRef) Token {
	ref := v
	if v.Parameters == nil {
		ref.Parameters = map[string]interface{}{}
	} else {
		ref.Parameters = maps.Clone(v.Parameters)
	}
	if ref.Name == "" {
		ref.Name = ref.ID
	}
	return Token{typ: Variable, ref: &ref}
}

// NewUnaryMinus creates a unary minus token.
func NewUnaryMinus() Token {
	return Token{typ: UnaryMinus, symbol: "-"}
}

// NewArithmetic creates an arithmetic operator token. It panics if op is not
// a valid operator, as this is a programming error.
func NewArithmetic(op ArithmeticOp) Token {
	if !op.IsValid() {
		panic(fmt.Sprintf("not an arithmetic operator: %q", string(op)))
	}
	return Token{typ: ArithmeticOperator, symbol: string(op)}
}

// NewInequation creates an inequation operator token. It panics if op is not
// a valid operator, as this is a programming error.
func NewInequation(op InequationOp) Token {
	if !op.IsValid() {
		panic(fmt.Sprintf("not an inequation operator: %q", string(op)))
	}
	return Token{typ: InequationOperator, symbol: string(op)}
}

// NewOpeningBracket creates a '(' token.
func NewOpeningBracket() Token {
	return Token{typ: OpeningBracket, symbol: "("}
}

// NewClosingBracket creates a ')' token.
func NewClosingBracket() Token {
	return Token{typ: ClosingBracket, symbol: ")"}
}

// Type returns the category of a token.
func (t Token) Type() Type {
	return t.typ
}

// Symbol returns the operator or bracket symbol of a token, or "" for scalars
// and variables.
func (t Token) Symbol() string {
	return t.symbol
}

// Is checks if t is of type typ and, for operators, has symbol sym. An empty
// sym matches any symbol.
func (t Token) Is(typ Type, sym string) bool {
	return t.typ == typ && (sym == "" || t.symbol == sym)
}

// Value returns the value of a scalar token, and false for any other token.
func (t Token) Value() (decimal.Decimal, bool) {
	if t.typ != Scalar {
		return decimal.Zero, false
	}
	return t.value, true
}

// Var returns a copy of the variable reference of a variable token, and false
// for any other token.
func (t Token) Var() (VarRef, bool) {
	if t.typ != Variable || t.ref == nil {
		return VarRef{}, false
	}
	v := *t.ref
	v.Parameters = maps.Clone(t.ref.Parameters)
	return v, true
}

// String returns the canonical printed form of a token.
func (t Token) String() string {
	switch t.typ {
	case Scalar:
		return t.value.String()
	case Variable:
		if t.ref == nil {
			return ""
		}
		return t.ref.Name
	case UnaryMinus, ArithmeticOperator, InequationOperator, OpeningBracket, ClosingBracket:
		return t.symbol
	}
	return "<illegal>"
}

// GoString is a debug representation of a token.
func (t Token) GoString() string {
	return fmt.Sprintf("[%s %s]", t.typ, t.String())
}

// Equal compares two tokens by value.
func (t Token) Equal(other Token) bool {
	if t.typ != other.typ {
		return false
	}
	switch t.typ {
	case Scalar:
		return t.value.Equal(other.value)
	case Variable:
		if t.ref == nil || other.ref == nil {
			return t.ref == other.ref
		}
		return t.ref.ID == other.ref.ID
	}
	return t.symbol == other.symbol
}

// Join returns the printed forms of a token array, concatenated without
// separators. This is the way formulas appear to users.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
