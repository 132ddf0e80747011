package token

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/shopspring/decimal"
)

func TestTokenString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.token")
	defer teardown()
	//
	half, _ := ParseScalar("0.5")
	for i, test := range []struct {
		tok Token
		s   string
		typ Type
	}{
		{tok: ScalarInt(12), s: "12", typ: Scalar},
		{tok: half, s: "0.5", typ: Scalar},
		{tok: NewVariable(VarRef{ID: "var_aaa", Name: "aaa"}), s: "aaa", typ: Variable},
		{tok: NewVariable(VarRef{ID: "x"}), s: "x", typ: Variable},
		{tok: NewUnaryMinus(), s: "-", typ: UnaryMinus},
		{tok: NewArithmetic(Div), s: "/", typ: ArithmeticOperator},
		{tok: NewInequation(GreaterOrEqual), s: ">=", typ: InequationOperator},
		{tok: NewOpeningBracket(), s: "(", typ: OpeningBracket},
		{tok: NewClosingBracket(), s: ")", typ: ClosingBracket},
	} {
		if test.tok.String() != test.s {
			t.Errorf("test %d: expected token to print as %q, is %q", i, test.s, test.tok.String())
		}
		if test.tok.Type() != test.typ {
			t.Errorf("test %d: expected token type %s, is %s", i, test.typ, test.tok.Type())
		}
	}
}

func TestTypeNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.token")
	defer teardown()
	//
	for typ := Scalar; typ <= ClosingBracket; typ++ {
		back, ok := TypeFromString(typ.String())
		if !ok || back != typ {
			t.Errorf("type %d does not survive a round trip through its name %q", typ, typ.String())
		}
	}
	if _, ok := TypeFromString("illegal"); ok {
		t.Errorf("illegal should not be a valid type name")
	}
}

func TestVariableIsImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.token")
	defer teardown()
	//
	params := map[string]interface{}{"window": 5}
	tok := NewVariable(VarRef{ID: "cpu", Name: "cpu", Parameters: params})
	params["window"] = 10
	v, ok := tok.Var()
	if !ok {
		t.Fatalf("expected variable token to carry a variable reference")
	}
	if v.Parameters["window"] != 5 {
		t.Errorf("token parameters changed with the caller's map")
	}
	v.Parameters["window"] = 20
	v2, _ := tok.Var()
	if v2.Parameters["window"] != 5 {
		t.Errorf("token parameters changed through an accessor copy")
	}
}

func TestTokenEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.token")
	defer teardown()
	//
	if !ScalarInt(1).Equal(NewScalar(decimal.NewFromFloat(1.0))) {
		t.Errorf("expected scalars 1 and 1.0 to be equal")
	}
	if NewArithmetic(Minus).Equal(NewUnaryMinus()) {
		t.Errorf("binary and unary minus must not be equal")
	}
	if NewArithmetic(Plus).Equal(NewArithmetic(Mul)) {
		t.Errorf("+ and * must not be equal")
	}
	if !NewArithmetic(Minus).Is(ArithmeticOperator, "-") || !NewArithmetic(Minus).Is(ArithmeticOperator, "") {
		t.Errorf("predicate Is() does not work for operators")
	}
}

func TestIllegalOperatorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected construction of operator '%%' to panic")
		}
	}()
	NewArithmetic(ArithmeticOp("%"))
}

func TestJoin(t *testing.T) {
	tokens := []Token{ScalarInt(1), NewArithmetic(Plus), NewOpeningBracket(),
		NewUnaryMinus(), NewVariable(VarRef{ID: "x"}), NewClosingBracket()}
	if s := Join(tokens); s != "1+(-x)" {
		t.Errorf("expected joined tokens to be %q, are %q", "1+(-x)", s)
	}
}
