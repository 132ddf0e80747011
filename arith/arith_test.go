package arith

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/formel/rewrite"
	"github.com/npillmayer/formel/scanner"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func compile(t *testing.T, input string) []token.Token {
	tokens, err := scanner.Symbols(input, scanner.KnownNames{"x"})
	if err != nil {
		t.Fatalf("cannot compile test input %q: %v", input, err)
	}
	return tokens
}

func run(t *testing.T, input string) rewrite.Result {
	result := Validate(compile(t, input))
	t.Logf("\n%s", rewrite.Diagnose(result))
	return result
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	if result := run(t, ""); !errors.Is(result.Err, rewrite.ErrEmptyInput) {
		t.Errorf("expected empty input to be an error, have %v", result.Err)
	}
}

func TestCorrectExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	for _, test := range []struct {
		input string
		final string
	}{
		{"1+(1+(-1+1))", Expr},
		{"x", Expr},
		{"-1", Expr},
		{"-1+x", Expr},
		{"(-1)+(1)", Expr},
		{"2*-x", Expr},
		{"x>1", Statement},
		{"x<-1", Statement},
		{"x>1+1", Statement},
		{"1+x=(x-1)/2", Statement},
	} {
		result := run(t, test.input)
		if !result.OK() {
			t.Errorf("expected %q to be valid, have %v", test.input, result.Err)
			continue
		}
		if result.Tree.Name() != test.final {
			t.Errorf("expected %q to be recognized as %s, is %s", test.input, test.final, result.Tree.Name())
		}
	}
}

func TestIncorrectExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	for _, test := range []struct {
		input   string
		indexes []int
	}{
		{"xx", []int{1}},
		{"x1", []int{1}},
		{"11", []int{1}},
		{"-1++x", []int{2, 3}},
		{"-1+-1+(-1+-1)", []int{2, 3, 9, 10}},
		{"1+()+1", []int{2, 3}},
		{"1+(1", []int{2}},
		{"1+(1+x))+1", []int{7}},
		{"1+(1+(-1+1)))+1+(1+1)", []int{12}},
		{"(1+)", []int{2}},
		{"x>1<1", []int{3}},
		{"xx<1", []int{1}},
		{"1>xx", []int{3}},
		{"(x<1)", []int{0, 4}},
		{"x<", []int{1}},
	} {
		result := run(t, test.input)
		var rerr *rewrite.RangeError
		if !errors.As(result.Err, &rerr) {
			t.Errorf("expected %q to fail with a range error, have %v", test.input, result.Err)
			continue
		}
		if !reflect.DeepEqual(rerr.Indexes(), test.indexes) {
			t.Errorf("expected %q to blame %v, blames %v", test.input, test.indexes, rerr.Indexes())
		}
	}
	if result := run(t, "(x(<1)"); result.Err == nil {
		t.Errorf("expected (x(<1) to be invalid")
	}
}

func TestErrorKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	if result := run(t, "1++x"); !errors.Is(result.Err, rewrite.ErrGrammar) {
		t.Errorf("expected a grammar error for 1++x, have %v", result.Err)
	}
	if result := run(t, "x<"); !errors.Is(result.Err, rewrite.ErrStuck) {
		t.Errorf("expected validation of x< to get stuck, have %v", result.Err)
	}
	if result := run(t, "("); !errors.Is(result.Err, rewrite.ErrIncompleteFinalNode) {
		t.Errorf("expected ( to be incomplete, have %v", result.Err)
	}
}

func TestDiagnostic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	result := run(t, "1+(1+x))+1")
	var rerr *rewrite.RangeError
	if !errors.As(result.Err, &rerr) {
		t.Fatalf("expected a range error, have %v", result.Err)
	}
	expected := strings.Join([]string{
		"1+(1+x))+1",
		"       ~",
		"Reason: Extra closed bracket",
		"  at position 7",
	}, "\n")
	if rerr.Diagnostic() != expected {
		t.Errorf("expected diagnostic\n%s\nhave\n%s", expected, rerr.Diagnostic())
	}
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	for _, test := range []struct {
		kind  Kind
		input string
		ok    bool
	}{
		{Any, "x+1", true},
		{Any, "x>1", true},
		{Expression, "x+1", true},
		{Expression, "x>1", false},
		{Inequation, "x+1", false},
		{Inequation, "x>1", true},
	} {
		result := Grammar(test.kind).Validate(compile(t, test.input))
		if result.OK() != test.ok {
			t.Errorf("%s: expected valid(%q) = %v, have %v", test.kind, test.input, test.ok, result.Err)
		}
		if !test.ok && !errors.Is(result.Err, rewrite.ErrIncompleteFinalNode) {
			t.Errorf("%s: expected %q to be incomplete, have %v", test.kind, test.input, result.Err)
		}
	}
	if k, err := KindFromString("Inequation"); err != nil || k != Inequation {
		t.Errorf("expected kind inequation, have %v, %v", k, err)
	}
	if _, err := KindFromString("statement"); err == nil {
		t.Errorf("expected unknown kind to be an error")
	}
}

func TestFixUnaryMinus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	unary := func(tokens []token.Token) []int {
		var at []int
		for i, tok := range tokens {
			if tok.Type() == token.UnaryMinus {
				at = append(at, i)
			}
		}
		return at
	}
	for _, test := range []struct {
		input string
		at    []int
	}{
		{"-1", []int{0}},
		{"-", nil},
		{"1-1", nil},
		{"(-x)", []int{1}},
		{"x<-1", []int{2}},
		{"2*-x", []int{2}},
		{"2/-(x)", nil},
		{"--1", []int{0}},
		{"x-", nil},
	} {
		input := compile(t, test.input)
		fixed := FixUnaryMinus(input)
		if len(fixed) != len(input) {
			t.Errorf("%q: expected length to be preserved", test.input)
		}
		if at := unary(fixed); !reflect.DeepEqual(at, test.at) {
			t.Errorf("%q: expected unary minus at %v, have %v", test.input, test.at, at)
		}
		if unary(input) != nil {
			t.Errorf("%q: input has been modified", test.input)
		}
		again := FixUnaryMinus(fixed)
		if token.Join(again) != token.Join(fixed) || !reflect.DeepEqual(unary(again), unary(fixed)) {
			t.Errorf("%q: expected fixing unary minus to be idempotent", test.input)
		}
	}
}

func TestValidationIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	input := compile(t, "-1+-1+(-1+-1)")
	r1, r2 := Validate(input), Validate(input)
	if !reflect.DeepEqual(r1.DebugStrings, r2.DebugStrings) || r1.Err.Error() != r2.Err.Error() {
		t.Errorf("expected validation to be deterministic")
	}
	if input[0].Type() != token.ArithmeticOperator {
		t.Errorf("expected input tokens not to be modified")
	}
}

func TestRulePriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.arith")
	defer teardown()
	//
	// "x)" matches extra-closed-bracket only, "(x)" is reduced before the
	// error production gets a chance
	if result := run(t, "(x)"); !result.OK() {
		t.Errorf("expected (x) to be valid, have %v", result.Err)
	}
	result := run(t, "x)")
	if !errors.Is(result.Err, rewrite.ErrGrammar) || !strings.Contains(result.Err.Error(), "Extra closed bracket") {
		t.Errorf("expected extra closed bracket, have %v", result.Err)
	}
}
