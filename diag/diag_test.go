package diag

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/formel"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// 1+(12+x))
func testTokens() []token.Token {
	return []token.Token{
		token.ScalarInt(1),
		token.NewArithmetic(token.Plus),
		token.NewOpeningBracket(),
		token.ScalarInt(12),
		token.NewArithmetic(token.Plus),
		token.NewVariable(token.VarRef{ID: "x"}),
		token.NewClosingBracket(),
		token.NewClosingBracket(),
	}
}

func TestSquiggles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.diag")
	defer teardown()
	//
	text, marks := Squiggles(testTokens(), []formel.Range{
		formel.MakeRange(3, 3, "wide token"),
		formel.MakeRange(7, 7, "Extra closed bracket"),
	})
	if text != "1+(12+x))" {
		t.Errorf("expected text to be 1+(12+x)), is %q", text)
	}
	if marks != "   ~~   ~" {
		t.Errorf("expected marks to be %q, are %q", "   ~~   ~", marks)
	}
}

func TestCovered(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.diag")
	defer teardown()
	//
	covered := Covered([]formel.Range{
		formel.MakeRange(5, 6, ""),
		formel.MakeRange(1, 2, ""),
		formel.MakeRange(2, 3, ""),
	})
	if !reflect.DeepEqual(covered, []int{1, 2, 3, 5, 6}) {
		t.Errorf("expected covered positions [1 2 3 5 6], have %v", covered)
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.diag")
	defer teardown()
	//
	out := Render(testTokens(), []formel.Range{
		formel.MakeRange(7, 7, "Extra closed bracket"),
		formel.MakeRange(1, 2, "Something else"),
	})
	lines := strings.Split(out, "\n")
	expected := []string{
		"1+(12+x))",
		" ~~     ~",
		"Reason: Extra closed bracket",
		"  at position 7",
		"Reason: Something else",
		"  at positions 1-2",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("unexpected diagnostic:\n%s", out)
	}
}

func TestColoredPrinter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.diag")
	defer teardown()
	//
	ranges := []formel.Range{formel.MakeRange(0, 0, "Bad")}
	colored := NewPrinter(true).Render(testTokens(), ranges)
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected colored output to contain escape sequences")
	}
	if NewPrinter(false).Render(testTokens(), ranges) != Render(testTokens(), ranges) {
		t.Errorf("expected uncolored printer to render like Render()")
	}
}
