package rewrite

import (
	"errors"
	"strings"

	"github.com/npillmayer/formel"
	"github.com/npillmayer/formel/diag"
	"github.com/npillmayer/formel/token"
)

// Errors returned by validation. Errors are user-correctable conditions of the
// input; none of them is fatal.
var (
	ErrEmptyInput          = errors.New("empty input")
	ErrIncompleteFinalNode = errors.New("this is not a complete expression")
	ErrGrammar             = errors.New("expression is not valid")
	ErrStuck               = errors.New("expression could not be parsed")
	ErrInvalidGrammar      = errors.New("grammar has not been built by a grammar builder")
)

// StuckDescription is the description of ranges for leftover tokens.
const StuckDescription = "Couldn't parse"

// RangeError is an error locating one or more problems at input token
// positions. It wraps either ErrGrammar (error productions matched) or
// ErrStuck (rewriting got stuck with leftover tokens).
type RangeError struct {
	kind     error
	Tokens   []token.Token // input tokens, after preprocessing
	Ranges   []formel.Range
	Sequence []Item // the terminal sequence of items, for inspection
}

func newRangeError(kind error, tokens []token.Token, ranges []formel.Range, seq []Item) *RangeError {
	return &RangeError{
		kind:     kind,
		Tokens:   tokens,
		Ranges:   ranges,
		Sequence: seq,
	}
}

func (e *RangeError) Error() string {
	reasons := make([]string, len(e.Ranges))
	for i, r := range e.Ranges {
		reasons[i] = r.Description + " at " + r.Position()
	}
	return e.kind.Error() + ": " + strings.Join(reasons, "; ")
}

// Unwrap returns ErrGrammar or ErrStuck.
func (e *RangeError) Unwrap() error {
	return e.kind
}

// Indexes returns the positions covered by all ranges of e, range by range.
func (e *RangeError) Indexes() []int {
	var indexes []int
	for _, r := range e.Ranges {
		indexes = append(indexes, r.Indexes()...)
	}
	return indexes
}

// Covers is a predicate: is position i covered by any of the ranges of e?
func (e *RangeError) Covers(i int) bool {
	for _, r := range e.Ranges {
		if r.Contains(i) {
			return true
		}
	}
	return false
}

// Diagnostic renders e for display: the input tokens, a line of squiggles
// below the tokens at fault, and a reason for every range.
func (e *RangeError) Diagnostic() string {
	return diag.Render(e.Tokens, e.Ranges)
}
