package scanner

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/formel/token"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token kinds of the line lexer.
const (
	numTok = iota + 1
	identTok
	literalTok
)

var literals = []string{
	"+", "-", "*", "/",
	">=", "<=", ">", "<", "=",
	"(", ")",
}

// Lexer is a lexmachine-based scanner for complete input lines.
// A Lexer may be shared between goroutines.
type Lexer struct {
	lexer *lexmachine.Lexer
}

// NewLexer creates a line lexer. NewLexer will return an error if compiling
// the DFA failed.
func NewLexer() (*Lexer, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`( |\t|\n|\r)+`), skip)
	lm.Add([]byte(`[0-9]*\.?[0-9]+`), makeToken(numTok))
	lm.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|\.)*`), makeToken(identTok))
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lm.Add([]byte(r), makeToken(literalTok))
	}
	if err := lm.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{lexer: lm}, nil
}

var (
	defaultLexer    *Lexer
	defaultLexerErr error
	lexerOnce       sync.Once
)

// Tokenize scans an input line with a default lexer.
func Tokenize(input string, vars Resolver) ([]token.Token, error) {
	lexerOnce.Do(func() {
		defaultLexer, defaultLexerErr = NewLexer()
	})
	if defaultLexerErr != nil {
		return nil, defaultLexerErr
	}
	return defaultLexer.Tokenize(input, vars)
}

// Tokenize scans an input line. Names of variables are resolved by vars,
// which may be nil. Tokenize stops at the first unrecognized input or unknown
// variable and reports the error together with the column of the offending
// input.
func (lx *Lexer) Tokenize(input string, vars Resolver) ([]token.Token, error) {
	sc, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token.Token
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			var ui *machines.UnconsumedInput
			if errors.As(err, &ui) {
				return nil, fmt.Errorf("%w at column %d", ErrUnrecognized, ui.StartColumn)
			}
			return nil, err
		}
		lt := tok.(*lexmachine.Token)
		t, err := convert(lt, vars)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("lexeme %-8q at column %3d → %s", lt.Lexeme, lt.StartColumn, t.Type())
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func convert(lt *lexmachine.Token, vars Resolver) (token.Token, error) {
	lexeme := string(lt.Lexeme)
	switch lt.Type {
	case numTok:
		return token.ParseScalar(lexeme)
	case identTok:
		if vars != nil {
			if v, ok := vars.Resolve(lexeme); ok {
				return token.NewVariable(v), nil
			}
		}
		return token.Token{}, fmt.Errorf("%w %q at column %d", ErrUnknownVariable, lexeme, lt.StartColumn)
	}
	if tok, ok := Symbol(lexeme, nil); ok {
		return tok, nil
	}
	return token.Token{}, fmt.Errorf("%w %q at column %d", ErrUnrecognized, lexeme, lt.StartColumn)
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a lexmachine token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
