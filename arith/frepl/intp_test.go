package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/formel/arith"
	"github.com/npillmayer/formel/editor"
	"github.com/npillmayer/formel/rewrite"
	"github.com/npillmayer/formel/scanner"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newIntp(t *testing.T) *Intp {
	gtrace.SyntaxTracer = gologadapter.New()
	vars, err := initCatalog("")
	if err != nil {
		t.Fatal(err)
	}
	return &Intp{
		ed:   editor.New(arith.Grammar(arith.Any)),
		vars: vars,
	}
}

func TestEditingSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.editor")
	defer teardown()
	//
	intp := newIntp(t)
	for _, line := range []string{
		":def cpu host.cpu",
		"cpu * 100 >= 80",
		":cur 0",
		":ins (",
		":rep 3 cpu",
		":del 0",
	} {
		if _, _, err := intp.Execute(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if s := token.Join(intp.ed.Tokens()); s != "cpu*cpu>=80" {
		t.Errorf("expected formula cpu*cpu>=80, have %s", s)
	}
	if r := intp.ed.Result(); !r.OK() || r.Tree.Name() != arith.Statement {
		t.Errorf("expected formula to be an inequation, have %v", r.Err)
	}
	if _, _, err := intp.Execute(":ins ("); err != nil {
		t.Fatal(err)
	}
	if !errors.Is(intp.ed.Result().Err, rewrite.ErrStuck) {
		t.Errorf("expected (cpu*cpu>=80 to be invalid, have %v", intp.ed.Result().Err)
	}
	if quit, _, _ := intp.Execute(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func TestCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.editor")
	defer teardown()
	//
	intp := newIntp(t)
	for _, test := range []struct {
		line string
		err  error
	}{
		{"1 + mem", scanner.ErrUnknownVariable},
		{":del x", errUsage},
		{":del 3", editor.ErrPosition},
		{":rep 0", errUsage},
		{":def", errUsage},
	} {
		if _, _, err := intp.Execute(test.line); !errors.Is(err, test.err) {
			t.Errorf("%q: expected error %v, have %v", test.line, test.err, err)
		}
	}
	if _, _, err := intp.Execute(":frobnicate"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
}

func TestCatalogFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	gtrace.SyntaxTracer = gologadapter.New()
	path := filepath.Join(t.TempDir(), "vars.yaml")
	yaml := "variables:\n  - name: load\n    id: host.load1\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	vars, err := initCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	ref, ok := vars.Resolve("load")
	if !ok || ref.ID != "host.load1" {
		t.Errorf("expected variable load to be loaded from catalog file, have %v", ref)
	}
	if vars.Current().Name != "session" {
		t.Errorf("expected innermost scope to be the session scope")
	}
}
