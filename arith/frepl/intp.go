package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/formel/catalog"
	"github.com/npillmayer/formel/editor"
	"github.com/npillmayer/formel/rewrite"
	"github.com/npillmayer/formel/scanner"
	"github.com/npillmayer/formel/token"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	ed   *editor.Editor
	vars *catalog.Catalog
	repl *readline.Instance
}

var errUsage = errors.New("usage")

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or replaces the formula, given on a line by itself.
// Eval returns true if the user asked to quit.
func (intp *Intp) Eval(line string) bool {
	quit, show, err := intp.Execute(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return quit
	}
	if show {
		intp.show()
	}
	return quit
}

// Execute executes a line of input. It returns flags: should we quit, and
// should the formula be displayed.
func (intp *Intp) Execute(line string) (quit bool, show bool, err error) {
	if !strings.HasPrefix(line, ":") {
		toks, err := scanner.Tokenize(line, intp.vars)
		if err != nil {
			return false, false, err
		}
		intp.ed.SetTokens(toks)
		return false, true, nil
	}
	cmd, args := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("command %s, args = %q", cmd, args)
	switch cmd {
	case ":quit", ":q":
		return true, false, nil
	case ":ins":
		toks, err := scanner.Tokenize(args, intp.vars)
		if err != nil {
			return false, false, err
		}
		intp.ed.Insert(toks...)
		return false, true, nil
	case ":del":
		pos, err := position(args)
		if err != nil {
			return false, false, err
		}
		return false, true, intp.ed.Delete(pos)
	case ":rep":
		fields := strings.SplitN(args, " ", 2)
		if len(fields) != 2 {
			return false, false, fmt.Errorf("%w: :rep <pos> <token>", errUsage)
		}
		pos, err := position(fields[0])
		if err != nil {
			return false, false, err
		}
		toks, err := scanner.Tokenize(fields[1], intp.vars)
		if err != nil {
			return false, false, err
		}
		if len(toks) != 1 {
			return false, false, fmt.Errorf("%w: :rep replaces a single token", errUsage)
		}
		return false, true, intp.ed.Replace(pos, toks[0])
	case ":cur":
		pos, err := position(args)
		if err != nil {
			return false, false, err
		}
		if err = intp.ed.MoveCursor(pos); err != nil {
			return false, false, err
		}
		text, marker := intp.ed.CursorLine()
		pterm.Println(text)
		pterm.Println(marker)
		return false, false, nil
	case ":vars":
		intp.listVariables()
		return false, false, nil
	case ":def":
		fields := strings.Fields(args)
		if len(fields) == 0 || len(fields) > 2 {
			return false, false, fmt.Errorf("%w: :def <name> [id]", errUsage)
		}
		v := catalog.Variable{Name: fields[0]}
		if len(fields) == 2 {
			v.ID = fields[1]
		}
		return false, false, intp.vars.Define(v)
	case ":steps":
		pterm.Println(rewrite.Diagnose(intp.ed.Result()))
		return false, false, nil
	case ":trace":
		setTraceLevel(tracing.TraceLevelFromString(args))
		pterm.Info.Println("Trace level is " + args)
		return false, false, nil
	}
	return false, false, fmt.Errorf("unknown command %s", cmd)
}

func position(arg string) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: position expected, have %q", errUsage, arg)
	}
	return pos, nil
}

func (intp *Intp) show() {
	result := intp.ed.Result()
	if !result.OK() {
		pterm.Println(intp.ed.Render())
		return
	}
	pterm.Info.Println(token.Join(intp.ed.Tokens()))
	pterm.DefaultTree.WithRoot(treeFrom(result.Tree)).Render()
}

func (intp *Intp) listVariables() {
	for _, v := range intp.vars.Visible() {
		_, sc := intp.vars.Lookup(v.Name)
		line := fmt.Sprintf("%-16s %-24s %-8s %s", v.Name, v.Ref().ID, sc.Name, v.Description)
		pterm.Println(strings.TrimRight(line, " "))
	}
}

// treeFrom creates a pterm tree for a syntax tree.
func treeFrom(n *rewrite.Node) pterm.TreeNode {
	var ll pterm.LeveledList
	n.Walk(func(item rewrite.Item, depth int) {
		text := item.Label()
		if _, ok := item.(*rewrite.Leaf); ok {
			text = "'" + text + "'"
		}
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: text})
	})
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}
