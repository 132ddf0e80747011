package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/npillmayer/formel/arith"
	"github.com/npillmayer/formel/catalog"
	"github.com/npillmayer/formel/diag"
	"github.com/npillmayer/formel/editor"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

// CLI holds the command line flags of F.REPL.
type CLI struct {
	Trace   string   `help:"Trace level [Debug|Info|Error]" default:"Info" env:"FORMEL_TRACE"`
	Vars    string   `help:"Variable catalog file (YAML)" type:"path" env:"FORMEL_VARS"`
	Kind    string   `help:"Kind of input accepted" enum:"any,expression,inequation" default:"any" env:"FORMEL_KIND"`
	NoColor bool     `help:"Do not color diagnostics"`
	Batch   bool     `help:"Validate input argument and exit"`
	Input   []string `arg:"" optional:"" help:"Initial formula"`
}

// traceKeys are the tracers of the library packages.
var traceKeys = []string{
	"formel.arith",
	"formel.catalog",
	"formel.diag",
	"formel.editor",
	"formel.rewrite",
	"formel.scanner",
	"formel.token",
}

// main() starts an interactive CLI ("F.REPL"), where users may enter and edit
// formulas. F.REPL validates the formula after every edit and prints either
// its syntax tree or a diagnostic.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			pterm.Error.Println("failed to load .env file: " + err.Error())
		}
	}
	cli := CLI{}
	kong.Parse(&cli,
		kong.Name("frepl"),
		kong.Description("Interactive editor for arithmetic formulas"),
		kong.UsageOnError(),
	)
	setTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to F.REPL")
	tracer().Infof("Trace level is %s", cli.Trace)
	//
	// set up grammar, variables and editor
	kind, err := arith.KindFromString(cli.Kind)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	g := arith.Grammar(kind)
	setTraceLevel(tracing.TraceLevelFromString(cli.Trace)) // now set the user supplied level
	g.Dump()                                                // only visible in debug mode
	vars, err := initCatalog(cli.Vars)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	intp := &Intp{
		ed:   editor.New(g, editor.WithPrinter(diag.NewPrinter(!cli.NoColor))),
		vars: vars,
	}
	input := strings.TrimSpace(strings.Join(cli.Input, " "))
	tracer().Infof("Input argument is \"%s\"", input)
	if input != "" {
		intp.Eval(input)
	}
	if cli.Batch {
		if !intp.ed.Result().OK() {
			os.Exit(1)
		}
		os.Exit(0)
	}
	//
	// set up REPL
	repl, err := readline.New("frepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initCatalog creates the variable catalog: a builtin scope, an optional
// file scope and a session scope for variables defined interactively.
func initCatalog(path string) (*catalog.Catalog, error) {
	vars, err := catalog.New()
	if err != nil {
		return nil, err
	}
	if path != "" {
		sc, err := vars.Load(path)
		if err != nil {
			return nil, err
		}
		tracer().Infof("Loaded %d variables from %s", sc.Variables().Size(), path)
	}
	vars.PushScope(catalog.SessionScope)
	return vars, nil
}

func setTraceLevel(level tracing.TraceLevel) {
	tracer().SetTraceLevel(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
