/*
Package frepl/main provides an interactive command line tool (F.REPL)
for editing and validating formulas. Users enter a formula on a line by
itself, or edit the current formula token by token with commands:

    :ins <text>         insert tokens at the cursor
    :del <pos>          delete token at position
    :rep <pos> <text>   replace token at position
    :cur <pos>          move cursor before token at position
    :vars               list variables
    :def <name> [id]    define a session variable
    :steps              show the rewriting steps of the latest validation
    :trace <level>      set trace level [Debug|Info|Error]
    :quit               leave F.REPL

Variables may be loaded from a catalog file (flag --vars). A file ".env" in
the current directory is loaded before flags are evaluated, so flags may be
given as environment variables FORMEL_TRACE, FORMEL_VARS and FORMEL_KIND.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the syntax tracer, which main() connects to Go's log package.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
