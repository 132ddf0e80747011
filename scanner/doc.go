/*
Package scanner turns user input into formula tokens.

There are two ways of scanning. Symbol and Symbols recognize tokens one
symbol at a time, which is what an editor does when the user picks
operators, digits and variables from a palette. Lexer recognizes complete
input lines, where numbers may span more than one character and variables
are referred to by name:

    toks, err := scanner.Tokenize("cpu * 100 >= 80", catalog)

Variables are resolved by a Resolver, usually a variable catalog.
Both ways of scanning produce arithmetic operators for "-"; telling unary
minus apart from subtraction is up to the grammar.

The line lexer uses lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("formel.scanner")
}
