/*
Package token defines the lexical units of formulas.

Tokens are usually produced by a scanner (see package scanner) or by an
interactive editor, which lets users pick variables from a catalog. Tokens are
immutable values: constructors create them, and there is no way to change a
token afterwards.

The printed form of a token is stable and is used for diagnostics and debug
traces:

    Scalar(1.5)          1.5
    Variable(id, name)   name
    UnaryMinus           -
    Arithmetic(+)        +
    Inequation(>=)       >=
    OpeningBracket       (
    ClosingBracket       )

Please note that the surface symbol of a token does not resolve its class:
a "-" may be an arithmetic operator or a unary minus, depending on its
neighbours. Resolving this is the task of a grammar's preprocessing steps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.token'.
func tracer() tracing.Trace {
	return tracing.Select("formel.token")
}
