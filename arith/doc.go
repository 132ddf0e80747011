/*
Package arith provides a grammar for arithmetic expressions and inequations
over scalars and variables, as users enter them in alerting rules or metric
formulas:

    (cpu + iowait) * 100 >= 80

The grammar accepts expressions (productions named "expr") and inequations
("statement"), depending on its Kind. Errors are reported with the positions
of the tokens at fault, e.g.

    1+(1+x))+1
           ~
    Reason: Extra closed bracket
      at position 7

A "-" is a unary minus if it starts the input, or follows an opening bracket
or an inequation operator, or follows "*" or "/" and precedes a scalar or a
variable. FixUnaryMinus performs this classification as a preprocessing step.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arith

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.arith'.
func tracer() tracing.Trace {
	return tracing.Select("formel.arith")
}
