/*
Package formel validates arithmetic formulas and inequalities by term rewriting.

Formel is intended for interactive formula editors: every edit of a token array
is re-validated from scratch, and the result is either a parse tree or a
diagnostic which points to the exact input tokens at fault. Package structure is
as follows:

■ token: Package token defines the lexical units of formulas (scalars, variables,
operators and brackets).

■ rewrite: Package rewrite implements the rewrite-rule grammar engine: rules,
parse items, grammars and the fixpoint driver.

■ diag: Package diag renders diagnostics for token ranges.

■ arith: Package arith provides the arithmetic expression grammar.

■ scanner, catalog, editor: collaborators for lexing input, keeping track of
known variables and editing token arrays.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formel
