/*
Package catalog manages the variables users may refer to in formulas.

Variables are stored in tables, which are attached to scopes. Scopes link back
to a parent scope, and lookups search from the innermost scope outwards. A
Catalog organizes scopes as a stack, usually

    session      variables defined interactively
      ↑
    file         variables loaded from a catalog file
      ↑
    builtin      variables every formula may use

Catalog files are YAML documents:

    variables:
      - name: cpu
        id: host.cpu.load
        description: CPU load in percent
        parameters:
          window: 5m

A Catalog implements scanner.Resolver.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formel.catalog'.
func tracer() tracing.Trace {
	return tracing.Select("formel.catalog")
}
