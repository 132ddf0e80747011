package rewrite

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnose creates a report for a validation result, listing all the parsing
// steps, followed by either an interpretation of the error or the recognized
// tree.
func Diagnose(r Result) string {
	var b strings.Builder
	b.WriteString("Parsing steps:\n")
	for i, s := range r.DebugStrings {
		fmt.Fprintf(&b, "%d: %s\n", i, s)
	}
	if r.Err != nil {
		b.WriteString("\n=== Error interpretation ===\n")
		var rerr *RangeError
		if errors.As(r.Err, &rerr) {
			b.WriteString(rerr.Diagnostic())
		} else {
			b.WriteString(capitalize(r.Err.Error()))
		}
		return b.String()
	}
	b.WriteString("\n=== Success ===\n")
	if r.Tree != nil {
		fmt.Fprintf(&b, "The input is recognised as: %s", r.Tree.String())
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
