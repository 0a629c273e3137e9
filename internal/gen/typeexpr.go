package gen

import (
	"fmt"
	"go/parser"
)

// validateTypeExpr checks that s parses as a Go type expression.
// Override and built-in mapping strings go through this before any
// code is emitted; a failure aborts synthesis for the key, naming the
// offending string.
func validateTypeExpr(s string) error {
	if _, err := parser.ParseExpr(s); err != nil {
		return fmt.Errorf("invalid type %q: %w", s, err)
	}

	return nil
}
