// Package filter compiles CEL expressions into per-entry predicates for the
// --filter flag. Expressions see a flat set of variables describing one
// entry and must evaluate to a boolean.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/lsx/internal/entry"
)

// Filter is a compiled entry predicate. Compile once per run, probe once
// per entry.
type Filter struct {
	program cel.Program
	expr    string
}

// Compile builds the CEL environment and checks the expression against it.
// Available variables: name (string), size (int), dir, hidden, link (bool),
// modified (timestamp). The string extension library is loaded, so
// expressions like name.endsWith(".go") work.
func Compile(expr string) (*Filter, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("dir", cel.BoolType),
		cel.Variable("hidden", cel.BoolType),
		cel.Variable("link", cel.BoolType),
		cel.Variable("modified", cel.TimestampType),
		celext.Strings(),
	)
	if err != nil {
		return nil, fmt.Errorf("filter environment: %w", err)
	}

	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q evaluates to %s, want bool", expr, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program filter %q: %w", expr, err)
	}
	return &Filter{program: program, expr: expr}, nil
}

// Expr returns the source text the filter was compiled from.
func (f *Filter) Expr() string {
	return f.expr
}

// Match evaluates the filter against one entry.
func (f *Filter) Match(e *entry.Entry) (bool, error) {
	out, _, err := f.program.Eval(map[string]any{
		"name":     e.Name,
		"size":     e.Info.Size(),
		"dir":      e.IsDir(),
		"hidden":   e.IsHidden(),
		"link":     e.IsSymlink(),
		"modified": e.Info.ModTime(),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q on %s: %w", f.expr, e.Name, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q produced %T, want bool", f.expr, out.Value())
	}
	return matched, nil
}
