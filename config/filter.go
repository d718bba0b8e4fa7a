package config

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/scamintel/scamintel"
)

// Filter is a CEL predicate over a finding. Findings for which it evaluates
// to false are dropped. It runs after extraction and never changes what the
// extractor matches.
//
// Available variables:
//
//	category  string  result key, e.g. "phoneNumbers"
//	name      string  category name, e.g. "phone_number"
//	value     string  matched text
//	source    string  "stdin", "file" or "text"
//	path      string  message path, may be empty
//	line      int     1-based start line
//
// Example: keep phone numbers only when they carry a country code
//
//	category != "phoneNumbers" || value.startsWith("+91")
type Filter struct {
	Expression string
	program    cel.Program
}

func newFilterEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("category", cel.StringType),
		cel.Variable("name", cel.StringType),
		cel.Variable("value", cel.StringType),
		cel.Variable("source", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("line", cel.IntType),
	)
}

// NewFilter compiles expr. The expression must evaluate to a bool.
func NewFilter(expr string) (*Filter, error) {
	env, err := newFilterEnv()
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter %q: must evaluate to bool, got %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, err)
	}
	return &Filter{Expression: expr, program: prg}, nil
}

// Keep evaluates the filter against f.
func (flt *Filter) Keep(f scamintel.Finding) (bool, error) {
	out, _, err := flt.program.Eval(map[string]any{
		"category": f.Category.Key(),
		"name":     f.Category.String(),
		"value":    f.Value,
		"source":   f.Source,
		"path":     f.Path,
		"line":     int64(f.StartLine),
	})
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", flt.Expression, err)
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: result %v is not a bool", flt.Expression, out.Value())
	}
	return keep, nil
}
