package expr

import (
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/fns"
)

// BuildPlan types an AST against the function registry. Return types of
// calls are resolved here; an argument type a function cannot accept fails
// the plan, before any column is built.
func BuildPlan(e Expr, reg *fns.Registry) (Plan, error) {
	switch n := e.(type) {
	case *CallExpr:
		return buildCallPlan(n, reg)
	default:
		dtype, value, err := buildLiteral(e)
		if err != nil {
			return nil, err
		}
		return &LiteralPlan{Dtype: dtype, Value: value}, nil
	}
}

func buildCallPlan(call *CallExpr, reg *fns.Registry) (Plan, error) {
	fn, err := reg.Lookup(call.Name)
	if err != nil {
		return nil, err
	}

	args := make([]Plan, 0, len(call.Args))
	argTypes := make([]coltype.DataType, 0, len(call.Args))
	for _, a := range call.Args {
		p, err := BuildPlan(a, reg)
		if err != nil {
			return nil, err
		}
		args = append(args, p)
		argTypes = append(argTypes, p.ResultType())
	}

	ret, err := fn.ReturnType(argTypes)
	if err != nil {
		return nil, err
	}
	return &CallPlan{Fn: fn, Args: args, Dtype: ret}, nil
}

// buildLiteral resolves a literal's declared type and its one-row Go value.
// List literals type as list of the unified element type; an empty list is
// list<null>.
func buildLiteral(e Expr) (coltype.DataType, any, error) {
	switch n := e.(type) {
	case *IntLit:
		return coltype.Int64, n.Value, nil
	case *FloatLit:
		return coltype.Float64, n.Value, nil
	case *BoolLit:
		return coltype.Bool, n.Value, nil
	case *StringLit:
		return coltype.String, n.Value, nil
	case *NullLit:
		return coltype.Null, nil, nil
	case *ListLit:
		return buildListLiteral(n)
	case *CallExpr:
		return nil, nil, fmt.Errorf("expr: calls inside list literals are not supported (%s)", n.Name)
	default:
		return nil, nil, fmt.Errorf("expr: unsupported literal %T", e)
	}
}

func buildListLiteral(lit *ListLit) (coltype.DataType, any, error) {
	elemType := coltype.Null
	values := make([]any, 0, len(lit.Elems))
	for i, el := range lit.Elems {
		dt, v, err := buildLiteral(el)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, v)
		if dt.ID() == coltype.TypeNull {
			continue
		}
		if elemType.ID() == coltype.TypeNull {
			elemType = dt
			continue
		}
		if !dt.Equal(elemType) {
			return nil, nil, fmt.Errorf("expr: list element %d is %s, want %s", i, dt, elemType)
		}
	}
	return coltype.ListOf(elemType), values, nil
}
