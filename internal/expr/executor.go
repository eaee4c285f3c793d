package expr

import (
	"fmt"
	"log/slog"

	"github.com/ndthuan92/colvec/internal/vec"
)

// Executor evaluates a typed plan into one result batch. Every column it
// builds lives for the duration of one Execute call; functions share leaf
// storage between their input and output, so columns are released, never
// freed eagerly.
type Executor struct {
	// Rows repeats each literal to form a multi-row batch. Zero means one.
	Rows int

	// Log defaults to slog.Default().
	Log *slog.Logger
}

func (e *Executor) Execute(label string, p Plan) (*Result, error) {
	arr, err := e.eval(p)
	if err != nil {
		return nil, err
	}
	defer arr.Release()

	rows := make([][]any, arr.Len())
	for i := range rows {
		rows[i] = []any{arr.Value(i)}
	}
	return &Result{Columns: []string{label}, Rows: rows}, nil
}

func (e *Executor) eval(p Plan) (vec.Array, error) {
	switch n := p.(type) {
	case *LiteralPlan:
		rows := make([]any, e.batchRows())
		for i := range rows {
			rows[i] = n.Value
		}
		return vec.FromValues(n.Dtype, rows)

	case *CallPlan:
		args := make([]vec.Array, 0, len(n.Args))
		defer func() {
			for _, a := range args {
				a.Release()
			}
		}()
		for _, ap := range n.Args {
			arr, err := e.eval(ap)
			if err != nil {
				return nil, err
			}
			args = append(args, arr)
		}
		e.logger().Debug("invoke scalar function",
			"fn", n.Fn.Name(), "rows", e.batchRows(), "result_type", n.Dtype.String())
		return n.Fn.Invoke(args)

	default:
		return nil, fmt.Errorf("expr: unsupported plan node %T", p)
	}
}

func (e *Executor) batchRows() int {
	if e.Rows <= 0 {
		return 1
	}
	return e.Rows
}

func (e *Executor) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}
