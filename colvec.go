// Package colvec is a small in-memory columnar expression engine. Columns
// are immutable arrays built per evaluated batch; scalar functions resolve
// their return type when a plan is built and run on materialized columns.
package colvec

import (
	"github.com/ndthuan92/colvec/internal/expr"
	"github.com/ndthuan92/colvec/internal/fns"
)

// Engine evaluates column expressions against the builtin function registry.
type Engine struct {
	reg *fns.Registry
}

// New returns an Engine with the builtin functions registered.
func New() *Engine {
	reg := fns.NewRegistry()
	for _, f := range []fns.Func{fns.Flatten{}, fns.Large{}, fns.ArrayLength{}} {
		if err := reg.Register(f); err != nil {
			panic(err)
		}
	}
	return &Engine{reg: reg}
}

// Registry exposes the function registry, e.g. to register extra functions
// before evaluating.
func (e *Engine) Registry() *fns.Registry { return e.reg }

// Eval parses, plans and executes one expression as a single-row batch.
func (e *Engine) Eval(input string) (*expr.Result, error) {
	return e.EvalBatch(input, 1)
}

// EvalBatch evaluates one expression with each literal repeated rows times.
func (e *Engine) EvalBatch(input string, rows int) (*expr.Result, error) {
	ast, err := expr.Parse(input)
	if err != nil {
		return nil, err
	}
	plan, err := expr.BuildPlan(ast, e.reg)
	if err != nil {
		return nil, err
	}
	ex := expr.Executor{Rows: rows}
	return ex.Execute(input, plan)
}
