package expr

import (
	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/fns"
)

// Plan is a typed, executable expression node. Types are resolved when the
// plan is built, before any column is materialized.
type Plan interface {
	ResultType() coltype.DataType
	planNode()
}

// ----- Plan nodes -----

// LiteralPlan materializes one literal value per batch row.
type LiteralPlan struct {
	Dtype coltype.DataType
	Value any // one row's Go value; lists are []any
}

func (p *LiteralPlan) ResultType() coltype.DataType { return p.Dtype }
func (*LiteralPlan) planNode()                      {}

// CallPlan invokes a scalar function on its evaluated arguments.
type CallPlan struct {
	Fn    fns.Func
	Args  []Plan
	Dtype coltype.DataType // resolved return type
}

func (p *CallPlan) ResultType() coltype.DataType { return p.Dtype }
func (*CallPlan) planNode()                      {}
