package colvecwire

import "github.com/ndthuan92/colvec/internal/expr"

// EvalRequest is a single expression-evaluation request.
type EvalRequest struct {
	ID   uint64 `json:"id"`
	Expr string `json:"expr"`

	// Rows repeats each literal to size the batch; 0 means the server
	// default.
	Rows int `json:"rows,omitempty"`
}

// EvalResponse is the response for a request ID.
type EvalResponse struct {
	ID     uint64       `json:"id"`
	Result *expr.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}
