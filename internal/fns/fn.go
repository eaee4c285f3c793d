package fns

import (
	"errors"
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/vec"
)

var (
	ErrWrongArity      = errors.New("fns: wrong number of arguments")
	ErrUnsupportedType = errors.New("fns: unsupported type")
	ErrCastFailure     = errors.New("fns: nested values do not match declared type")
	ErrFuncNotFound    = errors.New("fns: function not found")
	ErrFuncExists      = errors.New("fns: function already registered")
)

// Func is a scalar function over columnar arrays.
//
// ReturnType runs at plan time on declared argument types and fails the plan
// when the signature cannot be satisfied. Invoke runs once per batch on
// materialized columns; the caller owns the returned array and releases it
// when done.
type Func interface {
	Name() string
	Arity() int
	ReturnType(args []coltype.DataType) (coltype.DataType, error)
	Invoke(args []vec.Array) (vec.Array, error)
}

// checkArity is the shared argument-count guard.
func checkArity(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: %w: got %d, want %d", name, ErrWrongArity, got, want)
	}
	return nil
}
