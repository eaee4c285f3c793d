package fns

import (
	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/vec"
)

// Large rewrites a column to its 64-bit-offset shape, turning every nested
// list level into a large_list. Non-list columns pass through unchanged.
// Mostly useful to feed large_list columns into functions from the
// expression language, where list literals always start 32-bit.
type Large struct{}

func (Large) Name() string { return "large" }
func (Large) Arity() int   { return 1 }

func (Large) ReturnType(args []coltype.DataType) (coltype.DataType, error) {
	if err := checkArity("large", len(args), 1); err != nil {
		return nil, err
	}
	return coltype.ToLarge(args[0]), nil
}

func (Large) Invoke(args []vec.Array) (vec.Array, error) {
	if err := checkArity("large", len(args), 1); err != nil {
		return nil, err
	}
	return vec.CastToLarge(args[0])
}
