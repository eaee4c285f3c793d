package vec

import (
	"github.com/ndthuan92/colvec/internal/coltype"
)

// Scalar is the set of Go value types primitive arrays can hold.
type Scalar interface {
	int64 | float64 | bool | string
}

// flatArray holds one primitive value per row plus an optional validity
// slice (nil means no nulls).
type flatArray[T Scalar] struct {
	dtype coltype.DataType
	refs  *RefCount
	data  []T
	valid []bool
}

type (
	Int64Array   = flatArray[int64]
	Float64Array = flatArray[float64]
	BoolArray    = flatArray[bool]
	StringArray  = flatArray[string]
)

func NewInt64Array(data []int64, valid []bool) *Int64Array {
	return newFlatArray(coltype.Int64, data, valid)
}

func NewFloat64Array(data []float64, valid []bool) *Float64Array {
	return newFlatArray(coltype.Float64, data, valid)
}

func NewBoolArray(data []bool, valid []bool) *BoolArray {
	return newFlatArray(coltype.Bool, data, valid)
}

func NewStringArray(data []string, valid []bool) *StringArray {
	return newFlatArray(coltype.String, data, valid)
}

func newFlatArray[T Scalar](dtype coltype.DataType, data []T, valid []bool) *flatArray[T] {
	if valid != nil && len(valid) != len(data) {
		panic("vec: validity length does not match data length")
	}
	return &flatArray[T]{dtype: dtype, refs: NewRefCount(), data: data, valid: valid}
}

func (a *flatArray[T]) DataType() coltype.DataType { return a.dtype }
func (a *flatArray[T]) Len() int                   { return len(a.data) }

func (a *flatArray[T]) IsNull(i int) bool {
	return a.valid != nil && !a.valid[i]
}

func (a *flatArray[T]) Value(i int) any {
	if a.IsNull(i) {
		return nil
	}
	return a.data[i]
}

// Values exposes the backing slice. Callers must not mutate it.
func (a *flatArray[T]) Values() []T { return a.data }

func (a *flatArray[T]) Retain()  { a.refs.Inc() }
func (a *flatArray[T]) Release() { a.refs.Dec() }

// Refs reports the current reference count, for tests.
func (a *flatArray[T]) Refs() int32 { return a.refs.Get() }
