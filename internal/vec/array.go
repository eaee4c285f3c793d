package vec

import (
	"github.com/ndthuan92/colvec/internal/coltype"
)

// Array is one immutable column of values. Arrays are built once per
// evaluated batch and never mutated afterwards; sharing happens through
// Retain/Release.
type Array interface {
	DataType() coltype.DataType
	Len() int
	IsNull(i int) bool

	// Value returns row i as a plain Go value (nested lists come back as
	// []any). Used for rendering results, not for bulk access.
	Value(i int) any

	Retain()
	Release()
}

// NullArray is a column of the null data type: a row count and nothing else.
type NullArray struct {
	refs   *RefCount
	length int
}

func NewNullArray(length int) *NullArray {
	return &NullArray{refs: NewRefCount(), length: length}
}

func (a *NullArray) DataType() coltype.DataType { return coltype.Null }
func (a *NullArray) Len() int                   { return a.length }
func (a *NullArray) IsNull(i int) bool          { return true }
func (a *NullArray) Value(i int) any            { return nil }
func (a *NullArray) Retain()                    { a.refs.Inc() }
func (a *NullArray) Release()                   { a.refs.Dec() }
