package vec

import (
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
)

// Offset is the integer width of a list array's offsets. The width is fixed
// per array and never changes across operations.
type Offset interface {
	int32 | int64
}

// ListArray is a variable-length list column, generic over its offset width.
// Row i spans values positions [offsets[i], offsets[i+1]). offsets has
// length rows+1, is non-decreasing, and offsets[0] need not be zero (a
// flattened or sliced column can start mid-storage).
type ListArray[O Offset] struct {
	dtype   coltype.DataType
	elem    coltype.Field
	refs    *RefCount
	offsets []O
	values  Array
	valid   []bool
}

type (
	List      = ListArray[int32]
	LargeList = ListArray[int64]
)

// NewListArray builds a list array owning one reference to values. The
// concrete data type (list vs large_list) follows the offset width O.
func NewListArray[O Offset](elem coltype.Field, offsets []O, values Array, valid []bool) *ListArray[O] {
	if len(offsets) == 0 {
		panic("vec: list offsets must have length rows+1")
	}
	if valid != nil && len(valid) != len(offsets)-1 {
		panic("vec: validity length does not match row count")
	}
	var dtype coltype.DataType
	switch any(O(0)).(type) {
	case int32:
		dtype = &coltype.ListType{Elem: elem}
	default:
		dtype = &coltype.LargeListType{Elem: elem}
	}
	return &ListArray[O]{
		dtype:   dtype,
		elem:    elem,
		refs:    NewRefCount(),
		offsets: offsets,
		values:  values,
		valid:   valid,
	}
}

func NewList(elem coltype.Field, offsets []int32, values Array, valid []bool) *List {
	return NewListArray(elem, offsets, values, valid)
}

func NewLargeList(elem coltype.Field, offsets []int64, values Array, valid []bool) *LargeList {
	return NewListArray(elem, offsets, values, valid)
}

func (a *ListArray[O]) DataType() coltype.DataType { return a.dtype }
func (a *ListArray[O]) Len() int                   { return len(a.offsets) - 1 }

// ElemField is the declared type of one list element.
func (a *ListArray[O]) ElemField() coltype.Field { return a.elem }

// Offsets exposes the offset buffer. Callers must not mutate it.
func (a *ListArray[O]) Offsets() []O { return a.offsets }

// ListValues is the flat child array all rows index into.
func (a *ListArray[O]) ListValues() Array { return a.values }

func (a *ListArray[O]) IsNull(i int) bool {
	return a.valid != nil && !a.valid[i]
}

func (a *ListArray[O]) Value(i int) any {
	if a.IsNull(i) {
		return nil
	}
	start, end := a.offsets[i], a.offsets[i+1]
	out := make([]any, 0, end-start)
	for j := start; j < end; j++ {
		out = append(out, a.values.Value(int(j)))
	}
	return out
}

func (a *ListArray[O]) Retain() { a.refs.Inc() }

// Release drops one reference; the child values array is released with the
// last one.
func (a *ListArray[O]) Release() {
	if a.refs.Dec() {
		a.values.Release()
	}
}

// Refs reports the current reference count, for tests.
func (a *ListArray[O]) Refs() int32 { return a.refs.Get() }

// String renders a short debug description.
func (a *ListArray[O]) String() string {
	return fmt.Sprintf("%s[%d rows]", a.dtype, a.Len())
}
