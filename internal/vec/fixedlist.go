package vec

import (
	"github.com/ndthuan92/colvec/internal/coltype"
)

// FixedSizeListArray is a list column where every row holds exactly N
// elements, so no offsets are stored. The expression engine never builds
// one; it exists so functions can recognize and reject the type at
// execution time.
type FixedSizeListArray struct {
	dtype  coltype.DataType
	elem   coltype.Field
	n      int32
	refs   *RefCount
	values Array
	valid  []bool
}

func NewFixedSizeList(elem coltype.Field, n int32, values Array, valid []bool) *FixedSizeListArray {
	if n <= 0 {
		panic("vec: fixed size list width must be positive")
	}
	if values.Len()%int(n) != 0 {
		panic("vec: fixed size list values not divisible by width")
	}
	return &FixedSizeListArray{
		dtype:  &coltype.FixedSizeListType{Elem: elem, N: n},
		elem:   elem,
		n:      n,
		refs:   NewRefCount(),
		values: values,
		valid:  valid,
	}
}

func (a *FixedSizeListArray) DataType() coltype.DataType { return a.dtype }
func (a *FixedSizeListArray) Len() int                   { return a.values.Len() / int(a.n) }
func (a *FixedSizeListArray) ElemField() coltype.Field   { return a.elem }
func (a *FixedSizeListArray) ListValues() Array          { return a.values }

func (a *FixedSizeListArray) IsNull(i int) bool {
	return a.valid != nil && !a.valid[i]
}

func (a *FixedSizeListArray) Value(i int) any {
	if a.IsNull(i) {
		return nil
	}
	start := i * int(a.n)
	out := make([]any, 0, a.n)
	for j := start; j < start+int(a.n); j++ {
		out = append(out, a.values.Value(j))
	}
	return out
}

func (a *FixedSizeListArray) Retain() { a.refs.Inc() }

func (a *FixedSizeListArray) Release() {
	if a.refs.Dec() {
		a.values.Release()
	}
}
