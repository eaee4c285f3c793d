package vec

import (
	"github.com/ndthuan92/colvec/internal/coltype"
)

// CastToLarge converts a column to its 64-bit-offset shape, recursing through
// every nested list level. Non-list columns are shared unchanged. The caller
// owns the returned reference.
func CastToLarge(arr Array) (Array, error) {
	switch a := arr.(type) {
	case *List:
		return castListToLarge(a.ElemField(), widenOffsets(a.Offsets()), a.ListValues(), a.valid)
	case *LargeList:
		return castListToLarge(a.ElemField(), a.Offsets(), a.ListValues(), a.valid)
	default:
		arr.Retain()
		return arr, nil
	}
}

func castListToLarge(elem coltype.Field, offsets []int64, values Array, valid []bool) (Array, error) {
	converted, err := CastToLarge(values)
	if err != nil {
		return nil, err
	}
	elem.Type = coltype.ToLarge(elem.Type)
	return NewLargeList(elem, offsets, converted, valid), nil
}

func widenOffsets(offsets []int32) []int64 {
	out := make([]int64, len(offsets))
	for i, o := range offsets {
		out[i] = int64(o)
	}
	return out
}
