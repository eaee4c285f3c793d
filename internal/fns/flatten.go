package fns

import (
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/vec"
)

// Flatten collapses arbitrarily nested list columns into a single level of
// nesting, preserving element order. Only new offset buffers are allocated;
// the leaf value storage is shared with the input. Composed offsets are not
// range-checked against the offset width.
type Flatten struct{}

func (Flatten) Name() string { return "flatten" }
func (Flatten) Arity() int   { return 1 }

// ReturnType peels nested list wrappers off the declared argument type.
// list and fixed_size_list peel through each other; large_list peels only
// through large_list. The peel stops at the first level whose element
// crosses that class boundary, and a fixed_size_list at the bottom becomes
// a plain list.
func (Flatten) ReturnType(args []coltype.DataType) (coltype.DataType, error) {
	if err := checkArity("flatten", len(args), 1); err != nil {
		return nil, err
	}
	return baseListType(args[0])
}

func baseListType(dt coltype.DataType) (coltype.DataType, error) {
	switch t := dt.(type) {
	case *coltype.ListType:
		if inListClass(t.Elem.Type) {
			return baseListType(t.Elem.Type)
		}
		return dt, nil
	case *coltype.FixedSizeListType:
		if inListClass(t.Elem.Type) {
			return baseListType(t.Elem.Type)
		}
		return &coltype.ListType{Elem: t.Elem}, nil
	case *coltype.LargeListType:
		if t.Elem.Type.ID() == coltype.TypeLargeList {
			return baseListType(t.Elem.Type)
		}
		return dt, nil
	default:
		if dt.ID() == coltype.TypeNull {
			return dt, nil
		}
		return nil, fmt.Errorf("flatten: %w: %s is not a list, large_list or null", ErrUnsupportedType, dt)
	}
}

// inListClass reports whether dt peels together with list columns.
func inListClass(dt coltype.DataType) bool {
	id := dt.ID()
	return id == coltype.TypeList || id == coltype.TypeFixedSizeList
}

// Invoke dispatches on the runtime column. Fixed-size-list columns are
// rejected here even though ReturnType resolves them.
func (Flatten) Invoke(args []vec.Array) (vec.Array, error) {
	if err := checkArity("flatten", len(args), 1); err != nil {
		return nil, err
	}
	switch arr := args[0].(type) {
	case *vec.List:
		return flattenList[int32](arr, nil)
	case *vec.LargeList:
		return flattenList[int64](arr, nil)
	case *vec.NullArray:
		arr.Retain()
		return arr, nil
	default:
		return nil, fmt.Errorf("flatten: %w: %s", ErrUnsupportedType, args[0].DataType())
	}
}

// flattenList walks one nesting level per call, carrying the offsets
// accumulated so far. acc entries are positions into the current level's
// offset buffer; composing level by level yields offsets that address the
// leaf value storage directly.
func flattenList[O vec.Offset](arr *vec.ListArray[O], acc []O) (*vec.ListArray[O], error) {
	elem := arr.ElemField()
	switch elem.Type.ID() {
	case coltype.TypeList, coltype.TypeLargeList:
		sub, ok := arr.ListValues().(*vec.ListArray[O])
		if !ok {
			return nil, fmt.Errorf("flatten: %w: %s values stored as %s",
				ErrCastFailure, arr.DataType(), arr.ListValues().DataType())
		}
		if acc == nil {
			return flattenList(sub, arr.Offsets())
		}
		return flattenList(sub, composeOffsets(arr.Offsets(), acc))
	default:
		if acc == nil {
			// already a single level
			arr.Retain()
			return arr, nil
		}
		values := arr.ListValues()
		values.Retain()
		return vec.NewListArray(elem, composeOffsets(arr.Offsets(), acc), values, nil), nil
	}
}

// composeOffsets selects base[sel[i]] for every selector entry. This is
// index selection, not addition: each sel entry is itself a valid position
// into base, both buffers delimiting adjacent nesting levels of the same
// rows.
func composeOffsets[O vec.Offset](base, sel []O) []O {
	out := make([]O, len(sel))
	for i, s := range sel {
		out[i] = base[s]
	}
	return out
}
