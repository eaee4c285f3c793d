package vec

import (
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
)

// FromValues materializes one column of dtype from plain Go values, one per
// row. List rows are []any (nil for a null row), scalar rows are int64,
// float64, bool or string.
func FromValues(dtype coltype.DataType, rows []any) (Array, error) {
	switch t := dtype.(type) {
	case *coltype.ListType:
		return buildList[int32](t.Elem, rows)
	case *coltype.LargeListType:
		return buildList[int64](t.Elem, rows)
	case *coltype.PrimitiveType:
		switch t.ID() {
		case coltype.TypeNull:
			return NewNullArray(len(rows)), nil
		case coltype.TypeInt64:
			return buildFlat[int64](t, rows)
		case coltype.TypeFloat64:
			return buildFlat[float64](t, rows)
		case coltype.TypeBool:
			return buildFlat[bool](t, rows)
		case coltype.TypeString:
			return buildFlat[string](t, rows)
		}
	}
	return nil, fmt.Errorf("vec: cannot build %s column", dtype)
}

func buildFlat[T Scalar](dtype coltype.DataType, rows []any) (Array, error) {
	data := make([]T, len(rows))
	valid := make([]bool, len(rows))
	hasNull := false
	for i, r := range rows {
		if r == nil {
			hasNull = true
			continue
		}
		v, ok := r.(T)
		if !ok {
			return nil, fmt.Errorf("vec: row %d: got %T, want %s", i, r, dtype)
		}
		data[i] = v
		valid[i] = true
	}
	if !hasNull {
		valid = nil
	}
	return newFlatArray(dtype, data, valid), nil
}

func buildList[O Offset](elem coltype.Field, rows []any) (*ListArray[O], error) {
	offsets := make([]O, 1, len(rows)+1)
	valid := make([]bool, len(rows))
	hasNull := false
	var childRows []any
	for i, r := range rows {
		if r == nil {
			hasNull = true
			offsets = append(offsets, offsets[len(offsets)-1])
			continue
		}
		items, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("vec: row %d: got %T, want a list", i, r)
		}
		childRows = append(childRows, items...)
		offsets = append(offsets, O(len(childRows)))
		valid[i] = true
	}
	values, err := FromValues(elem.Type, childRows)
	if err != nil {
		return nil, err
	}
	if !hasNull {
		valid = nil
	}
	return NewListArray(elem, offsets, values, valid), nil
}
