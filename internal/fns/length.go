package fns

import (
	"fmt"

	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/vec"
)

// ArrayLength yields each row's element count of a list column as int64.
// Null rows stay null.
type ArrayLength struct{}

func (ArrayLength) Name() string { return "array_length" }
func (ArrayLength) Arity() int   { return 1 }

func (ArrayLength) ReturnType(args []coltype.DataType) (coltype.DataType, error) {
	if err := checkArity("array_length", len(args), 1); err != nil {
		return nil, err
	}
	switch args[0].ID() {
	case coltype.TypeList, coltype.TypeLargeList:
		return coltype.Int64, nil
	default:
		return nil, fmt.Errorf("array_length: %w: %s", ErrUnsupportedType, args[0])
	}
}

func (ArrayLength) Invoke(args []vec.Array) (vec.Array, error) {
	if err := checkArity("array_length", len(args), 1); err != nil {
		return nil, err
	}
	switch arr := args[0].(type) {
	case *vec.List:
		return rowLengths(arr), nil
	case *vec.LargeList:
		return rowLengths(arr), nil
	default:
		return nil, fmt.Errorf("array_length: %w: %s", ErrUnsupportedType, args[0].DataType())
	}
}

func rowLengths[O vec.Offset](arr *vec.ListArray[O]) *vec.Int64Array {
	offsets := arr.Offsets()
	data := make([]int64, arr.Len())
	var valid []bool
	for i := range data {
		if arr.IsNull(i) {
			if valid == nil {
				valid = make([]bool, len(data))
				for j := 0; j < i; j++ {
					valid[j] = true
				}
			}
			continue
		}
		data[i] = int64(offsets[i+1] - offsets[i])
		if valid != nil {
			valid[i] = true
		}
	}
	return vec.NewInt64Array(data, valid)
}
