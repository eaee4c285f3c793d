package coltype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	require.Equal(t, "null", TypeNull.String())
	require.Equal(t, "large_list", TypeLargeList.String())
	require.Equal(t, "type(200)", Type(200).String())
}

func TestDataTypeString(t *testing.T) {
	cases := []struct {
		dt   DataType
		want string
	}{
		{Int64, "int64"},
		{ListOf(Int64), "list<int64>"},
		{ListOf(ListOf(Int64)), "list<list<int64>>"},
		{LargeListOf(String), "large_list<string>"},
		{FixedSizeListOf(Float64, 3), "fixed_size_list<float64, 3>"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.dt.String())
	}
}

func TestDataTypeEqual(t *testing.T) {
	require.True(t, ListOf(Int64).Equal(ListOf(Int64)))
	require.True(t, LargeListOf(ListOf(Bool)).Equal(LargeListOf(ListOf(Bool))))
	require.False(t, ListOf(Int64).Equal(ListOf(Float64)))
	require.False(t, ListOf(Int64).Equal(LargeListOf(Int64)))
	require.False(t, FixedSizeListOf(Int64, 2).Equal(FixedSizeListOf(Int64, 3)))
	require.False(t, Null.Equal(Bool))
	require.True(t, Null.Equal(Null))
}

func TestFieldEqual(t *testing.T) {
	a := Field{Name: "item", Type: Int64, Nullable: true}
	b := Field{Name: "item", Type: Int64, Nullable: true}
	require.True(t, a.Equal(b))

	b.Nullable = false
	require.False(t, a.Equal(b))
}
