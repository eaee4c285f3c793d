package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ndthuan92/colvec/internal/coltype"
	"github.com/ndthuan92/colvec/internal/fns"
)

func testRegistry(t *testing.T) *fns.Registry {
	t.Helper()
	reg := fns.NewRegistry()
	require.NoError(t, reg.Register(fns.Flatten{}))
	require.NoError(t, reg.Register(fns.Large{}))
	require.NoError(t, reg.Register(fns.ArrayLength{}))
	return reg
}

func mustPlan(t *testing.T, input string, reg *fns.Registry) Plan {
	t.Helper()
	ast, err := Parse(input)
	require.NoError(t, err)
	p, err := BuildPlan(ast, reg)
	require.NoError(t, err)
	return p
}

func TestBuildPlan_LiteralTypes(t *testing.T) {
	reg := testRegistry(t)
	cases := []struct {
		in   string
		want coltype.DataType
	}{
		{"1", coltype.Int64},
		{"1.5", coltype.Float64},
		{"null", coltype.Null},
		{`"x"`, coltype.String},
		{"[1, 2]", coltype.ListOf(coltype.Int64)},
		{"[1, null, 2]", coltype.ListOf(coltype.Int64)},
		{"[]", coltype.ListOf(coltype.Null)},
		{"[[1], [2, 3]]", coltype.ListOf(coltype.ListOf(coltype.Int64))},
	}
	for _, c := range cases {
		p := mustPlan(t, c.in, reg)
		require.True(t, p.ResultType().Equal(c.want), "%s: got %s, want %s", c.in, p.ResultType(), c.want)
	}
}

func TestBuildPlan_HeterogeneousList(t *testing.T) {
	reg := testRegistry(t)
	ast, err := Parse(`[1, "two"]`)
	require.NoError(t, err)
	_, err = BuildPlan(ast, reg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "want int64")
}

func TestBuildPlan_ResolvesReturnTypes(t *testing.T) {
	reg := testRegistry(t)

	p := mustPlan(t, "flatten([[1, 2], [3, 4]])", reg)
	require.True(t, p.ResultType().Equal(coltype.ListOf(coltype.Int64)))

	p = mustPlan(t, "flatten(large([[1], [2]]))", reg)
	require.True(t, p.ResultType().Equal(coltype.LargeListOf(coltype.Int64)))

	p = mustPlan(t, "array_length(flatten([[1], [2]]))", reg)
	require.True(t, p.ResultType().Equal(coltype.Int64))
}

// A non-list argument fails when the plan is built, before execution.
func TestBuildPlan_UnsupportedArgumentType(t *testing.T) {
	reg := testRegistry(t)
	ast, err := Parse("flatten(5)")
	require.NoError(t, err)

	_, err = BuildPlan(ast, reg)
	require.ErrorIs(t, err, fns.ErrUnsupportedType)
}

func TestBuildPlan_WrongArity(t *testing.T) {
	reg := testRegistry(t)

	ast, err := Parse("flatten()")
	require.NoError(t, err)
	_, err = BuildPlan(ast, reg)
	require.ErrorIs(t, err, fns.ErrWrongArity)

	ast, err = Parse("flatten([1], [2])")
	require.NoError(t, err)
	_, err = BuildPlan(ast, reg)
	require.ErrorIs(t, err, fns.ErrWrongArity)
}

func TestBuildPlan_UnknownFunction(t *testing.T) {
	reg := testRegistry(t)
	ast, err := Parse("explode([1])")
	require.NoError(t, err)
	_, err = BuildPlan(ast, reg)
	require.ErrorIs(t, err, fns.ErrFuncNotFound)
}

func TestBuildPlan_CallInsideListLiteral(t *testing.T) {
	reg := testRegistry(t)
	ast, err := Parse("[flatten([[1]])]")
	require.NoError(t, err)
	_, err = BuildPlan(ast, reg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not supported")
}
