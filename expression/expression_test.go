package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/colex/sql"
)

// fakePlan is a minimal sql.LogicalPlan stub carrying a fixed schema, used
// to resolve expressions against in isolation from the plan package.
type fakePlan struct {
	schema sql.Schema
}

func (f fakePlan) String() string           { return "fakePlan" }
func (f fakePlan) Schema() sql.Schema       { return f.schema }
func (f fakePlan) Children() []sql.LogicalPlan { return nil }

func planWith(fields ...sql.Field) fakePlan {
	return fakePlan{schema: sql.NewSchema(fields...)}
}

func TestColumnResolution(t *testing.T) {
	require := require.New(t)

	input := planWith(sql.NewField("a", sql.Int32), sql.NewField("b", sql.Utf8))

	field, err := Col("a").ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("a", sql.Int32), field)

	require.Equal("#a", Col("a").String())

	_, err = Col("missing").ToField(input)
	require.Error(err)
}

func TestColumnIndexResolution(t *testing.T) {
	require := require.New(t)

	input := planWith(sql.NewField("a", sql.Int32), sql.NewField("b", sql.Utf8))

	field, err := ColIdx(1).ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("b", sql.Utf8), field)

	require.Equal("#1", ColIdx(1).String())
}

func TestColumnIndexOutOfRangePanics(t *testing.T) {
	input := planWith(sql.NewField("a", sql.Int32))
	require.Panics(t, func() {
		_, _ = ColIdx(5).ToField(input)
	})
}

func TestLiteralDisplayAndResolution(t *testing.T) {
	require := require.New(t)
	input := planWith()

	require.Equal("1", LitInt32(1).String())
	require.Equal("1.2", LitFloat64(1.2).String())

	field, err := LitInt32(1).ToField(input)
	require.NoError(err)
	require.Equal(sql.Int32, field.DataType)
}

func TestNotAlwaysBoolean(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Boolean))

	n := NewNot(Col("a"))
	require.Equal("NOT #a", n.String())

	field, err := n.ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("not", sql.Boolean), field)
}

func TestCastPropagatesNameAndAppliesType(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Int32))

	c := NewCast(Col("a"), sql.Float64)
	require.Equal("CAST(#a AS Float64)", c.String())

	field, err := c.ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("a", sql.Float64), field)
}

func TestBinaryExprDisplay(t *testing.T) {
	require := require.New(t)
	require.Equal("#a + 1", AddExpr(Col("a"), LitInt32(1)).String())
	require.Equal("#a = 1", EqExpr(Col("a"), LitInt32(1)).String())
}

func TestBinaryExprArithmeticResolvesToInputType(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Int64))

	field, err := AddExpr(Col("a"), LitInt32(1)).ToField(input)
	require.NoError(err)
	require.Equal(sql.Int64, field.DataType)
	require.Equal("add", field.Name)
}

func TestBinaryExprComparisonResolvesToBoolean(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Int64))

	field, err := GtExpr(Col("a"), LitInt32(1)).ToField(input)
	require.NoError(err)
	require.Equal(sql.Boolean, field.DataType)
	require.Equal("gt", field.Name)

	field, err = AndExpr(Col("a"), Col("a")).ToField(input)
	require.NoError(err)
	require.Equal(sql.Boolean, field.DataType)
}

func TestAliasRenames(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Int32))

	a := NewAlias(AddExpr(Col("a"), LitInt32(1)), "total")
	require.Equal("#a + 1 AS total", a.String())

	field, err := a.ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("total", sql.Int32), field)
}

func TestScalarFunctionResolvesToDeclaredReturnType(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Utf8))

	f := NewScalarFunction("length", []Expr{Col("a")}, sql.Int32)
	require.Equal("length(#a)", f.String())

	field, err := f.ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("length", sql.Int32), field)
}

func TestAggregateExprDisplayAndResolution(t *testing.T) {
	require := require.New(t)
	input := planWith(sql.NewField("a", sql.Int32))

	sum := NewSum(Col("a"))
	require.Equal("SUM(#a)", sum.String())
	field, err := sum.ToField(input)
	require.NoError(err)
	require.Equal(sql.NewField("sum", sql.Int32), field)

	countDistinct := NewCountDistinct(Col("a"))
	require.Equal("COUNT DISTINCT(DISTINCT #a)", countDistinct.String())
}

func TestExprTotalOrderIsDeterministic(t *testing.T) {
	require := require.New(t)

	a := Col("a")
	b := Col("b")

	require.Equal(a.Hash(), Col("a").Hash())
	require.NotEqual(a.Hash(), b.Hash())

	// Less is a strict total order: irreflexive and antisymmetric.
	require.False(a.Less(a))
	if a.Less(b) {
		require.False(b.Less(a))
	} else {
		require.True(b.Less(a))
	}
}

func TestExprHashDiffersAcrossVariants(t *testing.T) {
	require := require.New(t)

	col := Col("a")
	lit := LitString("a")
	require.NotEqual(col.Hash(), lit.Hash())
}
