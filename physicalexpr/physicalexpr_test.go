package physicalexpr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

func boolBatch(t *testing.T, values []bool) sql.RecordBatch {
	t.Helper()
	schema := sql.NewSchema(sql.NewField("c1", sql.Boolean))
	batch, err := sql.NewRecordBatch(schema, []sql.ColumnArray{columnar.NewBooleanArray(values)})
	require.NoError(t, err)
	return batch
}

func int32Batch(t *testing.T, values []int32) sql.RecordBatch {
	t.Helper()
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32))
	batch, err := sql.NewRecordBatch(schema, []sql.ColumnArray{columnar.NewInt32Array(values)})
	require.NoError(t, err)
	return batch
}

func TestColumnEvaluateReturnsBatchColumn(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{1, 2, 3})

	col, err := NewColumn(0).Evaluate(batch)
	require.NoError(err)
	require.Equal(3, col.Size())
	require.Equal(int32(2), col.GetValue(1))
}

func TestLiteralEvaluateBroadcastsToRowCount(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{1, 2, 3})

	lit := NewLiteral(sql.NewInt32Scalar(9))
	col, err := lit.Evaluate(batch)
	require.NoError(err)
	require.Equal(3, col.Size())
	require.Equal(int32(9), col.GetValue(0))
	require.Equal(int32(9), col.GetValue(2))
}

func TestCastNumericToNumeric(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{1, 2, 3})

	cast := NewCast(NewColumn(0), sql.Float64)
	col, err := cast.Evaluate(batch)
	require.NoError(err)
	require.Equal(sql.Float64, col.GetType())
	require.Equal(float64(2), col.GetValue(1))
}

func TestCastToAndFromUtf8(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{42})

	toString := NewCast(NewColumn(0), sql.Utf8)
	col, err := toString.Evaluate(batch)
	require.NoError(err)
	require.Equal("42", col.GetValue(0))

	backBatch, err := sql.NewRecordBatch(
		sql.NewSchema(sql.NewField("c1", sql.Utf8)),
		[]sql.ColumnArray{columnar.NewUtf8Array([]string{"42"})},
	)
	require.NoError(err)
	toInt := NewCast(NewColumn(0), sql.Int32)
	col, err = toInt.Evaluate(backBatch)
	require.NoError(err)
	require.Equal(int32(42), col.GetValue(0))
}

func TestBinaryExprArithmetic(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{10})

	add := NewBinaryExpr(expression.Add, NewColumn(0), NewLiteral(sql.NewInt32Scalar(5)))
	col, err := add.Evaluate(batch)
	require.NoError(err)
	require.Equal(int32(15), col.GetValue(0))
}

func TestBinaryExprIntegerDivideByZeroFails(t *testing.T) {
	batch := int32Batch(t, []int32{10})
	div := NewBinaryExpr(expression.Divide, NewColumn(0), NewLiteral(sql.NewInt32Scalar(0)))
	_, err := div.Evaluate(batch)
	require.Error(t, err)
}

func TestBinaryExprComparisonProducesBoolean(t *testing.T) {
	require := require.New(t)
	batch := int32Batch(t, []int32{1, 2, 3})

	gt := NewBinaryExpr(expression.Gt, NewColumn(0), NewLiteral(sql.NewInt32Scalar(1)))
	col, err := gt.Evaluate(batch)
	require.NoError(err)
	require.Equal(sql.Boolean, col.GetType())
	require.Equal(false, col.GetValue(0))
	require.Equal(true, col.GetValue(1))
}

func TestBinaryExprBooleanRequiresBooleanOperands(t *testing.T) {
	batch := boolBatch(t, []bool{true, false})
	and := NewBinaryExpr(expression.And, NewColumn(0), NewLiteral(sql.NewInt32Scalar(1)))
	_, err := and.Evaluate(batch)
	require.Error(t, err)
}
