package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeArray struct {
	values []interface{}
	typ    DataType
}

func (a fakeArray) Size() int                    { return len(a.values) }
func (a fakeArray) GetValue(i int) interface{}   { return a.values[i] }
func (a fakeArray) GetType() DataType            { return a.typ }

func TestNewRecordBatchColumnCountMismatch(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("a", Int32), NewField("b", Int32))
	_, err := NewRecordBatch(schema, []ColumnArray{fakeArray{values: []interface{}{int32(1)}, typ: Int32}})
	require.Error(err)
	require.True(ErrSchemaColumnMismatch.Is(err))
}

func TestNewRecordBatchLengthMismatch(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("a", Int32), NewField("b", Int32))
	cols := []ColumnArray{
		fakeArray{values: []interface{}{int32(1), int32(2)}, typ: Int32},
		fakeArray{values: []interface{}{int32(1)}, typ: Int32},
	}
	_, err := NewRecordBatch(schema, cols)
	require.Error(err)
	require.True(ErrBatchLengthMismatch.Is(err))
}

func TestNewRecordBatchEmpty(t *testing.T) {
	require := require.New(t)

	batch, err := NewRecordBatch(NewSchema(), nil)
	require.NoError(err)
	require.Equal(0, batch.RowCount())
	require.Equal(0, batch.ColumnCount())
}

func TestRecordBatchAccessors(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("id", Int32))
	col := fakeArray{values: []interface{}{int32(1), int32(2), int32(3)}, typ: Int32}
	batch, err := NewRecordBatch(schema, []ColumnArray{col})
	require.NoError(err)

	require.Equal(3, batch.RowCount())
	require.Equal(1, batch.ColumnCount())
	require.Equal(int32(2), batch.Field(0).GetValue(1))
}
