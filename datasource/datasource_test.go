package datasource

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

func TestMemorySourceScanWithoutProjection(t *testing.T) {
	require := require.New(t)
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32), sql.NewField("c2", sql.Int32))
	batch, err := sql.NewRecordBatch(schema, []sql.ColumnArray{
		columnar.NewInt32Array([]int32{1, 2}), columnar.NewInt32Array([]int32{3, 4}),
	})
	require.NoError(err)

	source := NewMemorySource(schema, []sql.RecordBatch{batch})
	it, err := source.Scan(sql.NewEmptyContext(), nil)
	require.NoError(err)

	out, err := it.Next(sql.NewEmptyContext())
	require.NoError(err)
	require.Equal(2, out.ColumnCount())

	_, err = it.Next(sql.NewEmptyContext())
	require.Equal(io.EOF, err)
}

func TestMemorySourceScanWithProjection(t *testing.T) {
	require := require.New(t)
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32), sql.NewField("c2", sql.Int32))
	batch, err := sql.NewRecordBatch(schema, []sql.ColumnArray{
		columnar.NewInt32Array([]int32{1, 2}), columnar.NewInt32Array([]int32{3, 4}),
	})
	require.NoError(err)

	source := NewMemorySource(schema, []sql.RecordBatch{batch})
	it, err := source.Scan(sql.NewEmptyContext(), []string{"c2"})
	require.NoError(err)

	out, err := it.Next(sql.NewEmptyContext())
	require.NoError(err)
	require.Equal(1, out.ColumnCount())
	require.Equal(int32(3), out.Field(0).GetValue(0))
}

func TestMemorySourceScanRejectsUnknownProjection(t *testing.T) {
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32))
	source := NewMemorySource(schema, nil)
	_, err := source.Scan(sql.NewEmptyContext(), []string{"missing"})
	require.Error(t, err)
}

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "colex-*.csv")
	require.NoError(t, err)
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestCSVSourceScanParsesRowsAndChunksBatches(t *testing.T) {
	require := require.New(t)
	path := writeTempCSV(t, "c1,c2\n1,2\n3,4\n5,6\n")
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32), sql.NewField("c2", sql.Int32))

	source := NewCSVSource(path, schema, 2)
	it, err := source.Scan(sql.NewEmptyContext(), nil)
	require.NoError(err)

	first, err := it.Next(sql.NewEmptyContext())
	require.NoError(err)
	require.Equal(2, first.RowCount())

	second, err := it.Next(sql.NewEmptyContext())
	require.NoError(err)
	require.Equal(1, second.RowCount())

	_, err = it.Next(sql.NewEmptyContext())
	require.Equal(io.EOF, err)
	require.NoError(it.Close(sql.NewEmptyContext()))
}

func TestCSVSourceScanWithProjection(t *testing.T) {
	require := require.New(t)
	path := writeTempCSV(t, "c1,c2\n1,2\n")
	schema := sql.NewSchema(sql.NewField("c1", sql.Int32), sql.NewField("c2", sql.Int32))

	source := NewCSVSource(path, schema, 10)
	it, err := source.Scan(sql.NewEmptyContext(), []string{"c2"})
	require.NoError(err)

	batch, err := it.Next(sql.NewEmptyContext())
	require.NoError(err)
	require.Equal(1, batch.ColumnCount())
	require.Equal(int32(2), batch.Field(0).GetValue(0))
}
