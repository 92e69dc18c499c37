package sql

// RecordBatch is an ordered tuple of equally sized columnar arrays tagged
// with a schema. Batches are immutable after construction; columns may be
// shared by reference across multiple batches.
type RecordBatch struct {
	Schema  Schema
	Columns []ColumnArray
}

// NewRecordBatch validates and constructs a RecordBatch. It enforces the
// two invariants that cross the datasource boundary, where input isn't
// fully trusted: the column count matches the schema's field count, and
// every column reports the same row count.
func NewRecordBatch(schema Schema, columns []ColumnArray) (RecordBatch, error) {
	if len(columns) != len(schema.Fields) {
		return RecordBatch{}, ErrSchemaColumnMismatch.New(len(schema.Fields), len(columns))
	}
	if len(columns) > 0 {
		rowCount := columns[0].Size()
		for i, col := range columns {
			if col.Size() != rowCount {
				return RecordBatch{}, ErrBatchLengthMismatch.New(rowCount, i, col.Size())
			}
		}
	}
	return RecordBatch{Schema: schema, Columns: columns}, nil
}

// RowCount is the number of rows in every column of the batch, or 0 for a
// batch with no columns.
func (b RecordBatch) RowCount() int {
	if len(b.Columns) == 0 {
		return 0
	}
	return b.Columns[0].Size()
}

// ColumnCount is the number of columns in the batch.
func (b RecordBatch) ColumnCount() int {
	return len(b.Columns)
}

// Field returns the column at position i.
func (b RecordBatch) Field(i int) ColumnArray {
	return b.Columns[i]
}
