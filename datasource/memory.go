package datasource

import (
	"io"

	"github.com/coredb-io/colex/sql"
)

// MemorySource is a DataSource backed by record batches already resident
// in memory, used chiefly by tests and by callers constructing a
// DataFrame directly from computed data rather than a file.
type MemorySource struct {
	schema sql.Schema
	data   []sql.RecordBatch
}

// NewMemorySource builds a MemorySource over schema and data. Every batch
// in data is assumed to already conform to schema.
func NewMemorySource(schema sql.Schema, data []sql.RecordBatch) *MemorySource {
	return &MemorySource{schema: schema, data: data}
}

func (m *MemorySource) Schema() sql.Schema { return m.schema }

func (m *MemorySource) Scan(ctx *sql.Context, projection []string) (sql.BatchIter, error) {
	indices, err := resolveProjection(m.schema, projection)
	if err != nil {
		return nil, err
	}
	outSchema := m.schema
	if len(projection) > 0 {
		outSchema, err = m.schema.Select(projection)
		if err != nil {
			return nil, err
		}
	}
	return &memoryIter{schema: outSchema, indices: indices, data: m.data}, nil
}

// resolveProjection maps projected column names to their index in schema,
// rejecting any name that schema doesn't have exactly one of (see
// SPEC_FULL.md §7: unknown projection names are uniformly a
// ResolutionError, never silently dropped).
func resolveProjection(schema sql.Schema, projection []string) ([]int, error) {
	if len(projection) == 0 {
		indices := make([]int, len(schema.Fields))
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}
	indices := make([]int, len(projection))
	for i, name := range projection {
		idx, err := schema.IndexOf(name)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

type memoryIter struct {
	schema  sql.Schema
	indices []int
	data    []sql.RecordBatch
	pos     int
}

func (it *memoryIter) Next(ctx *sql.Context) (sql.RecordBatch, error) {
	if it.pos >= len(it.data) {
		return sql.RecordBatch{}, io.EOF
	}
	src := it.data[it.pos]
	it.pos++
	columns := make([]sql.ColumnArray, len(it.indices))
	for i, idx := range it.indices {
		columns[i] = src.Field(idx)
	}
	return sql.NewRecordBatch(it.schema, columns)
}

func (it *memoryIter) Close(ctx *sql.Context) error { return nil }
