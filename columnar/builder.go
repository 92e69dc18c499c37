package columnar

import "github.com/coredb-io/colex/sql"

// ConstantArray is a column whose every value is the same scalar,
// materialized at a given length without allocating a full slice — used by
// physical Literal evaluation, where the "array" is conceptually a
// broadcast of one value across the batch's row count.
type ConstantArray struct {
	value  interface{}
	typ    sql.DataType
	length int
}

func NewConstantArray(value interface{}, typ sql.DataType, length int) *ConstantArray {
	return &ConstantArray{value: value, typ: typ, length: length}
}

func (a *ConstantArray) Size() int                  { return a.length }
func (a *ConstantArray) GetValue(i int) interface{} { return a.value }
func (a *ConstantArray) GetType() sql.DataType      { return a.typ }

// NewArray builds a fixed-width array of the given DataType from dynamically
// typed values, as produced by casts, binary expression evaluation, and
// aggregate accumulation.
func NewArray(typ sql.DataType, values []interface{}) (sql.ColumnArray, error) {
	switch typ {
	case sql.Int32:
		out := make([]int32, len(values))
		for i, v := range values {
			out[i] = v.(int32)
		}
		return NewInt32Array(out), nil
	case sql.Int64:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.(int64)
		}
		return NewInt64Array(out), nil
	case sql.Float32:
		out := make([]float32, len(values))
		for i, v := range values {
			out[i] = v.(float32)
		}
		return NewFloat32Array(out), nil
	case sql.Float64:
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v.(float64)
		}
		return NewFloat64Array(out), nil
	case sql.Boolean:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.(bool)
		}
		return NewBooleanArray(out), nil
	default:
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.(string)
		}
		return NewUtf8Array(out), nil
	}
}

// Filter returns a new column retaining only the rows where mask is true,
// preserving row order. Used by SelectionExec, which must materialize a
// filtered column rather than passing the source through unchanged.
func Filter(col sql.ColumnArray, mask []bool) sql.ColumnArray {
	values := make([]interface{}, 0, len(mask))
	for i, keep := range mask {
		if keep {
			values = append(values, col.GetValue(i))
		}
	}
	arr, _ := NewArray(col.GetType(), values)
	return arr
}
