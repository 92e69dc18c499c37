package expression

import (
	"strconv"

	"github.com/coredb-io/colex/sql"
)

// Column is a named reference to a field in the input schema.
type Column struct {
	Name string
}

// Col builds a Column expression.
func Col(name string) Column { return Column{Name: name} }

func (c Column) String() string { return "#" + c.Name }

func (c Column) ToField(input sql.LogicalPlan) (sql.Field, error) {
	idx, err := input.Schema().IndexOf(c.Name)
	if err != nil {
		return sql.Field{}, err
	}
	return input.Schema().Fields[idx], nil
}

func (c Column) Hash() uint64      { return hashString(fnvOffset, "Column:"+c.Name) }
func (c Column) Less(o Expr) bool  { return lessByHash(c, o) }

// ColumnIndex is an indexed reference to a field in the input schema.
// Out-of-range indices are a planner bug, not a runtime error: this
// deliberately panics via ordinary slice indexing rather than returning
// an error, per spec.
type ColumnIndex struct {
	Index int
}

// ColIdx builds a ColumnIndex expression.
func ColIdx(index int) ColumnIndex { return ColumnIndex{Index: index} }

func (c ColumnIndex) String() string { return "#" + strconv.Itoa(c.Index) }

func (c ColumnIndex) ToField(input sql.LogicalPlan) (sql.Field, error) {
	return input.Schema().Fields[c.Index], nil
}

func (c ColumnIndex) Hash() uint64 {
	return hashString(fnvOffset, "ColumnIndex:"+strconv.Itoa(c.Index))
}
func (c ColumnIndex) Less(o Expr) bool { return lessByHash(c, o) }
