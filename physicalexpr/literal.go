package physicalexpr

import (
	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

// Literal evaluates to a constant-valued column of length batch.RowCount().
type Literal struct {
	Value sql.ScalarValue
}

// NewLiteral builds a Literal physical expression.
func NewLiteral(value sql.ScalarValue) Literal { return Literal{Value: value} }

func (l Literal) String() string { return l.Value.String() }

func (l Literal) Evaluate(batch sql.RecordBatch) (sql.ColumnArray, error) {
	return columnar.NewConstantArray(l.Value.Value(), l.Value.DataType(), batch.RowCount()), nil
}
