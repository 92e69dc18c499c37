package physicalexpr

import (
	"strconv"

	"github.com/coredb-io/colex/sql"
)

// Column evaluates to the batch's i-th column, without copying.
type Column struct {
	Index int
}

// NewColumn builds a Column physical expression.
func NewColumn(index int) Column { return Column{Index: index} }

func (c Column) String() string { return "#" + strconv.Itoa(c.Index) }

func (c Column) Evaluate(batch sql.RecordBatch) (sql.ColumnArray, error) {
	return batch.Field(c.Index), nil
}
