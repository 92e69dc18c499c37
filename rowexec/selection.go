package rowexec

import (
	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

// SelectionExec (a.k.a. filter) evaluates Predicate against each input
// batch and emits a new batch retaining only the rows where it is true,
// preserving row order. Empty filtered batches are emitted; it is the
// caller's responsibility to skip them if desired.
type SelectionExec struct {
	Input     sql.PhysicalPlan
	Predicate sql.PhysicalExpr
}

// NewSelectionExec builds a SelectionExec physical plan node.
func NewSelectionExec(input sql.PhysicalPlan, predicate sql.PhysicalExpr) SelectionExec {
	return SelectionExec{Input: input, Predicate: predicate}
}

func (s SelectionExec) Schema() sql.Schema { return s.Input.Schema() }

func (s SelectionExec) Execute(ctx *sql.Context) (sql.BatchIter, error) {
	input, err := s.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &selectionIter{input: input, predicate: s.Predicate}, nil
}

func (s SelectionExec) Children() []sql.PhysicalPlan { return []sql.PhysicalPlan{s.Input} }

func (s SelectionExec) String() string { return "SelectionExec: " + s.Predicate.String() }

type selectionIter struct {
	input     sql.BatchIter
	predicate sql.PhysicalExpr
}

func (it *selectionIter) Next(ctx *sql.Context) (sql.RecordBatch, error) {
	batch, err := it.input.Next(ctx)
	if err != nil {
		return sql.RecordBatch{}, err
	}
	predCol, err := it.predicate.Evaluate(batch)
	if err != nil {
		return sql.RecordBatch{}, err
	}
	if predCol.GetType() != sql.Boolean {
		return sql.RecordBatch{}, sql.ErrNonBooleanPredicate.New(predCol.GetType())
	}
	mask := make([]bool, predCol.Size())
	for i := range mask {
		mask[i] = predCol.GetValue(i).(bool)
	}
	columns := make([]sql.ColumnArray, batch.ColumnCount())
	for i := 0; i < batch.ColumnCount(); i++ {
		columns[i] = columnar.Filter(batch.Field(i), mask)
	}
	return sql.NewRecordBatch(batch.Schema, columns)
}

func (it *selectionIter) Close(ctx *sql.Context) error { return it.input.Close(ctx) }
