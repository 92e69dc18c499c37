package rowexec

import (
	"strings"

	"github.com/coredb-io/colex/sql"
)

// ProjectionExec pulls batches from Input and, for each, emits a new batch
// whose columns are Exprs[i].Evaluate(batch), tagged with Schema. Row
// count is preserved.
type ProjectionExec struct {
	Input sql.PhysicalPlan
	Out   sql.Schema
	Exprs []sql.PhysicalExpr
}

// NewProjectionExec builds a ProjectionExec physical plan node.
func NewProjectionExec(input sql.PhysicalPlan, schema sql.Schema, exprs []sql.PhysicalExpr) ProjectionExec {
	return ProjectionExec{Input: input, Out: schema, Exprs: exprs}
}

func (p ProjectionExec) Schema() sql.Schema { return p.Out }

func (p ProjectionExec) Execute(ctx *sql.Context) (sql.BatchIter, error) {
	input, err := p.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return &projectionIter{input: input, schema: p.Out, exprs: p.Exprs}, nil
}

func (p ProjectionExec) Children() []sql.PhysicalPlan { return []sql.PhysicalPlan{p.Input} }

func (p ProjectionExec) String() string {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		parts[i] = e.String()
	}
	return "ProjectionExec: " + strings.Join(parts, ",")
}

type projectionIter struct {
	input  sql.BatchIter
	schema sql.Schema
	exprs  []sql.PhysicalExpr
}

func (it *projectionIter) Next(ctx *sql.Context) (sql.RecordBatch, error) {
	batch, err := it.input.Next(ctx)
	if err != nil {
		return sql.RecordBatch{}, err
	}
	columns := make([]sql.ColumnArray, len(it.exprs))
	for i, e := range it.exprs {
		col, err := e.Evaluate(batch)
		if err != nil {
			return sql.RecordBatch{}, err
		}
		columns[i] = col
	}
	return sql.NewRecordBatch(it.schema, columns)
}

func (it *projectionIter) Close(ctx *sql.Context) error { return it.input.Close(ctx) }
