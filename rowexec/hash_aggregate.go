package rowexec

import (
	"io"
	"strconv"
	"strings"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

// HashAggregateExec is the one stateful physical operator: it groups
// input rows by GroupExprs and computes AggregateExprs per group, emitting
// exactly one output batch after the input is fully consumed.
type HashAggregateExec struct {
	Input          sql.PhysicalPlan
	Out            sql.Schema
	GroupExprs     []sql.PhysicalExpr
	AggregateExprs []AggregateExpr
}

// NewHashAggregateExec builds a HashAggregateExec physical plan node.
func NewHashAggregateExec(input sql.PhysicalPlan, schema sql.Schema, groupExprs []sql.PhysicalExpr, aggregateExprs []AggregateExpr) HashAggregateExec {
	return HashAggregateExec{Input: input, Out: schema, GroupExprs: groupExprs, AggregateExprs: aggregateExprs}
}

func (h HashAggregateExec) Schema() sql.Schema { return h.Out }

func (h HashAggregateExec) Children() []sql.PhysicalPlan { return []sql.PhysicalPlan{h.Input} }

func (h HashAggregateExec) String() string {
	groups := make([]string, len(h.GroupExprs))
	for i, e := range h.GroupExprs {
		groups[i] = e.String()
	}
	aggs := make([]string, len(h.AggregateExprs))
	for i, e := range h.AggregateExprs {
		aggs[i] = e.Expr.String()
	}
	return "HashAggregateExec: groupExpr=[" + strings.Join(groups, ",") + "], aggregateExpr=[" + strings.Join(aggs, ",") + "]"
}

func (h HashAggregateExec) Execute(ctx *sql.Context) (sql.BatchIter, error) {
	input, err := h.Input.Execute(ctx)
	if err != nil {
		return nil, err
	}

	keyOrder := make([]string, 0)
	keyValues := make(map[string][]interface{})
	accumulators := make(map[string][]accumulator)

	for {
		batch, err := input.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = input.Close(ctx)
			return nil, err
		}

		groupCols := make([]sql.ColumnArray, len(h.GroupExprs))
		for i, e := range h.GroupExprs {
			col, err := e.Evaluate(batch)
			if err != nil {
				_ = input.Close(ctx)
				return nil, err
			}
			groupCols[i] = col
		}
		aggCols := make([]sql.ColumnArray, len(h.AggregateExprs))
		for i, a := range h.AggregateExprs {
			col, err := a.Expr.Evaluate(batch)
			if err != nil {
				_ = input.Close(ctx)
				return nil, err
			}
			aggCols[i] = col
		}

		for r := 0; r < batch.RowCount(); r++ {
			rowValues := make([]interface{}, len(groupCols))
			keyParts := make([]string, len(groupCols))
			for i, col := range groupCols {
				rowValues[i] = col.GetValue(r)
				keyParts[i] = formatKeyPart(rowValues[i], col.GetType())
			}
			key := strings.Join(keyParts, "\x1f")

			accs, ok := accumulators[key]
			if !ok {
				accs = make([]accumulator, len(h.AggregateExprs))
				for i, a := range h.AggregateExprs {
					accs[i] = newAccumulator(a.Fun, aggCols[i].GetType())
				}
				accumulators[key] = accs
				keyValues[key] = rowValues
				keyOrder = append(keyOrder, key)
			}
			for i, acc := range accs {
				acc.accumulate(aggCols[i].GetValue(r))
			}
		}
	}
	if err := input.Close(ctx); err != nil {
		return nil, err
	}

	groupValues := make([][]interface{}, len(h.GroupExprs))
	for i := range groupValues {
		groupValues[i] = make([]interface{}, len(keyOrder))
	}
	aggValues := make([][]interface{}, len(h.AggregateExprs))
	for i := range aggValues {
		aggValues[i] = make([]interface{}, len(keyOrder))
	}
	for row, key := range keyOrder {
		for i, v := range keyValues[key] {
			groupValues[i][row] = v
		}
		for i, acc := range accumulators[key] {
			aggValues[i][row] = acc.finalValue()
		}
	}

	columns := make([]sql.ColumnArray, 0, len(h.GroupExprs)+len(h.AggregateExprs))
	for i := range h.GroupExprs {
		arr, err := columnar.NewArray(h.Out.Fields[i].DataType, groupValues[i])
		if err != nil {
			return nil, err
		}
		columns = append(columns, arr)
	}
	for i := range h.AggregateExprs {
		typ := h.Out.Fields[len(h.GroupExprs)+i].DataType
		arr, err := columnar.NewArray(typ, aggValues[i])
		if err != nil {
			return nil, err
		}
		columns = append(columns, arr)
	}

	batch, err := sql.NewRecordBatch(h.Out, columns)
	if err != nil {
		return nil, err
	}
	return &singleBatchIter{batch: batch}, nil
}

// formatKeyPart renders a group-key component canonically: type-tagged so
// values of different DataTypes never collide, and using Go's 'b' float
// format so every NaN payload maps to the same key, matching the
// ScalarValue total-order hash contract.
func formatKeyPart(v interface{}, typ sql.DataType) string {
	switch typ {
	case sql.Int32:
		return "i32:" + strconv.FormatInt(int64(v.(int32)), 10)
	case sql.Int64:
		return "i64:" + strconv.FormatInt(v.(int64), 10)
	case sql.Float32:
		return "f32:" + strconv.FormatFloat(float64(v.(float32)), 'b', -1, 32)
	case sql.Float64:
		return "f64:" + strconv.FormatFloat(v.(float64), 'b', -1, 64)
	case sql.Boolean:
		return "bool:" + strconv.FormatBool(v.(bool))
	default:
		return "utf8:" + v.(string)
	}
}

// singleBatchIter yields exactly one batch, then io.EOF.
type singleBatchIter struct {
	batch sql.RecordBatch
	done  bool
}

func (it *singleBatchIter) Next(ctx *sql.Context) (sql.RecordBatch, error) {
	if it.done {
		return sql.RecordBatch{}, io.EOF
	}
	it.done = true
	return it.batch, nil
}

func (it *singleBatchIter) Close(ctx *sql.Context) error { return nil }
