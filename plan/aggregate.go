package plan

import (
	"strings"

	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// Aggregate groups input rows by group_exprs and computes aggregate_exprs
// per group. Every entry of AggregateExprs must be an
// expression.AggregateExpr; this is a planner invariant enforced at
// construction, not a runtime condition to recover from.
type Aggregate struct {
	Input          sql.LogicalPlan
	GroupExprs     []expression.Expr
	AggregateExprs []expression.Expr
}

// NewAggregate builds an Aggregate logical plan node. It panics if any
// aggregate expression is not an expression.AggregateExpr: this mirrors
// the upstream invariant that an Aggregate node is only ever constructed
// by trusted callers (the DataFrame builder), never from unvalidated
// input.
func NewAggregate(input sql.LogicalPlan, groupExprs, aggregateExprs []expression.Expr) Aggregate {
	for _, e := range aggregateExprs {
		if _, ok := e.(expression.AggregateExpr); !ok {
			panic(sql.ErrAggregateExpressionRequired.New(e))
		}
	}
	return Aggregate{Input: input, GroupExprs: groupExprs, AggregateExprs: aggregateExprs}
}

func (a Aggregate) Schema() sql.Schema {
	fields := make([]sql.Field, 0, len(a.GroupExprs)+len(a.AggregateExprs))
	for _, e := range a.GroupExprs {
		field, err := e.ToField(a.Input)
		if err != nil {
			panic(err)
		}
		fields = append(fields, field)
	}
	for _, e := range a.AggregateExprs {
		field, err := e.ToField(a.Input)
		if err != nil {
			panic(err)
		}
		fields = append(fields, field)
	}
	return sql.NewSchema(fields...)
}

func (a Aggregate) Children() []sql.LogicalPlan { return []sql.LogicalPlan{a.Input} }

func (a Aggregate) String() string {
	groups := make([]string, len(a.GroupExprs))
	for i, e := range a.GroupExprs {
		groups[i] = e.String()
	}
	aggs := make([]string, len(a.AggregateExprs))
	for i, e := range a.AggregateExprs {
		aggs[i] = e.String()
	}
	return "Aggregate: groupExpr=[" + strings.Join(groups, ",") + "], aggregateExpr=[" + strings.Join(aggs, ",") + "]"
}
