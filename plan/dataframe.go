package plan

import (
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// DataFrame is an immutable fluent wrapper around a logical plan. Every
// relational method returns a new DataFrame; none mutates the receiver or
// any plan reachable from it.
type DataFrame struct {
	plan sql.LogicalPlan
}

// NewDataFrame wraps an existing logical plan.
func NewDataFrame(plan sql.LogicalPlan) DataFrame { return DataFrame{plan: plan} }

// LogicalPlan returns the wrapped logical plan.
func (df DataFrame) LogicalPlan() sql.LogicalPlan { return df.plan }

// Schema returns the wrapped plan's output schema.
func (df DataFrame) Schema() sql.Schema { return df.plan.Schema() }

// Project returns a new DataFrame that resolves exprs against df.
func (df DataFrame) Project(exprs ...expression.Expr) DataFrame {
	return NewDataFrame(NewProjection(df.plan, exprs))
}

// Filter returns a new DataFrame that applies predicate against df.
func (df DataFrame) Filter(predicate expression.Expr) DataFrame {
	return NewDataFrame(NewSelection(df.plan, predicate))
}

// Aggregate returns a new DataFrame that groups df by groupExprs and
// computes aggregateExprs per group.
func (df DataFrame) Aggregate(groupExprs, aggregateExprs []expression.Expr) DataFrame {
	return NewDataFrame(NewAggregate(df.plan, groupExprs, aggregateExprs))
}
