package optimizer

import (
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/plan"
	"github.com/coredb-io/colex/sql"
)

// ProjectionPushdownRule computes, for each Scan beneath a chain of
// Projection/Selection/Aggregate nodes, the set of columns actually
// referenced above it, and rewrites the scan's projection list to that
// set if the scan does not already carry an explicit one. It preserves
// semantic equivalence: it never removes a column a parent still needs,
// and it is a no-op on a Scan that already has a projection.
type ProjectionPushdownRule struct{}

func (ProjectionPushdownRule) Optimize(logicalPlan sql.LogicalPlan) (sql.LogicalPlan, error) {
	rewritten, _ := pushdown(logicalPlan, nil)
	return rewritten, nil
}

// pushdown rewrites node, threading down the input columns its ancestors
// need (a Projection or Aggregate defines new output columns, so below it
// only its own references are threaded), and returns the rewritten node
// plus the columns node itself references.
func pushdown(node sql.LogicalPlan, used []string) (sql.LogicalPlan, []string) {
	switch p := node.(type) {
	case plan.Scan:
		if len(p.Projection) > 0 {
			return p, p.Projection
		}
		return plan.NewScan(p.Path, p.Source, dedupe(used)), used

	case plan.Projection:
		ownUsed := columnsUsedByExprs(p.Exprs)
		newInput, _ := pushdown(p.Input, ownUsed)
		return plan.NewProjection(newInput, p.Exprs), ownUsed

	case plan.Selection:
		ownUsed := columnsUsedByExpr(p.Predicate)
		newInput, _ := pushdown(p.Input, append(append([]string{}, used...), ownUsed...))
		return plan.NewSelection(newInput, p.Predicate), ownUsed

	case plan.Aggregate:
		ownUsed := columnsUsedByExprs(p.GroupExprs)
		for _, e := range p.AggregateExprs {
			if agg, ok := e.(expression.AggregateExpr); ok {
				ownUsed = append(ownUsed, columnsUsedByExpr(agg.Expr)...)
			}
		}
		newInput, _ := pushdown(p.Input, ownUsed)
		return plan.NewAggregate(newInput, p.GroupExprs, p.AggregateExprs), ownUsed

	default:
		return node, used
	}
}

func columnsUsedByExprs(exprs []expression.Expr) []string {
	var out []string
	for _, e := range exprs {
		out = append(out, columnsUsedByExpr(e)...)
	}
	return out
}

// columnsUsedByExpr walks expr's tree collecting every referenced Column
// name. ColumnIndex references are skipped: push-down operates on
// pre-planning logical plans, where columns are still named.
func columnsUsedByExpr(e expression.Expr) []string {
	switch v := e.(type) {
	case expression.Column:
		return []string{v.Name}
	case expression.Not:
		return columnsUsedByExpr(v.Expr)
	case expression.Cast:
		return columnsUsedByExpr(v.Expr)
	case expression.Alias:
		return columnsUsedByExpr(v.Expr)
	case expression.BinaryExpr:
		return append(columnsUsedByExpr(v.Left), columnsUsedByExpr(v.Right)...)
	case expression.ScalarFunction:
		return columnsUsedByExprs(v.Args)
	case expression.AggregateExpr:
		return columnsUsedByExpr(v.Expr)
	default:
		return nil
	}
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
