package rowexec

import (
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// AggregateExpr pairs a physical inner expression with the aggregate
// function applied to it, the physical counterpart of an
// expression.AggregateExpr resolved against the hash aggregate's input.
type AggregateExpr struct {
	Expr       sql.PhysicalExpr
	Fun        expression.AggregateFunction
	IsDistinct bool
}

// NewAggregateExpr builds an AggregateExpr.
func NewAggregateExpr(expr sql.PhysicalExpr, fun expression.AggregateFunction, isDistinct bool) AggregateExpr {
	return AggregateExpr{Expr: expr, Fun: fun, IsDistinct: isDistinct}
}
