package expression

import "github.com/coredb-io/colex/sql"

// AggregateExpr applies an aggregate function to an inner expression,
// optionally restricted to distinct values of that expression.
//
// ToField deliberately reports (fun_name, expr.DataType) for every
// function, including Avg and Count whose runtime result type differs
// from the input expression's type: this is the literal behavior
// carried over unchanged, not a bug fixed along the way.
type AggregateExpr struct {
	Fun        AggregateFunction
	Expr       Expr
	IsDistinct bool
}

func newAggregateExpr(fun AggregateFunction, expr Expr, distinct bool) AggregateExpr {
	return AggregateExpr{Fun: fun, Expr: expr, IsDistinct: distinct}
}

// NewSum builds a Sum aggregate expression.
func NewSum(expr Expr) AggregateExpr { return newAggregateExpr(Sum, expr, false) }

// NewMin builds a Min aggregate expression.
func NewMin(expr Expr) AggregateExpr { return newAggregateExpr(Min, expr, false) }

// NewMax builds a Max aggregate expression.
func NewMax(expr Expr) AggregateExpr { return newAggregateExpr(Max, expr, false) }

// NewAvg builds an Avg aggregate expression.
func NewAvg(expr Expr) AggregateExpr { return newAggregateExpr(Avg, expr, false) }

// NewCount builds a Count aggregate expression.
func NewCount(expr Expr) AggregateExpr { return newAggregateExpr(Count, expr, false) }

// NewCountDistinct builds a distinct Count aggregate expression.
func NewCountDistinct(expr Expr) AggregateExpr { return newAggregateExpr(CountDistinct, expr, true) }

func (a AggregateExpr) String() string {
	if a.IsDistinct {
		return a.Fun.String() + "(DISTINCT " + a.Expr.String() + ")"
	}
	return a.Fun.String() + "(" + a.Expr.String() + ")"
}

func (a AggregateExpr) ToField(input sql.LogicalPlan) (sql.Field, error) {
	field, err := a.Expr.ToField(input)
	if err != nil {
		return sql.Field{}, err
	}
	return sql.NewField(a.Fun.name(), field.DataType), nil
}

func (a AggregateExpr) Hash() uint64 {
	distinctTag := uint64(0)
	if a.IsDistinct {
		distinctTag = 1
	}
	return hashCombine(hashString(fnvOffset, "AggregateExpr"), uint64(a.Fun), distinctTag, a.Expr.Hash())
}
func (a AggregateExpr) Less(o Expr) bool { return lessByHash(a, o) }
