package expression

import "github.com/coredb-io/colex/sql"

// Not is a logical negation of a boolean-typed expression.
type Not struct {
	Expr Expr
}

// NewNot builds a Not expression.
func NewNot(expr Expr) Not { return Not{Expr: expr} }

func (n Not) String() string { return "NOT " + n.Expr.String() }

func (n Not) ToField(input sql.LogicalPlan) (sql.Field, error) {
	return sql.NewField("not", sql.Boolean), nil
}

func (n Not) Hash() uint64     { return hashCombine(hashString(fnvOffset, "Not"), n.Expr.Hash()) }
func (n Not) Less(o Expr) bool { return lessByHash(n, o) }
