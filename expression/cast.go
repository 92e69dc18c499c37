package expression

import "github.com/coredb-io/colex/sql"

// Cast casts an expression to a given DataType at evaluation time.
type Cast struct {
	Expr     Expr
	DataType sql.DataType
}

// NewCast builds a Cast expression.
func NewCast(expr Expr, dataType sql.DataType) Cast {
	return Cast{Expr: expr, DataType: dataType}
}

func (c Cast) String() string { return "CAST(" + c.Expr.String() + " AS " + c.DataType.String() + ")" }

func (c Cast) ToField(input sql.LogicalPlan) (sql.Field, error) {
	field, err := c.Expr.ToField(input)
	if err != nil {
		return sql.Field{}, err
	}
	return sql.NewField(field.Name, c.DataType), nil
}

func (c Cast) Hash() uint64 {
	return hashCombine(hashString(fnvOffset, "Cast:"+c.DataType.String()), c.Expr.Hash())
}
func (c Cast) Less(o Expr) bool { return lessByHash(c, o) }
