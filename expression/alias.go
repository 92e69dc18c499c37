package expression

import "github.com/coredb-io/colex/sql"

// Alias renames the result of an expression, e.g. "a + 1 AS total".
type Alias struct {
	Expr Expr
	Name string
}

// NewAlias builds an Alias expression.
func NewAlias(expr Expr, name string) Alias { return Alias{Expr: expr, Name: name} }

func (a Alias) String() string { return a.Expr.String() + " AS " + a.Name }

func (a Alias) ToField(input sql.LogicalPlan) (sql.Field, error) {
	field, err := a.Expr.ToField(input)
	if err != nil {
		return sql.Field{}, err
	}
	return sql.NewField(a.Name, field.DataType), nil
}

func (a Alias) Hash() uint64 {
	return hashCombine(hashString(fnvOffset, "Alias:"+a.Name), a.Expr.Hash())
}
func (a Alias) Less(o Expr) bool { return lessByHash(a, o) }
