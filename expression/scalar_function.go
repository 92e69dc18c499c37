package expression

import "github.com/coredb-io/colex/sql"

// ScalarFunction is a named function call with a declared return type.
// It is a valid logical expression but is not lowerable by the current
// planner core (see package planner) and must be rejected at lowering.
type ScalarFunction struct {
	Name       string
	Args       []Expr
	ReturnType sql.DataType
}

// NewScalarFunction builds a ScalarFunction expression.
func NewScalarFunction(name string, args []Expr, returnType sql.DataType) ScalarFunction {
	return ScalarFunction{Name: name, Args: args, ReturnType: returnType}
}

func (f ScalarFunction) String() string {
	s := f.Name + "("
	for i, a := range f.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

func (f ScalarFunction) ToField(input sql.LogicalPlan) (sql.Field, error) {
	return sql.NewField(f.Name, f.ReturnType), nil
}

func (f ScalarFunction) Hash() uint64 {
	h := hashString(fnvOffset, "ScalarFunction:"+f.Name+":"+f.ReturnType.String())
	for _, a := range f.Args {
		h = hashCombine(h, a.Hash())
	}
	return h
}
func (f ScalarFunction) Less(o Expr) bool { return lessByHash(f, o) }
