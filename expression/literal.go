package expression

import "github.com/coredb-io/colex/sql"

// Literal is a constant scalar value.
type Literal struct {
	Value sql.ScalarValue
}

// LitInt32 builds an Int32 literal.
func LitInt32(v int32) Literal { return Literal{Value: sql.NewInt32Scalar(v)} }

// LitInt64 builds an Int64 literal.
func LitInt64(v int64) Literal { return Literal{Value: sql.NewInt64Scalar(v)} }

// LitFloat32 builds a Float32 literal.
func LitFloat32(v float32) Literal { return Literal{Value: sql.NewFloat32Scalar(v)} }

// LitFloat64 builds a Float64 literal.
func LitFloat64(v float64) Literal { return Literal{Value: sql.NewFloat64Scalar(v)} }

// LitString builds a Utf8 literal.
func LitString(v string) Literal { return Literal{Value: sql.NewUtf8Scalar(v)} }

func (l Literal) String() string { return l.Value.String() }

func (l Literal) ToField(input sql.LogicalPlan) (sql.Field, error) {
	return sql.NewField(l.Value.String(), l.Value.DataType()), nil
}

func (l Literal) Hash() uint64 {
	return hashString(fnvOffset, "Literal:"+l.Value.DataType().String()+":"+l.Value.String())
}
func (l Literal) Less(o Expr) bool  { return lessByHash(l, o) }
