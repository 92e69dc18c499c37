package sql

import "fmt"

// LogicalExpr is the closed logical expression algebra: it carries only
// the metadata needed during planning (the Field it resolves to against a
// given input plan) and a canonical String form. Concrete variants
// (Column, Literal, BinaryExpr, ...) live in the expression package;
// this interface lives here, alongside LogicalPlan, so that package and
// the plan package can each depend on sql without depending on each other.
type LogicalExpr interface {
	fmt.Stringer
	// ToField returns the Field this expression resolves to against input.
	// It fails if the expression references a column that input's schema
	// doesn't have, or has exactly more than one of.
	ToField(input LogicalPlan) (Field, error)
}

// PhysicalExpr is the closed physical expression algebra: it evaluates to
// a column over a batch. Concrete variants live in the physicalexpr
// package.
type PhysicalExpr interface {
	fmt.Stringer
	// Evaluate returns a column whose size equals batch.RowCount().
	Evaluate(batch RecordBatch) (ColumnArray, error)
}
