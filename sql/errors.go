package sql

import "gopkg.in/src-d/go-errors.v1"

// Error kinds for the engine, grouped by the failure taxonomy of the
// design: resolution, type, evaluation, plan, and invariant errors. All
// errors bubble to the caller of Execute or CreatePhysicalPlan; nothing in
// the core swallows or retries.
var (
	// ErrColumnNotFound is returned when a named column does not exist in
	// the schema being resolved against.
	ErrColumnNotFound = errors.NewKind("no column named %q")
	// ErrAmbiguousColumn is returned when a name matches more than one
	// field in a schema.
	ErrAmbiguousColumn = errors.NewKind("ambiguous column name %q")

	// ErrTypeMismatch is returned when binary operands don't share the
	// type the operator requires.
	ErrTypeMismatch = errors.NewKind("type mismatch: %s")
	// ErrNonBooleanPredicate is returned when a Selection's predicate does
	// not resolve to Boolean.
	ErrNonBooleanPredicate = errors.NewKind("predicate must resolve to Boolean, got %s")
	// ErrInvalidCast is returned for a cast between incompatible types.
	ErrInvalidCast = errors.NewKind("cannot cast %s to %s")

	// ErrDivideByZero is returned for integer division or modulus by zero.
	ErrDivideByZero = errors.NewKind("division by zero")
	// ErrSourceRead is returned when a data source fails to materialize a
	// batch.
	ErrSourceRead = errors.NewKind("source read failed: %s")

	// ErrUnsupportedLogicalConstruct is returned when lowering encounters
	// a logical expression that has no physical counterpart.
	ErrUnsupportedLogicalConstruct = errors.NewKind("unsupported logical construct in physical lowering: %T")
	// ErrAggregateExpressionRequired is returned when an Aggregate plan's
	// aggregate_exprs contains a non-aggregate expression.
	ErrAggregateExpressionRequired = errors.NewKind("aggregate expression must be an AggregateFunction, got %T")

	// ErrSchemaColumnMismatch indicates a batch's column count doesn't
	// match its schema's field count.
	ErrSchemaColumnMismatch = errors.NewKind("schema/column count mismatch: schema has %d fields, batch has %d columns")
	// ErrBatchLengthMismatch indicates a batch's columns don't all share
	// the same row count.
	ErrBatchLengthMismatch = errors.NewKind("column length mismatch: expected %d rows, column %d has %d")
)
