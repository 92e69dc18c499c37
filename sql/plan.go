package sql

import "fmt"

// LogicalPlan is the closed logical relational algebra: a tree of nodes
// whose schema is a pure function of its children and its own
// expressions. Concrete variants (Scan, Projection, Selection, Aggregate)
// live in the plan package.
type LogicalPlan interface {
	fmt.Stringer
	// Schema returns this node's output schema.
	Schema() Schema
	// Children returns this node's logical plan children, in order.
	Children() []LogicalPlan
}

// PhysicalPlan is the closed physical operator algebra: a tree of
// streaming batch operators. Concrete variants (ScanExec, ProjectionExec,
// SelectionExec, HashAggregateExec) live in the rowexec package.
type PhysicalPlan interface {
	fmt.Stringer
	// Schema returns this operator's output schema.
	Schema() Schema
	// Execute returns a lazy batch sequence bound to this operator's
	// lifetime; the caller must fully consume or Close it.
	Execute(ctx *Context) (BatchIter, error)
	// Children returns this operator's physical plan children, in order.
	Children() []PhysicalPlan
}

// BatchIter is a lazy, pull-based sequence of record batches. Next returns
// io.EOF once the sequence is exhausted; any other error aborts the
// sequence without emitting a partial batch.
type BatchIter interface {
	Next(ctx *Context) (RecordBatch, error)
	Close(ctx *Context) error
}

// DataSource is the external collaborator that yields a schema and a lazy
// batch stream for a given column projection. An empty projection yields
// batches carrying every column of the source schema. Unknown names in
// the projection are a ResolutionError (see SPEC_FULL.md §7 for the
// unified policy).
type DataSource interface {
	Schema() Schema
	Scan(ctx *Context, projection []string) (BatchIter, error)
}
