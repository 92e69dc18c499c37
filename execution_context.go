// Package colex is a columnar query engine core: a typed expression
// algebra, a logical plan tree, and a physical plan tree of streaming
// batch operators, tied together by an optimizer and a planner. It has
// no SQL-text parser and no multi-session server; callers build queries
// directly against the DataFrame builder.
package colex

import (
	"github.com/coredb-io/colex/datasource"
	"github.com/coredb-io/colex/optimizer"
	"github.com/coredb-io/colex/plan"
	"github.com/coredb-io/colex/planner"
	"github.com/coredb-io/colex/sql"
)

// Config controls an ExecutionContext's behavior.
type Config struct {
	// BatchSize is the default row count per batch for sources created
	// through this context (e.g. CSV). It has no effect on Memory
	// sources, whose batches are already materialized.
	BatchSize int
	// Optimize controls whether CreatePhysicalPlan runs the optimizer
	// pipeline before lowering. Disabling it is useful for tests that
	// want to assert on the planner's output in isolation.
	Optimize bool
}

// DefaultConfig returns a configuration with a 1024-row batch size and the
// optimizer enabled.
func DefaultConfig() Config {
	return Config{BatchSize: 1024, Optimize: true}
}

// ExecutionContext creates sources and runs the optimize-then-plan
// pipeline that turns a DataFrame into an executable physical plan.
type ExecutionContext struct {
	config    Config
	optimizer optimizer.Optimizer
}

// New builds an ExecutionContext with the given configuration.
func New(config Config) *ExecutionContext {
	return &ExecutionContext{config: config, optimizer: optimizer.NewOptimizer(optimizer.DefaultRules())}
}

// CSV builds a DataFrame scanning path under schema, chunked into the
// context's configured batch size.
func (ctx *ExecutionContext) CSV(path string, schema sql.Schema) plan.DataFrame {
	source := datasource.NewCSVSource(path, schema, ctx.config.BatchSize)
	return plan.NewDataFrame(plan.NewScan(path, source, nil))
}

// Memory builds a DataFrame scanning pre-built batches under schema.
func (ctx *ExecutionContext) Memory(name string, schema sql.Schema, batches []sql.RecordBatch) plan.DataFrame {
	source := datasource.NewMemorySource(schema, batches)
	return plan.NewDataFrame(plan.NewScan(name, source, nil))
}

// CreatePhysicalPlan optimizes (unless disabled) and lowers df's logical
// plan into an executable physical plan.
func (ctx *ExecutionContext) CreatePhysicalPlan(df plan.DataFrame) (sql.PhysicalPlan, error) {
	logicalPlan := df.LogicalPlan()
	if ctx.config.Optimize {
		optimized, err := ctx.optimizer.Optimize(logicalPlan)
		if err != nil {
			return nil, err
		}
		logicalPlan = optimized
	}
	return planner.CreatePhysicalPlan(logicalPlan)
}
