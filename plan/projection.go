package plan

import (
	"strings"

	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// Projection resolves a list of expressions against its input, producing
// one output column per expression.
type Projection struct {
	Input sql.LogicalPlan
	Exprs []expression.Expr
}

// NewProjection builds a Projection logical plan node.
func NewProjection(input sql.LogicalPlan, exprs []expression.Expr) Projection {
	return Projection{Input: input, Exprs: exprs}
}

func (p Projection) Schema() sql.Schema {
	fields := make([]sql.Field, len(p.Exprs))
	for i, e := range p.Exprs {
		field, err := e.ToField(p.Input)
		if err != nil {
			panic(err)
		}
		fields[i] = field
	}
	return sql.NewSchema(fields...)
}

func (p Projection) Children() []sql.LogicalPlan { return []sql.LogicalPlan{p.Input} }

func (p Projection) String() string {
	parts := make([]string, len(p.Exprs))
	for i, e := range p.Exprs {
		parts[i] = e.String()
	}
	return "Projection: " + strings.Join(parts, ",")
}
