package plan

import (
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// Selection (a.k.a. filter) passes through input rows whose predicate
// evaluates true. The predicate must resolve to Boolean; this is checked
// by SelectionExec when it evaluates the predicate over a batch, not here
// and not at lowering time.
type Selection struct {
	Input     sql.LogicalPlan
	Predicate expression.Expr
}

// NewSelection builds a Selection logical plan node.
func NewSelection(input sql.LogicalPlan, predicate expression.Expr) Selection {
	return Selection{Input: input, Predicate: predicate}
}

func (s Selection) Schema() sql.Schema { return s.Input.Schema() }

func (s Selection) Children() []sql.LogicalPlan { return []sql.LogicalPlan{s.Input} }

func (s Selection) String() string { return "Selection: " + s.Predicate.String() }
