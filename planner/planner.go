// Package planner lowers a logical plan tree into a physical plan tree,
// resolving name-based column references to index-based ones along the
// way. It is grounded directly on the original Rust QueryPlanner: one
// recursive function over the closed logical plan variants, and one
// recursive function over the closed logical expression variants.
package planner

import (
	"github.com/sirupsen/logrus"

	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/physicalexpr"
	"github.com/coredb-io/colex/plan"
	"github.com/coredb-io/colex/rowexec"
	"github.com/coredb-io/colex/sql"
)

// log is the planner's lowering-step logger, matching the optimizer's use
// of the standard logrus logger rather than a dependency-injected one.
var log = logrus.StandardLogger()

// CreatePhysicalPlan lowers logicalPlan into its physical counterpart.
func CreatePhysicalPlan(logicalPlan sql.LogicalPlan) (sql.PhysicalPlan, error) {
	switch p := logicalPlan.(type) {
	case plan.Scan:
		log.WithField("node", "Scan").Debug("lowering logical plan node")
		return rowexec.NewScanExec(p.Source, p.Projection), nil

	case plan.Projection:
		log.WithField("node", "Projection").Debug("lowering logical plan node")
		input, err := CreatePhysicalPlan(p.Input)
		if err != nil {
			return nil, err
		}
		exprs := make([]sql.PhysicalExpr, len(p.Exprs))
		for i, e := range p.Exprs {
			pe, err := createPhysicalExpr(e, p.Input)
			if err != nil {
				return nil, err
			}
			exprs[i] = pe
		}
		return rowexec.NewProjectionExec(input, p.Schema(), exprs), nil

	case plan.Selection:
		log.WithField("node", "Selection").Debug("lowering logical plan node")
		input, err := CreatePhysicalPlan(p.Input)
		if err != nil {
			return nil, err
		}
		predicate, err := createPhysicalExpr(p.Predicate, p.Input)
		if err != nil {
			return nil, err
		}
		return rowexec.NewSelectionExec(input, predicate), nil

	case plan.Aggregate:
		log.WithField("node", "Aggregate").Debug("lowering logical plan node")
		input, err := CreatePhysicalPlan(p.Input)
		if err != nil {
			return nil, err
		}
		groupExprs := make([]sql.PhysicalExpr, len(p.GroupExprs))
		for i, e := range p.GroupExprs {
			pe, err := createPhysicalExpr(e, p.Input)
			if err != nil {
				return nil, err
			}
			groupExprs[i] = pe
		}
		aggExprs := make([]rowexec.AggregateExpr, len(p.AggregateExprs))
		for i, e := range p.AggregateExprs {
			agg, ok := e.(expression.AggregateExpr)
			if !ok {
				return nil, sql.ErrAggregateExpressionRequired.New(e)
			}
			inner, err := createPhysicalExpr(agg.Expr, p.Input)
			if err != nil {
				return nil, err
			}
			aggExprs[i] = rowexec.NewAggregateExpr(inner, agg.Fun, agg.IsDistinct)
		}
		return rowexec.NewHashAggregateExec(input, p.Schema(), groupExprs, aggExprs), nil

	default:
		return nil, sql.ErrUnsupportedLogicalConstruct.New(p)
	}
}

// createPhysicalExpr lowers a logical expression to its physical
// counterpart against input's schema. Not, ScalarFunction, and
// AggregateExpr are not lowerable directly at the expression position:
// aggregates are only valid as direct entries of an Aggregate node's
// aggregate_exprs, consumed above, and Not/ScalarFunction have no
// physical counterpart in the current core.
func createPhysicalExpr(expr expression.Expr, input sql.LogicalPlan) (sql.PhysicalExpr, error) {
	switch e := expr.(type) {
	case expression.Column:
		idx, err := input.Schema().IndexOf(e.Name)
		if err != nil {
			return nil, err
		}
		return physicalexpr.NewColumn(idx), nil

	case expression.ColumnIndex:
		return physicalexpr.NewColumn(e.Index), nil

	case expression.Literal:
		return physicalexpr.NewLiteral(e.Value), nil

	case expression.Cast:
		inner, err := createPhysicalExpr(e.Expr, input)
		if err != nil {
			return nil, err
		}
		return physicalexpr.NewCast(inner, e.DataType), nil

	case expression.BinaryExpr:
		left, err := createPhysicalExpr(e.Left, input)
		if err != nil {
			return nil, err
		}
		right, err := createPhysicalExpr(e.Right, input)
		if err != nil {
			return nil, err
		}
		return physicalexpr.NewBinaryExpr(e.Op, left, right), nil

	case expression.Alias:
		// An alias only affects the resolved field's name during planning;
		// it has no physical counterpart of its own.
		return createPhysicalExpr(e.Expr, input)

	default:
		return nil, sql.ErrUnsupportedLogicalConstruct.New(expr)
	}
}
