package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/plan"
	"github.com/coredb-io/colex/rowexec"
	"github.com/coredb-io/colex/sql"
)

type stubSource struct {
	schema sql.Schema
}

func (s stubSource) Schema() sql.Schema { return s.schema }
func (s stubSource) Scan(ctx *sql.Context, projection []string) (sql.BatchIter, error) {
	return nil, nil
}

func primitiveSchema() sql.Schema {
	return sql.NewSchema(
		sql.NewField("c1", sql.Int32),
		sql.NewField("c2", sql.Int32),
	)
}

func TestCreatePhysicalPlanScan(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)

	physical, err := CreatePhysicalPlan(scanPlan)
	require.NoError(err)
	require.IsType(rowexec.ScanExec{}, physical)
}

func TestCreatePhysicalPlanProjection(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)
	projPlan := plan.NewProjection(scanPlan, []expression.Expr{expression.Col("c1")})

	physical, err := CreatePhysicalPlan(projPlan)
	require.NoError(err)
	require.IsType(rowexec.ProjectionExec{}, physical)
}

func TestCreatePhysicalPlanSelection(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)
	predicate := expression.EqExpr(expression.Col("c1"), expression.LitInt32(1))
	selPlan := plan.NewSelection(scanPlan, predicate)

	physical, err := CreatePhysicalPlan(selPlan)
	require.NoError(err)
	require.IsType(rowexec.SelectionExec{}, physical)
}

func TestCreatePhysicalPlanAggregate(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)
	aggPlan := plan.NewAggregate(scanPlan,
		[]expression.Expr{expression.Col("c1")},
		[]expression.Expr{expression.NewMax(expression.Col("c1"))})

	physical, err := CreatePhysicalPlan(aggPlan)
	require.NoError(err)
	require.IsType(rowexec.HashAggregateExec{}, physical)
}

func TestCreatePhysicalExprLiteral(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)

	physical, err := createPhysicalExpr(expression.LitInt32(1), scanPlan)
	require.NoError(err)
	require.Equal("1", physical.String())
}

func TestCreatePhysicalExprColumnResolvesNameToIndex(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)

	physical, err := createPhysicalExpr(expression.Col("c2"), scanPlan)
	require.NoError(err)
	require.Equal("#1", physical.String())
}

func TestCreatePhysicalExprRejectsNot(t *testing.T) {
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)

	_, err := createPhysicalExpr(expression.NewNot(expression.Col("c1")), scanPlan)
	require.Error(t, err)
}

func TestCreatePhysicalExprAliasErasesToInner(t *testing.T) {
	require := require.New(t)
	source := stubSource{schema: primitiveSchema()}
	scanPlan := plan.NewScan("data.csv", source, nil)

	physical, err := createPhysicalExpr(expression.NewAlias(expression.Col("c1"), "renamed"), scanPlan)
	require.NoError(err)
	require.Equal("#0", physical.String())
}
