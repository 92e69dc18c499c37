// Package optimizer rewrites a logical plan tree before it reaches the
// planner. Grounded on the sequential-apply Optimizer/DefaultOptimizers
// pattern: a Rule is applied in turn over the whole tree, each producing a
// new tree rather than mutating the one it was given.
package optimizer

import (
	"github.com/sirupsen/logrus"

	"github.com/coredb-io/colex/sql"
)

// Rule rewrites a logical plan tree into an equivalent one.
type Rule interface {
	Optimize(plan sql.LogicalPlan) (sql.LogicalPlan, error)
}

// Optimizer runs an ordered pipeline of rules. The identity pipeline
// (no rules, or only IdentityRule) is always a valid configuration.
type Optimizer struct {
	Rules []Rule
	Log   logrus.FieldLogger
}

// DefaultRules is the recommended pipeline: identity plus projection
// push-down, in that order.
func DefaultRules() []Rule {
	return []Rule{IdentityRule{}, ProjectionPushdownRule{}}
}

// NewOptimizer builds an Optimizer over rules, logging each rule's pass at
// debug level.
func NewOptimizer(rules []Rule) Optimizer {
	return Optimizer{Rules: rules, Log: logrus.StandardLogger()}
}

// Optimize runs every rule over plan in sequence, feeding each rule's
// output into the next.
func (o Optimizer) Optimize(plan sql.LogicalPlan) (sql.LogicalPlan, error) {
	current := plan
	for _, rule := range o.Rules {
		next, err := rule.Optimize(current)
		if err != nil {
			return nil, err
		}
		if o.Log != nil {
			o.Log.WithField("rule", ruleName(rule)).Debug("optimizer rule applied")
		}
		current = next
	}
	return current, nil
}

func ruleName(r Rule) string {
	switch r.(type) {
	case IdentityRule:
		return "IdentityRule"
	case ProjectionPushdownRule:
		return "ProjectionPushdownRule"
	default:
		return "Rule"
	}
}

// IdentityRule returns its input unchanged. It exists so the rule
// pipeline is never empty and Optimizer.Optimize always has at least one
// logged pass.
type IdentityRule struct{}

func (IdentityRule) Optimize(plan sql.LogicalPlan) (sql.LogicalPlan, error) { return plan, nil }
