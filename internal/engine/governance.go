package engine

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/vigil-sh/vigil/internal/core"
)

// GovernanceRule is an operator-configured deny rule. Rules can only deny,
// never grant, and always run after the built-in decision steps.
type GovernanceRule struct {
	// Name is a human-readable identifier for logs/debugging.
	Name string `yaml:"name" json:"name"`

	// Description explains the intent of the rule.
	Description string `yaml:"description" json:"description"`

	// DenyReason is the reason recorded when the rule matches.
	// Defaults to the rule name.
	DenyReason string `yaml:"deny_reason" json:"deny_reason"`

	// Expr is the boolean expression evaluated against the request.
	// Available variables: hour, role, location, owner_id, is_youth.
	Expr string `yaml:"expr" json:"expr"`

	// Compiled holds the pre-compiled form of Expr.
	Compiled *vm.Program `yaml:"-" json:"-"`
}

// Reason returns the denial reason for a matched rule.
func (r GovernanceRule) Reason() string {
	if r.DenyReason != "" {
		return r.DenyReason
	}
	return r.Name
}

// ExprEnv builds the expression environment for a request. Exported so
// validation can compile against the same shape.
func ExprEnv(snap core.ContextSnapshot, profile core.ConsentProfile) map[string]any {
	return map[string]any{
		"hour":     snap.Hour,
		"role":     string(snap.Viewer),
		"location": string(snap.Location),
		"owner_id": profile.OwnerID,
		"is_youth": profile.IsYouth,
	}
}

// Engine holds the loaded governance rules and evaluates them in
// declaration order.
type Engine struct {
	rules []GovernanceRule
}

// New creates a new Engine with the given (already compiled) rules.
func New(rules []GovernanceRule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the loaded rules.
func (e *Engine) Rules() []GovernanceRule {
	return e.rules
}

// EvaluateGovernance runs the configured rules against the request.
// The first matching rule denies with its reason.
func (e *Engine) EvaluateGovernance(snap core.ContextSnapshot, profile core.ConsentProfile) (denied bool, reason string, err error) {
	env := ExprEnv(snap, profile)

	for _, rule := range e.rules {
		program := rule.Compiled
		if program == nil {
			program, err = expr.Compile(rule.Expr, expr.Env(env), expr.AsBool())
			if err != nil {
				return false, "", fmt.Errorf("compiling governance rule %q: %w", rule.Name, err)
			}
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return false, "", fmt.Errorf("evaluating governance rule %q: %w", rule.Name, err)
		}
		if matched, _ := out.(bool); matched {
			return true, rule.Reason(), nil
		}
	}
	return false, "", nil
}
