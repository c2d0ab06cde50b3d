package validation

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/vigil-sh/vigil/internal/core"
	"github.com/vigil-sh/vigil/internal/engine"
)

// ValidateRules checks the configured governance rules and compiles their
// expressions. Invalid rules fail loading; a half-valid rule set never
// reaches the decision engine.
func ValidateRules(rules []engine.GovernanceRule) ([]engine.GovernanceRule, error) {
	seenNames := make(map[string]struct{})
	var validRules []engine.GovernanceRule

	// compile against the same environment shape the engine evaluates with
	env := engine.ExprEnv(core.ContextSnapshot{}, core.ConsentProfile{})

	for i, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("rule #%d missing name", i)
		}
		if _, exists := seenNames[rule.Name]; exists {
			return nil, fmt.Errorf("rule name '%s' is not unique", rule.Name)
		}
		seenNames[rule.Name] = struct{}{}

		if rule.Expr == "" {
			return nil, fmt.Errorf("rule '%s' missing expr", rule.Name)
		}

		out, err := expr.Compile(rule.Expr, expr.Env(env), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling expr for rule '%s': %w", rule.Name, err)
		}
		rule.Compiled = out

		validRules = append(validRules, rule)
	}

	return validRules, nil
}
