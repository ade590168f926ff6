package matcher

import (
	"fmt"
	"strings"

	"github.com/danlonngren/log-parser/pkg/expr"
)

// ExpressionMatcher matches a line against one or more parsed keyword
// expressions. A line matches when ANY expression evaluates true, so
// multiple patterns on the command line combine disjunctively. When
// ignore-case is active the trees are folded to lowercase at build time
// and each probed line is lowercased the same way.
type ExpressionMatcher struct {
	trees      []*expr.Node
	ignoreCase bool
	prefilter  *LiteralPrefilter
}

// NewExpressionMatcher parses every pattern up front; a syntax error in
// any of them fails construction before the scan starts.
func NewExpressionMatcher(patterns []string, ignoreCase bool) (*ExpressionMatcher, error) {
	return NewExpressionMatcherWithConfig(patterns, ignoreCase, DefaultPrefilterConfig())
}

// NewExpressionMatcherWithConfig is NewExpressionMatcher with explicit
// prefilter tuning.
func NewExpressionMatcherWithConfig(patterns []string, ignoreCase bool, cfg PrefilterConfig) (*ExpressionMatcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns given")
	}
	trees := make([]*expr.Node, 0, len(patterns))
	for _, p := range patterns {
		tree, err := expr.ParseString(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if ignoreCase {
			tree = tree.Fold()
		}
		trees = append(trees, tree)
	}

	pf := PrefilterFromTrees(trees, cfg)
	return &ExpressionMatcher{trees: trees, ignoreCase: ignoreCase, prefilter: &pf}, nil
}

func (m *ExpressionMatcher) MatchLine(line string) bool {
	probe := line
	if m.ignoreCase {
		probe = strings.ToLower(line)
	}
	if !m.prefilter.MightMatch(probe) {
		return false
	}
	for _, tree := range m.trees {
		if tree.Eval(probe) {
			return true
		}
	}
	return false
}

// Prefilter exposes the literal prefilter, mainly for stats reporting.
func (m *ExpressionMatcher) Prefilter() *LiteralPrefilter { return m.prefilter }
