package matcher

import (
	"fmt"

	ac "github.com/petar-dambovaliev/aho-corasick"

	"github.com/danlonngren/log-parser/pkg/expr"
)

//
// Literal prefilter: an Aho-Corasick automaton over keyword literals that
// lets the scanner reject most lines without walking the expression
// trees. Only sound literal sets are used: a line is skipped when NO
// required literal occurs in it, so the filter must guarantee that every
// possible match contains at least one automaton pattern.
//

// -------------------- Config --------------------

type PrefilterConfig struct {
	// Skip literals shorter than this; a tree whose required literals
	// fall under the limit opts the whole prefilter out.
	MinPatternLength int
	// Upper bound on automaton size (nil = no limit); exceeding it
	// disables the prefilter rather than truncating it.
	MaxPatterns *int
	// Master switch.
	Enabled bool
}

func DefaultPrefilterConfig() PrefilterConfig {
	max := 1000
	return PrefilterConfig{
		MinPatternLength: 2,
		MaxPatterns:      &max,
		Enabled:          true,
	}
}

// -------------------- Statistics --------------------

type PrefilterStats struct {
	// Number of patterns in the automaton
	PatternCount int `json:"pattern_count"`
	// Number of expression trees that contributed literals
	TreeCount int `json:"tree_count"`
	// Selectivity estimate (0.0 = very selective, 1.0 = matches all)
	EstimatedSelectivity float64 `json:"estimated_selectivity"`
}

func (s PrefilterStats) StrategyName() string {
	if s.PatternCount == 0 {
		return "disabled"
	}
	return fmt.Sprintf("AhoCorasick (%d patterns)", s.PatternCount)
}

// -------------------- Prefilter --------------------

type LiteralPrefilter struct {
	// AC automaton (nil when the prefilter is disabled or unsound)
	ac *ac.AhoCorasick
	// Raw patterns, kept for stats and debugging
	patterns []string
	stats    PrefilterStats
	cfg      PrefilterConfig
}

func (p *LiteralPrefilter) Stats() PrefilterStats { return p.stats }

// Enabled reports whether lines are actually being screened.
func (p *LiteralPrefilter) Enabled() bool { return p.ac != nil }

// MightMatch reports whether the line could possibly satisfy one of the
// source expressions. False means the full evaluation can be skipped.
// A disabled prefilter always passes the line through.
func (p *LiteralPrefilter) MightMatch(line string) bool {
	if p.ac == nil {
		return true
	}
	return len(p.ac.FindAll(line)) > 0
}

// PrefilterFromTrees builds a prefilter for a set of parsed expression
// trees. The trees must already be case-folded if the scan is
// case-insensitive; the automaton matches exactly.
func PrefilterFromTrees(trees []*expr.Node, cfg PrefilterConfig) LiteralPrefilter {
	disabled := LiteralPrefilter{cfg: cfg, stats: PrefilterStats{EstimatedSelectivity: 1.0}}
	if !cfg.Enabled || len(trees) == 0 {
		return disabled
	}

	dedupe := make(map[string]struct{})
	combined := make([]string, 0, 8)
	for _, tree := range trees {
		lits, ok := requiredLiterals(tree, cfg.MinPatternLength)
		if !ok {
			// one tree without a sound literal set poisons the whole
			// filter: a line could match it with no automaton hit
			return disabled
		}
		for _, l := range lits {
			if _, seen := dedupe[l]; seen {
				continue
			}
			dedupe[l] = struct{}{}
			combined = append(combined, l)
		}
	}
	if cfg.MaxPatterns != nil && len(combined) > *cfg.MaxPatterns {
		return disabled
	}

	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		MatchKind: ac.LeftMostLongestMatch,
	})
	automaton := builder.Build(combined)

	return LiteralPrefilter{
		ac:       &automaton,
		patterns: combined,
		cfg:      cfg,
		stats: PrefilterStats{
			PatternCount:         len(combined),
			TreeCount:            len(trees),
			EstimatedSelectivity: estimateSelectivity(len(combined)),
		},
	}
}

// requiredLiterals computes a literal set such that any line matching the
// tree contains at least one literal from the set. ok=false means no such
// set exists (a NOT-dominated tree, or literals under the length limit).
func requiredLiterals(n *expr.Node, minLen int) ([]string, bool) {
	switch n.Kind {
	case expr.NodeTerm:
		if len(n.Keyword) < minLen {
			return nil, false
		}
		return []string{n.Keyword}, true

	case expr.NodeAnd:
		// either side alone is required; prefer the smaller sound set
		left, lok := requiredLiterals(n.Left, minLen)
		right, rok := requiredLiterals(n.Right, minLen)
		switch {
		case lok && rok:
			if len(left) <= len(right) {
				return left, true
			}
			return right, true
		case lok:
			return left, true
		case rok:
			return right, true
		default:
			return nil, false
		}

	case expr.NodeOr:
		// both branches must contribute, or the set is unsound
		left, lok := requiredLiterals(n.Left, minLen)
		if !lok {
			return nil, false
		}
		right, rok := requiredLiterals(n.Right, minLen)
		if !rok {
			return nil, false
		}
		return append(left, right...), true

	case expr.NodeNot:
		// a negation matches by absence; nothing is required
		return nil, false

	default:
		return nil, false
	}
}

func estimateSelectivity(patternCount int) float64 {
	// crude heuristic: more distinct literals pass more lines through
	switch {
	case patternCount == 0:
		return 1.0
	case patternCount == 1:
		return 0.1
	case patternCount <= 5:
		return 0.3
	case patternCount <= 20:
		return 0.5
	default:
		return 0.7
	}
}
