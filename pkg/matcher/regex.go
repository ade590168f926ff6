package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// RegexMatcher matches a line against one or more regular expressions,
// OR-joined into a single compiled pattern. Case folding is delegated to
// the regexp engine via the (?i) flag, so the line itself is never
// rewritten. The keyword expression engine is bypassed entirely in this
// mode.
type RegexMatcher struct {
	pattern *regexp.Regexp
}

func NewRegexMatcher(patterns []string, ignoreCase bool) (*RegexMatcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns given")
	}
	groups := make([]string, 0, len(patterns))
	for _, p := range patterns {
		groups = append(groups, "(?:"+p+")")
	}
	combined := strings.Join(groups, "|")
	if ignoreCase {
		combined = "(?i)" + combined
	}
	re, err := regexp.Compile(combined)
	if err != nil {
		// surface the engine's own message; the user wrote the pattern
		return nil, err
	}
	return &RegexMatcher{pattern: re}, nil
}

func (m *RegexMatcher) MatchLine(line string) bool {
	return m.pattern.MatchString(line)
}

// Pattern returns the combined pattern as compiled, for diagnostics.
func (m *RegexMatcher) Pattern() string { return m.pattern.String() }
