// Package matcher provides line-matching strategies for log scanning:
// boolean keyword expressions (backed by pkg/expr) and regular
// expressions. Both are built once per run and are safe to reuse for
// every line of the scan.
package matcher

// Matcher decides whether a single log line satisfies the search
// criterion. Implementations are pure: no state mutation per call.
type Matcher interface {
	MatchLine(line string) bool
}
