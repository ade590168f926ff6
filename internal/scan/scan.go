// Package scan drives the sequential pass over a log file.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/danlonngren/log-parser/pkg/matcher"
)

// maxLineSize bounds a single log line; bufio's default 64K token limit
// is too small for some application logs.
const maxLineSize = 1024 * 1024

// Scanner reads a log file line by line and collects the lines accepted
// by the matcher, preserving file order. One Scanner serves one run; the
// pass is strictly sequential and single-threaded.
type Scanner struct {
	m   matcher.Matcher
	log *logrus.Logger
}

func New(m matcher.Matcher, log *logrus.Logger) *Scanner {
	return &Scanner{m: m, log: log}
}

// File scans the file at path and returns the matching lines with their
// trailing line terminators trimmed but otherwise verbatim. The file
// handle is closed on every exit path.
func (s *Scanner) File(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	defer f.Close()

	var matches []string
	scanned := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		scanned++
		line := strings.TrimRight(sc.Text(), "\r")
		if s.m.MatchLine(line) {
			matches = append(matches, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log file %q: %w", path, err)
	}

	s.log.WithFields(logrus.Fields{
		"file":    path,
		"scanned": scanned,
		"matched": len(matches),
	}).Debug("scan complete")

	return matches, nil
}
