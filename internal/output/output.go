// Package output resolves the destination path for scan results and
// writes them out.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResolvePath turns the user-supplied output target into a concrete file
// path. A directory target gets an auto-generated name embedding the log
// file's base name, the date and the second of day, e.g.
// parsed_access_20260829_41847.log. Resolution is one second: two runs in
// the same second resolve to the same name and the later one wins.
// Anything that is not an existing directory is used as a file path
// verbatim.
func ResolvePath(target, logPath string, now time.Time) string {
	st, err := os.Stat(target)
	if err != nil || !st.IsDir() {
		return target
	}

	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	secs := int(now.Sub(midnight) / time.Second)

	name := fmt.Sprintf("parsed_%s_%s_%d.log", base, now.Format("20060102"), secs)
	return filepath.Join(target, name)
}

// WriteFile writes the matched lines to path, preceded by a header
// recording the patterns that produced them. The file is created or
// truncated; a failure here must not discard results already printed to
// stdout, so callers emit to stdout first.
func WriteFile(path string, patterns, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "Patterns used: %s\n", strings.Join(patterns, ", "))
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output file %q: %w", path, err)
	}
	return nil
}

// Print emits the matched lines one per line, verbatim, in file order.
func Print(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
