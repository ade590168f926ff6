package scan

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danlonngren/log-parser/pkg/matcher"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeLog(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boot.log")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

const bootLog = "Linux boot ok\nWindows boot fail\nLinux 2.6 panic\n"

func TestScanKeywordMode(t *testing.T) {
	path := writeLog(t, bootLog)

	m, err := matcher.NewExpressionMatcher([]string{"Linux and 2.6"}, false)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linux 2.6 panic"}, matches)
}

func TestScanKeywordModeDisjunction(t *testing.T) {
	path := writeLog(t, bootLog)

	m, err := matcher.NewExpressionMatcher([]string{"Linux || Windows"}, false)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linux boot ok", "Windows boot fail", "Linux 2.6 panic"}, matches)
}

func TestScanRegexMode(t *testing.T) {
	path := writeLog(t, bootLog)

	m, err := matcher.NewRegexMatcher([]string{"^Linux.*panic$"}, false)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linux 2.6 panic"}, matches)
}

func TestScanPreservesOriginalCasing(t *testing.T) {
	path := writeLog(t, "ERROR: disk Full\nall fine\n")

	m, err := matcher.NewExpressionMatcher([]string{"error and full"}, true)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	// matched verbatim, not lowercased
	assert.Equal(t, []string{"ERROR: disk Full"}, matches)
}

func TestScanCRLFLines(t *testing.T) {
	path := writeLog(t, "Linux 2.6 panic\r\nWindows boot fail\r\n")

	m, err := matcher.NewExpressionMatcher([]string{"panic"}, false)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linux 2.6 panic"}, matches)
}

func TestScanZeroMatchesIsNotAnError(t *testing.T) {
	path := writeLog(t, bootLog)

	m, err := matcher.NewExpressionMatcher([]string{"solaris"}, false)
	require.NoError(t, err)

	matches, err := New(m, testLogger()).File(path)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScanMissingFile(t *testing.T) {
	m, err := matcher.NewExpressionMatcher([]string{"x y"}, false)
	require.NoError(t, err)

	_, err = New(m, testLogger()).File(filepath.Join(t.TempDir(), "absent.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.log")
}
