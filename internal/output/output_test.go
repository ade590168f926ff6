package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathFileTargetIsVerbatim(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.log")
	got := ResolvePath(target, "/var/log/access.log", time.Now())
	assert.Equal(t, target, got)
}

func TestResolvePathDirectoryGetsTimestampedName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 29, 11, 37, 27, 0, time.Local)

	got := ResolvePath(dir, "/var/log/access.log", now)

	secs := 11*3600 + 37*60 + 27
	want := filepath.Join(dir, fmt.Sprintf("parsed_access_20260829_%d.log", secs))
	assert.Equal(t, want, got)
}

func TestResolvePathDifferentSecondsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 29, 11, 37, 27, 0, time.Local)

	a := ResolvePath(dir, "x.log", now)
	b := ResolvePath(dir, "x.log", now.Add(time.Second))
	assert.NotEqual(t, a, b)
}

func TestWriteFileHeaderAndLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	err := WriteFile(path, []string{"Linux and 2.6", "panic"}, []string{"Linux 2.6 panic"})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Patterns used: Linux and 2.6, panic\nLinux 2.6 panic\n", string(b))
}

func TestWriteFileUnwritableTarget(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.log"), []string{"p"}, nil)
	require.Error(t, err)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, []string{"one", "two"})
	assert.Equal(t, "one\ntwo\n", buf.String())
}
