package note

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(unixSec int64) func() time.Time {
	return func() time.Time { return time.Unix(unixSec, 0) }
}

func TestWriteCreatesTimestampNamedNote(t *testing.T) {
	dir := t.TempDir()
	w := NewWriterWithClock(dir, fixedClock(1700000000))

	path, err := w.Write("hello transcript")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1700000000.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello transcript", string(content))
}

func TestWriteSameSecondDoesNotClobber(t *testing.T) {
	dir := t.TempDir()
	w := NewWriterWithClock(dir, fixedClock(1700000000))

	first, err := w.Write("first")
	require.NoError(t, err)
	second, err := w.Write("second")
	require.NoError(t, err)
	third, err := w.Write("third")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "1700000000.md"), first)
	assert.Equal(t, filepath.Join(dir, "1700000000-1.md"), second)
	assert.Equal(t, filepath.Join(dir, "1700000000-2.md"), third)

	content, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestWriteCreatesMissingOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "inbox", "audio")
	w := NewWriterWithClock(dir, fixedClock(1700000000))

	path, err := w.Write("text")
	require.NoError(t, err)
	assert.FileExists(t, path)
}
