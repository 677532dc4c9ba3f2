package discovery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// writeFileAt creates a file and pins its mod time to the given Unix second.
func writeFileAt(t *testing.T, dir, name string, unixSec int64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	ts := time.Unix(unixSec, 0)
	require.NoError(t, os.Chtimes(path, ts, ts))
	return path
}

func names(fileInfos []model.FileInfo) []string {
	out := make([]string, 0, len(fileInfos))
	for _, f := range fileInfos {
		out = append(out, f.Name)
	}
	return out
}

func TestFindOnlyNonMatchingExtensionsIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "a.mp3", 1000)
	writeFileAt(t, dir, "b.wav", 1001)
	writeFileAt(t, dir, "c.txt", 1002)
	writeFileAt(t, dir, "m4a", 1003) // no dot, extension-less

	got, err := Find(dir, 0, false)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindFiltersExtensionsCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "lower.m4a", 1000)
	writeFileAt(t, dir, "upper.M4A", 1001)
	writeFileAt(t, dir, "mixed.QtA", 1002)
	writeFileAt(t, dir, "other.mp3", 1003)
	writeFileAt(t, dir, "note.md", 1004)

	got, err := Find(dir, 0, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"lower.m4a", "upper.M4A", "mixed.QtA"}, names(got))
}

func TestFindWithoutCheckpointReturnsAllNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "oldest.m4a", 1000)
	writeFileAt(t, dir, "middle.qta", 2000)
	writeFileAt(t, dir, "newest.m4a", 3000)

	got, err := Find(dir, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest.m4a", "middle.qta", "oldest.m4a"}, names(got))
}

func TestFindAfterExcludesBoundaryAndOlder(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "older.m4a", 999)
	writeFileAt(t, dir, "boundary.m4a", 1000)
	writeFileAt(t, dir, "newer.m4a", 1001)

	// strictly greater than the checkpoint
	got, err := Find(dir, 1000, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"newer.m4a"}, names(got))
}

func TestFindCheckpointScenario(t *testing.T) {
	// old.m4a at t0, checkpoint t0+50, then new.m4a at t0+100 and
	// new.qta at t0+150 arrive
	const t0 = 1700000000
	dir := t.TempDir()
	writeFileAt(t, dir, "old.m4a", t0)
	writeFileAt(t, dir, "new.m4a", t0+100)
	writeFileAt(t, dir, "new.qta", t0+150)

	got, err := Find(dir, t0+50, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.qta", "new.m4a"}, names(got))
}

func TestFindIsNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "top.m4a", 1000)

	sub := filepath.Join(dir, "nested.m4a")
	require.NoError(t, os.Mkdir(sub, 0o755)) // directory named like a recording
	inner := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(inner, 0o755))
	writeFileAt(t, inner, "hidden.m4a", 2000)

	got, err := Find(dir, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.m4a"}, names(got))
}

func TestFindMissingDirectory(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "does-not-exist"), 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDirNotFound)
}

func TestFindPathIsAFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFileAt(t, dir, "not-a-dir.m4a", 1000)

	_, err := Find(path, 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotADirectory)
}

func TestFindPopulatesFileInfo(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "memo.m4a", 1700000000)

	got, err := Find(dir, 0, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "memo.m4a", got[0].Name)
	assert.Equal(t, filepath.Join(dir, "memo.m4a"), got[0].FullPath)
	assert.Equal(t, int64(1700000000), got[0].ModTime.Unix())
}

func TestPermissionHelpMentionsVoiceMemos(t *testing.T) {
	msg := permissionHelp("/Users/x/Library/Group Containers/group.com.apple.VoiceMemos.shared/Recordings")
	assert.Contains(t, msg, "Full Disk Access")
	assert.Contains(t, msg, "Voice Memos")

	generic := permissionHelp("/srv/audio")
	assert.Contains(t, generic, "ls -la")
	assert.NotContains(t, generic, "Voice Memos")
}
