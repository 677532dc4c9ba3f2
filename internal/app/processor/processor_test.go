package processor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memo-whisper/internal/app/checkpoint"
	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/note"
	"memo-whisper/internal/app/testutil"
)

type fixture struct {
	proc        *Processor
	transcriber *testutil.MockTranscriber
	dao         *testutil.MockHistoryDAO
	store       *checkpoint.Store
	recordings  string
	notesDir    string
}

func newFixture(t *testing.T, clockSec int64) *fixture {
	t.Helper()
	workDir := t.TempDir()
	recordings := t.TempDir()
	notesDir := t.TempDir()

	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockHistoryDAO()
	store := checkpoint.NewStore(filepath.Join(workDir, "last_timestamp.txt"))
	clock := func() time.Time { return time.Unix(clockSec, 0) }
	notes := note.NewWriterWithClock(notesDir, clock)

	p := NewProcessor(transcriber, dao, store, notes)
	p.SetWorkDir(workDir)
	p.SetClock(clock)
	p.convert = func(inputPath, mp3Path string) error {
		return os.WriteFile(mp3Path, []byte("mp3"), 0o644)
	}
	p.probeDuration = func(string) (int, error) { return 42, nil }

	return &fixture{
		proc:        p,
		transcriber: transcriber,
		dao:         dao,
		store:       store,
		recordings:  recordings,
		notesDir:    notesDir,
	}
}

func (f *fixture) addRecording(t *testing.T, name string, unixSec int64) {
	t.Helper()
	path := filepath.Join(f.recordings, name)
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	ts := time.Unix(unixSec, 0)
	require.NoError(t, os.Chtimes(path, ts, ts))
}

func (f *fixture) noteFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.notesDir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestRunEmptyDirectoryStillAdvancesCheckpoint(t *testing.T) {
	f := newFixture(t, 5000)

	require.NoError(t, f.proc.Run(f.recordings, 0))

	assert.Empty(t, f.noteFiles(t))
	assert.Zero(t, f.transcriber.CallCount)

	ts, ok, err := f.store.Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5000), ts)
}

func TestRunSingleRecordingWritesOneNote(t *testing.T) {
	f := newFixture(t, 5000)
	f.addRecording(t, "memo.m4a", 4000)
	f.transcriber.DefaultResponse = "the spoken words"

	require.NoError(t, f.proc.Run(f.recordings, 0))

	notes := f.noteFiles(t)
	require.Equal(t, []string{"5000.md"}, notes)

	content, err := os.ReadFile(filepath.Join(f.notesDir, "5000.md"))
	require.NoError(t, err)
	assert.Equal(t, "the spoken words", string(content))

	records := f.dao.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "memo.m4a", records[0].FileName)
	assert.Equal(t, 42, records[0].AudioDuration)
	assert.Equal(t, "the spoken words", records[0].Transcription)
	assert.Zero(t, records[0].HasError)
}

func TestRunSkipsRecordingsAtOrBeforeCheckpoint(t *testing.T) {
	f := newFixture(t, 5000)
	require.NoError(t, f.store.Write(3000))
	f.addRecording(t, "old.m4a", 2000)
	f.addRecording(t, "boundary.m4a", 3000)
	f.addRecording(t, "new.m4a", 4000)

	require.NoError(t, f.proc.Run(f.recordings, 0))

	assert.Equal(t, 1, f.transcriber.CallCount)
	records := f.dao.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "new.m4a", records[0].FileName)
}

func TestRunHaltsOnFirstFailureAndKeepsCheckpoint(t *testing.T) {
	f := newFixture(t, 5000)
	f.addRecording(t, "older.m4a", 1000)
	f.addRecording(t, "newer.m4a", 2000)
	f.transcriber.DefaultError = apperrors.ErrTranscriptionFailed

	err := f.proc.Run(f.recordings, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTranscriptionFailed)

	// newest-first order means only the newer file was attempted
	assert.Equal(t, 1, f.transcriber.CallCount)
	assert.Empty(t, f.noteFiles(t))

	// checkpoint untouched, so both files are retried next run
	_, ok, readErr := f.store.Read()
	require.NoError(t, readErr)
	assert.False(t, ok)

	records := f.dao.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "newer.m4a", records[0].FileName)
	assert.Equal(t, 1, records[0].HasError)
}

func TestRunConversionFailureIsRecordedAndHalts(t *testing.T) {
	f := newFixture(t, 5000)
	f.addRecording(t, "bad.m4a", 1000)
	f.proc.convert = func(inputPath, mp3Path string) error {
		return apperrors.ErrConversionFailed
	}

	err := f.proc.Run(f.recordings, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConversionFailed)
	assert.Zero(t, f.transcriber.CallCount)

	records := f.dao.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].HasError)
	assert.Contains(t, records[0].ErrorMessage, "conversion error")
}

func TestRunLimitCapsCandidates(t *testing.T) {
	f := newFixture(t, 5000)
	f.addRecording(t, "first.m4a", 1000)
	f.addRecording(t, "second.m4a", 2000)
	f.addRecording(t, "third.m4a", 3000)

	require.NoError(t, f.proc.Run(f.recordings, 2))

	assert.Equal(t, 2, f.transcriber.CallCount)
	records := f.dao.Records()
	require.Len(t, records, 2)
	// newest first, capped to two
	assert.Equal(t, "third.m4a", records[0].FileName)
	assert.Equal(t, "second.m4a", records[1].FileName)
}

func TestRunStampsNowNotMaxFileTime(t *testing.T) {
	// The checkpoint is the wall clock at the end of the run, not the newest
	// processed mod time. A recording dated after "now" is therefore processed
	// again on the next run; this documents the long-standing boundary
	// behavior rather than asserting it away.
	f := newFixture(t, 5000)
	f.addRecording(t, "from-the-future.m4a", 9999)

	require.NoError(t, f.proc.Run(f.recordings, 0))

	ts, ok, err := f.store.Read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5000), ts)

	// same file qualifies again against the stamped checkpoint
	require.NoError(t, f.proc.Run(f.recordings, 0))
	assert.Equal(t, 2, f.transcriber.CallCount)
}

func TestRunMissingRecordingsDirFails(t *testing.T) {
	f := newFixture(t, 5000)

	err := f.proc.Run(filepath.Join(f.recordings, "gone"), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDirNotFound)

	_, ok, readErr := f.store.Read()
	require.NoError(t, readErr)
	assert.False(t, ok)
}

func TestRunWritesTempMp3IntoWorkDir(t *testing.T) {
	f := newFixture(t, 5000)
	f.addRecording(t, "memo.m4a", 1000)

	var gotMp3Path string
	f.proc.convert = func(inputPath, mp3Path string) error {
		gotMp3Path = mp3Path
		return os.WriteFile(mp3Path, []byte("mp3"), 0o644)
	}

	require.NoError(t, f.proc.Run(f.recordings, 0))
	assert.Equal(t, TempMp3Name, filepath.Base(gotMp3Path))
	assert.Equal(t, filepath.Dir(f.store.Path()), filepath.Dir(gotMp3Path))
}
