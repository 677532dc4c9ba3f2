package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/util/files"
)

// Ext is the transcript note extension.
const Ext = ".md"

const filePerm = 0o644

// Writer persists transcript notes into a single output directory, one file
// per processed recording, named by the wall-clock Unix timestamp at write
// time.
type Writer struct {
	outputDir string
	now       func() time.Time
}

func NewWriter(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// NewWriterWithClock is used by tests that need a controlled timestamp.
func NewWriterWithClock(outputDir string, now func() time.Time) *Writer {
	return &Writer{outputDir: outputDir, now: now}
}

// Write creates a new note containing text verbatim and returns its path.
// Notes are never mutated after creation: when two writes land in the same
// second, the later one gets a -1, -2, ... suffix instead of clobbering the
// earlier note.
func (w *Writer) Write(text string) (string, error) {
	if err := files.CheckAndCreateDirectory(w.outputDir); err != nil {
		return "", apperrors.WrapSentinel(apperrors.ErrNoteWriteFailed, err)
	}

	base := strconv.FormatInt(w.now().Unix(), 10)
	path := filepath.Join(w.outputDir, base+Ext)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		path = filepath.Join(w.outputDir, fmt.Sprintf("%s-%d%s", base, i, Ext))
	}

	if err := os.WriteFile(path, []byte(text), filePerm); err != nil {
		return "", apperrors.WrapSentinel(apperrors.ErrNoteWriteFailed, err)
	}
	return path, nil
}
