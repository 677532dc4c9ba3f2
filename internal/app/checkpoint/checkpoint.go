package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "memo-whisper/internal/app/errors"
)

// DefaultFileName is the checkpoint file kept in the working directory.
const DefaultFileName = "last_timestamp.txt"

// Store persists the Unix timestamp of the last successful run as a decimal
// string in a single file. A missing file means no run has completed yet.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Read returns the stored timestamp. ok is false when no checkpoint file
// exists, which is a valid first-run state, not an error.
func (s *Store) Read() (ts int64, ok bool, err error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperrors.Wrapf(err, "failed to read checkpoint %q", s.path)
	}

	trimmed := strings.TrimSpace(string(content))
	ts, err = strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, false, apperrors.WrapSentinel(apperrors.ErrCheckpointCorrupt,
			fmt.Errorf("%q in %s", trimmed, s.path))
	}
	return ts, true, nil
}

// Write replaces the checkpoint with ts. The value goes to a temp file in the
// same directory first and is renamed into place, so a concurrent Read never
// observes a partially written value.
func (s *Store) Write(ts int64) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperrors.Wrapf(err, "failed to create temp checkpoint in %q", dir)
	}
	tmpName := tmp.Name()

	_, err = tmp.WriteString(strconv.FormatInt(ts, 10))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return apperrors.Wrapf(err, "failed to write checkpoint %q", s.path)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrapf(err, "failed to replace checkpoint %q", s.path)
	}
	return nil
}
