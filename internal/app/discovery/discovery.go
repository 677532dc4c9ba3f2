package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// audioExtensions is the recording whitelist, compared case-insensitively.
var audioExtensions = []string{".m4a", ".qta"}

// Find lists the recordings in dir that a run should consider: regular files
// with a whitelisted extension, direct children only (subdirectories are not
// descended into). With hasAfter set, only files whose mod time is strictly
// newer than after are returned; mod time stands in for creation time, which
// is not portably readable. The result is sorted newest first.
func Find(dir string, after int64, hasAfter bool) ([]model.FileInfo, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, apperrors.WrapSentinel(apperrors.ErrDirNotFound, fmt.Errorf("%s", dir))
	}
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to stat directory %q", dir)
	}
	if !info.IsDir() {
		return nil, apperrors.WrapSentinel(apperrors.ErrNotADirectory, fmt.Errorf("%s", dir))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil, apperrors.WrapSentinel(apperrors.ErrPermissionDenied,
				fmt.Errorf("%s", permissionHelp(dir)))
		}
		return nil, apperrors.Wrapf(err, "failed to read directory %q", dir)
	}

	candidates := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		if e.IsDir() || !e.Type().IsRegular() {
			return false
		}
		return lo.Contains(audioExtensions, strings.ToLower(filepath.Ext(e.Name())))
	})

	var fileInfos []model.FileInfo
	for _, e := range candidates {
		info, err := e.Info()
		if err != nil {
			// File vanished or is unreadable between ReadDir and stat; a
			// single bad entry does not fail the whole listing.
			continue
		}
		if hasAfter && info.ModTime().Unix() <= after {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(dir, e.Name()),
			ModTime:  info.ModTime(),
			Name:     e.Name(),
		})
	}

	// ReadDir returns name-sorted entries, so equal mod times keep a
	// deterministic order under the stable sort.
	sort.SliceStable(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.After(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

func permissionHelp(dir string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cannot access %q\n\n", dir)

	if strings.Contains(dir, "VoiceMemos") {
		sb.WriteString("This directory is protected by macOS security policies.\n")
		sb.WriteString("For Voice Memos access:\n")
		sb.WriteString("  1. Export memos from the Voice Memos app (File > Export)\n")
		sb.WriteString("  2. Or copy the files to an accessible location\n")
		sb.WriteString("  3. Or grant Full Disk Access to your terminal:\n")
		sb.WriteString("     System Settings > Privacy & Security > Full Disk Access\n")
	} else {
		sb.WriteString("To resolve:\n")
		sb.WriteString("  1. Check directory permissions: ls -la <directory>\n")
		sb.WriteString("  2. Copy the files to an accessible location\n")
		sb.WriteString("  3. Grant the necessary permissions in System Settings > Privacy & Security\n")
	}
	return sb.String()
}
