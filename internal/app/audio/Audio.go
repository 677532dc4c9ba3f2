package audio

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "memo-whisper/internal/app/errors"
)

func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	duration := int(math.Round(durationFloat))
	return duration, nil
}

// ConvertToMp3 transcodes one recording to MP3 at mp3FilePath, replacing any
// stale file already there from an earlier aborted run.
func ConvertToMp3(inputFilePath, mp3FilePath string) error {
	if _, err := os.Stat(inputFilePath); os.IsNotExist(err) {
		return apperrors.WrapSentinel(apperrors.ErrFileNotFound, fmt.Errorf("%s", inputFilePath))
	}

	outputDir := filepath.Dir(mp3FilePath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
			return apperrors.Wrapf(err, "cannot create output directory %q", outputDir)
		}
	}

	log.Printf("converting to mp3: %s\n", filepath.Base(inputFilePath))

	cmd := exec.Command("ffmpeg", "-y", "-i", inputFilePath, "-vn", "-acodec", "libmp3lame", mp3FilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return apperrors.WrapSentinel(apperrors.ErrConversionFailed,
			fmt.Errorf("ffmpeg: %v, stderr: %s", err, stderr.String()))
	}

	log.Printf("mp3 conversion completed: '%s'\n", mp3FilePath)
	return nil
}
