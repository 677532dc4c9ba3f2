package audio

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"memo-whisper/internal/app/model"
)

func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput model.FFProbeOutput
	err = json.Unmarshal(output, &probeOutput)
	if err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
	err := convertTo16kHzWav(inputFilePath, outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}

func convertTo16kHzWav(inputAudioFilePath, outputWavPath string) error {
	if !needsReconvert(inputAudioFilePath, outputWavPath) {
		log.Printf("16kHz WAV file is up to date for '%s', skipping conversion.\n", inputAudioFilePath)
		return nil
	}

	ext := strings.ToLower(filepath.Ext(inputAudioFilePath))
	if ext != ".mp3" && ext != ".m4a" && ext != ".wav" {
		return fmt.Errorf("unsupported audio format not in [mp3,m4a,wav]: %s", ext)
	}

	log.Printf("convert to 16kHz wav: %s\n", inputAudioFilePath)

	// Drop any stale wav first: the pipeline reuses one fixed temp.mp3 path,
	// so a leftover wav from an earlier recording must never survive here.
	if err := os.Remove(outputWavPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove stale wav %q: %v", outputWavPath, err)
	}

	cmd := exec.Command("ffmpeg", "-y", "-i", inputAudioFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "2", outputWavPath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v", err)
	}

	log.Printf("Audio to 16kHz WAV conversion completed: '%s'\n", outputWavPath)
	return nil
}

// needsReconvert reports whether outputWavPath must be regenerated from the
// input. A wav qualifies as current only when it is strictly newer than its
// source; anything else (missing, unreadable, or dating from an earlier
// recording written to the same temp path) gets reconverted.
func needsReconvert(inputAudioFilePath, outputWavPath string) bool {
	out, err := os.Stat(outputWavPath)
	if err != nil {
		return true
	}
	in, err := os.Stat(inputAudioFilePath)
	if err != nil {
		return true
	}
	return !out.ModTime().After(in.ModTime())
}
