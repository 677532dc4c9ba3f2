package whisper_cpp

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"memo-whisper/internal/app/audio"
	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/util/files"
)

// LocalTranscriber implements local transcription with the whisper.cpp binary.
// It owns the binary and model paths for its whole lifetime: construct it once
// before the processing loop and reuse it for every file.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
	}
}

// Transcript runs whisper.cpp on the given audio file and returns the
// transcribed text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	if _, err := os.Stat(inputFilePath); os.IsNotExist(err) {
		return "", apperrors.WrapSentinel(apperrors.ErrFileNotFound, fmt.Errorf("%s", inputFilePath))
	}

	log.Printf("Starting transcription of file %s\n", inputFilePath)

	// whisper.cpp wants 16kHz PCM WAV input
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", apperrors.Wrap(err, "error checking input file")
	}

	if !is16kHzWav {
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return "", apperrors.Wrap(err, "error converting input file")
		}
	}

	outputFile := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath))

	args := []string{
		"-m", lt.modelPath,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputFile,
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	log.Printf("Running transcription command: %s %s\n", lt.binaryPath, strings.Join(args, " "))

	err = command.Run()
	if err != nil {
		return "", apperrors.WrapSentinel(apperrors.ErrTranscriptionFailed,
			fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String()))
	}

	output, err := files.ReadOutputFile(outputFile + ".txt")
	if err != nil {
		return "", apperrors.Wrap(err, "failed to read output file")
	}

	return output, nil
}
