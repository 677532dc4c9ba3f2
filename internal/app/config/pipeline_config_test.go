package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m2t.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPipelineConfig(t *testing.T) {
	path := writeConfig(t, `
transcriber: whisper_cpp
recordings_dir: /tmp/recordings
output_dir: /tmp/notes
whisper_cpp:
  binary_path: /usr/local/bin/whisper
  model_path: /models/ggml-large.bin
`)

	cfg, err := LoadPipelineConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "whisper_cpp", cfg.Transcriber)
	assert.Equal(t, "/tmp/recordings", cfg.RecordingsDir)
	assert.Equal(t, "/tmp/notes", cfg.OutputDir)
	assert.Equal(t, "/usr/local/bin/whisper", cfg.WhisperCpp.BinaryPath)
}

func TestLoadPipelineConfigExpandsEnv(t *testing.T) {
	t.Setenv("MODELS_HOME", "/opt/models")
	path := writeConfig(t, `
transcriber: whisper_cpp
whisper_cpp:
  binary_path: /usr/local/bin/whisper
  model_path: ${MODELS_HOME}/ggml-large.bin
`)

	cfg, err := LoadPipelineConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/models/ggml-large.bin", cfg.WhisperCpp.ModelPath)
}

func TestLoadPipelineConfigRejectsUnknownTranscriber(t *testing.T) {
	path := writeConfig(t, `transcriber: morse-code`)

	_, err := LoadPipelineConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transcriber")
}

func TestLoadPipelineConfigMissingFile(t *testing.T) {
	_, err := LoadPipelineConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyToEnvDoesNotOverrideUserValues(t *testing.T) {
	t.Setenv("M2T_RECORDINGS_DIR", "/user/choice")
	t.Setenv("M2T_OUTPUT_DIR", "")

	cfg := &PipelineConfig{
		RecordingsDir: "/file/recordings",
		OutputDir:     "/file/notes",
	}
	cfg.ApplyToEnv()

	assert.Equal(t, "/user/choice", os.Getenv("M2T_RECORDINGS_DIR"))
	assert.Equal(t, "/file/notes", os.Getenv("M2T_OUTPUT_DIR"))
}
