package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PipelineConfig is the optional YAML config file; every field can also be
// supplied through the environment, which wins on conflict.
type PipelineConfig struct {
	Transcriber   string           `yaml:"transcriber"`
	RecordingsDir string           `yaml:"recordings_dir"`
	OutputDir     string           `yaml:"output_dir"`
	OpenAI        OpenAIConfig     `yaml:"openai,omitempty"`
	WhisperCpp    WhisperCppConfig `yaml:"whisper_cpp,omitempty"`
}

// OpenAIConfig holds settings for the remote whisper backend.
type OpenAIConfig struct {
	Model string `yaml:"model,omitempty"`
}

// WhisperCppConfig holds settings for the local whisper.cpp backend.
type WhisperCppConfig struct {
	BinaryPath string `yaml:"binary_path,omitempty"`
	ModelPath  string `yaml:"model_path,omitempty"`
}

// LoadPipelineConfig loads the pipeline configuration from a YAML file.
func LoadPipelineConfig(configPath string) (*PipelineConfig, error) {
	// Expand environment variables in path
	configPath = os.ExpandEnv(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Expand environment variables in the YAML content
	content := os.ExpandEnv(string(data))

	var config PipelineConfig
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return &config, nil
}

// Validate checks the configuration for consistency.
func (c *PipelineConfig) Validate() error {
	switch strings.TrimSpace(c.Transcriber) {
	case "", "openai", "whisper_cpp":
	default:
		return fmt.Errorf("unknown transcriber %q", c.Transcriber)
	}
	if c.Transcriber == "whisper_cpp" && c.WhisperCpp.BinaryPath != "" && c.WhisperCpp.ModelPath == "" {
		return fmt.Errorf("whisper_cpp.model_path is required when binary_path is set")
	}
	return nil
}

// ApplyToEnv pushes file-level values into the environment for keys the user
// has not set, so the env resolver stays the single source of truth.
func (c *PipelineConfig) ApplyToEnv() {
	setIfEmpty("M2T_TRANSCRIBER", c.Transcriber)
	setIfEmpty("M2T_RECORDINGS_DIR", c.RecordingsDir)
	setIfEmpty("M2T_OUTPUT_DIR", c.OutputDir)
	setIfEmpty("M2T_WHISPER_MODEL", c.OpenAI.Model)
	setIfEmpty("WHISPER_CPP_BINARY", c.WhisperCpp.BinaryPath)
	setIfEmpty("WHISPER_CPP_MODEL", c.WhisperCpp.ModelPath)
}

func setIfEmpty(key, value string) {
	if value != "" && os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
