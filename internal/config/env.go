package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Transcriber selection values for M2T_TRANSCRIBER.
const (
	TranscriberOpenAI     = "openai"
	TranscriberWhisperCpp = "whisper_cpp"
)

// Settings holds the resolved runtime configuration for one invocation.
type Settings struct {
	RecordingsDir string
	OutputDir     string
	Transcriber   string
	WhisperModel  string
}

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	// Look for .env file, but don't fail if not found (environment variables might be set system-wide)
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			fmt.Printf("✅ Loaded environment variables from %s\n", envPath)
			break
		}
	}

	return nil
}

// GetSettings resolves directories and transcriber selection from the
// environment. The defaults mirror the macOS Voice Memos container and an
// Obsidian audio inbox, both derived from HOME; with HOME unset the derived
// paths are junk and surface downstream as a directory-not-found error.
func GetSettings() *Settings {
	home := os.Getenv("HOME")

	settings := &Settings{
		RecordingsDir: strings.TrimSpace(os.Getenv("M2T_RECORDINGS_DIR")),
		OutputDir:     strings.TrimSpace(os.Getenv("M2T_OUTPUT_DIR")),
		Transcriber:   strings.TrimSpace(os.Getenv("M2T_TRANSCRIBER")),
		WhisperModel:  strings.TrimSpace(os.Getenv("M2T_WHISPER_MODEL")),
	}

	if settings.RecordingsDir == "" {
		settings.RecordingsDir = filepath.Join(home,
			"Library/Group Containers/group.com.apple.VoiceMemos.shared/Recordings")
	}
	if settings.OutputDir == "" {
		settings.OutputDir = filepath.Join(home,
			"Library/Mobile Documents/iCloud~md~obsidian/Documents/Personal/01_Audio inbox")
	}
	if settings.Transcriber == "" {
		settings.Transcriber = TranscriberWhisperCpp
	}

	return settings
}

// ValidateSettings reports which transcriber backends are usable without failing.
func ValidateSettings(settings *Settings) error {
	switch settings.Transcriber {
	case TranscriberOpenAI:
		if strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) == "" {
			return fmt.Errorf("M2T_TRANSCRIBER=openai requires OPENAI_API_KEY in environment or .env file")
		}
	case TranscriberWhisperCpp:
		if os.Getenv("WHISPER_CPP_BINARY") == "" || os.Getenv("WHISPER_CPP_MODEL") == "" {
			return fmt.Errorf("M2T_TRANSCRIBER=whisper_cpp requires WHISPER_CPP_BINARY and WHISPER_CPP_MODEL to be set")
		}
	default:
		return fmt.Errorf("unknown transcriber %q (expected %q or %q)",
			settings.Transcriber, TranscriberOpenAI, TranscriberWhisperCpp)
	}
	return nil
}

// InitializeConfig loads environment and resolves settings.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Settings, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	return GetSettings(), nil
}
