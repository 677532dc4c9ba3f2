//go:build wireinject
// +build wireinject

package app

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/wire"

	"memo-whisper/internal/app/api"
	"memo-whisper/internal/app/api/openai"
	"memo-whisper/internal/app/api/openai/whisper"
	"memo-whisper/internal/app/api/whisper_cpp"
	"memo-whisper/internal/app/checkpoint"
	"memo-whisper/internal/app/note"
	"memo-whisper/internal/app/processor"
	"memo-whisper/internal/app/repository"
	"memo-whisper/internal/app/repository/sqlite"
	"memo-whisper/internal/app/util/files"
	"memo-whisper/internal/config"
)

// provideTranscriber picks the backend from M2T_TRANSCRIBER: openai remote
// service, or a locally compiled whisper.cpp binary. The chosen transcriber
// is built once here and reused for every file in the run.
func provideTranscriber() api.Transcriber {
	settings := config.GetSettings()
	if err := config.ValidateSettings(settings); err != nil {
		log.Fatalf("transcriber configuration error: %v\n", err)
	}

	if settings.Transcriber == config.TranscriberOpenAI {
		client, err := openai.GetClient()
		if err != nil {
			log.Fatalf("openai client error: %v\n", err)
		}
		return whisper.NewRemoteTranscriber(client, settings.WhisperModel)
	}

	binaryPath := os.Getenv("WHISPER_CPP_BINARY")
	modelPath := os.Getenv("WHISPER_CPP_MODEL")
	return whisper_cpp.NewLocalTranscriber(binaryPath, modelPath)
}

func provideHistoryDAO() repository.HistoryDAO {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	dbPath := filepath.Join(projectRoot, "data/memos.db")
	if err := files.CheckAndCreateDirectory(filepath.Dir(dbPath)); err != nil {
		log.Fatalf("Failed to create data directory: %v\n", err)
	}
	return sqlite.NewSQLiteDB(dbPath)
}

func provideCheckpointStore() *checkpoint.Store {
	return checkpoint.NewStore(checkpoint.DefaultFileName)
}

func provideNoteWriter() *note.Writer {
	return note.NewWriter(config.GetSettings().OutputDir)
}

func InitializeProcessor() *processor.Processor {
	wire.Build(processor.NewProcessor, provideTranscriber, provideHistoryDAO,
		provideCheckpointStore, provideNoteWriter)
	return &processor.Processor{}
}

func InitializeProgressAwareProcessor(cfg processor.ProgressConfig) *processor.ProgressAwareProcessor {
	wire.Build(processor.NewProcessor, processor.NewProgressAwareProcessor,
		provideTranscriber, provideHistoryDAO, provideCheckpointStore, provideNoteWriter)
	return &processor.ProgressAwareProcessor{}
}

func InitializeHistoryDAO() repository.HistoryDAO {
	wire.Build(provideHistoryDAO)
	return nil
}
