package repository

import (
	"time"

	"memo-whisper/internal/app/model"
)

type HistoryDAO interface {
	Close() error

	GetAll() ([]model.Memo, error)

	CheckIfFileProcessed(fileName string) (int, error)

	RecordToDB(sourcePath, fileName, mp3FileName string, audioDuration int, transcription, notePath string,
		processedAt time.Time, hasError int, errorMessage string)
}
