package testutil

import (
	"database/sql"
	"sync"
	"time"

	"memo-whisper/internal/app/model"
)

// MockHistoryDAO is an in-memory mock implementation of the
// repository.HistoryDAO interface.
type MockHistoryDAO struct {
	mu sync.RWMutex

	// In-memory storage
	memos     map[int]*model.Memo
	nextID    int
	fileIndex map[string]int // filename -> memo ID (successful records only)

	// Configuration options
	ErrorMap map[string]error // method -> error
	Closed   bool
}

// NewMockHistoryDAO creates a new MockHistoryDAO with sensible defaults
func NewMockHistoryDAO() *MockHistoryDAO {
	return &MockHistoryDAO{
		memos:     make(map[int]*model.Memo),
		nextID:    1,
		fileIndex: make(map[string]int),
		ErrorMap:  make(map[string]error),
	}
}

// Close implements the HistoryDAO interface
func (m *MockHistoryDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.ErrorMap["Close"]
}

// CheckIfFileProcessed implements the HistoryDAO interface
func (m *MockHistoryDAO) CheckIfFileProcessed(fileName string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, exists := m.ErrorMap["CheckIfFileProcessed"]; exists {
		return 0, err
	}
	if id, ok := m.fileIndex[fileName]; ok {
		return id, nil
	}
	return 0, sql.ErrNoRows
}

// RecordToDB implements the HistoryDAO interface
func (m *MockHistoryDAO) RecordToDB(sourcePath, fileName, mp3FileName string, audioDuration int,
	transcription, notePath string, processedAt time.Time, hasError int, errorMessage string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.memos[id] = &model.Memo{
		ID:            id,
		FileName:      fileName,
		SourcePath:    sourcePath,
		Mp3FileName:   mp3FileName,
		AudioDuration: audioDuration,
		Transcription: transcription,
		NotePath:      notePath,
		ProcessedAt:   processedAt,
		HasError:      hasError,
		ErrorMessage:  errorMessage,
	}
	if hasError == 0 {
		m.fileIndex[fileName] = id
	}
}

// GetAll implements the HistoryDAO interface
func (m *MockHistoryDAO) GetAll() ([]model.Memo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, exists := m.ErrorMap["GetAll"]; exists {
		return nil, err
	}

	all := make([]model.Memo, 0, len(m.memos))
	for id := 1; id < m.nextID; id++ {
		if memo, ok := m.memos[id]; ok {
			all = append(all, *memo)
		}
	}
	return all, nil
}

// Records returns a snapshot of everything recorded so far.
func (m *MockHistoryDAO) Records() []model.Memo {
	all, _ := m.GetAll()
	return all
}
