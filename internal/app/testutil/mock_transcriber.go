package testutil

import (
	"sync"
	"time"
)

// MockTranscriber is a mock implementation of the api.Transcriber interface
// with configurable per-file responses and errors.
type MockTranscriber struct {
	mu sync.RWMutex

	// Configuration options
	DefaultError    error
	DefaultResponse string

	// State tracking
	CallCount   int
	CallHistory []TranscriptionCall
	ErrorMap    map[string]error
	ResponseMap map[string]string
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	Timestamp     time.Time
	Response      string
	Error         error
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ErrorMap:        make(map[string]error),
		ResponseMap:     make(map[string]string),
		CallHistory:     make([]TranscriptionCall, 0),
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++

	response := m.DefaultResponse
	if r, exists := m.ResponseMap[inputFilePath]; exists {
		response = r
	}

	err := m.DefaultError
	if e, exists := m.ErrorMap[inputFilePath]; exists {
		err = e
	}
	if err != nil {
		response = ""
	}

	m.CallHistory = append(m.CallHistory, TranscriptionCall{
		InputFilePath: inputFilePath,
		Timestamp:     time.Now(),
		Response:      response,
		Error:         err,
	})

	return response, err
}

// SetResponse configures the transcript returned for a specific file
func (m *MockTranscriber) SetResponse(inputFilePath, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponseMap[inputFilePath] = response
}

// SetError configures the error returned for a specific file
func (m *MockTranscriber) SetError(inputFilePath string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMap[inputFilePath] = err
}
