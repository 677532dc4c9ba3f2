package model

import "time"

// Memo is one processing-history record: a single recording that was picked
// up by a run, whether or not it transcribed successfully.
type Memo struct {
	ID            int
	FileName      string
	SourcePath    string
	Mp3FileName   string
	AudioDuration int
	Transcription string
	NotePath      string
	ProcessedAt   time.Time
	HasError      int
	ErrorMessage  string
}
