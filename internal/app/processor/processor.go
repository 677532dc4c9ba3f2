package processor

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"memo-whisper/internal/app/api"
	"memo-whisper/internal/app/audio"
	"memo-whisper/internal/app/checkpoint"
	"memo-whisper/internal/app/discovery"
	"memo-whisper/internal/app/model"
	"memo-whisper/internal/app/note"
	"memo-whisper/internal/app/repository"
)

// TempMp3Name is the fixed working file every conversion writes to. One run
// at a time is assumed; overlapping runs would race on it.
const TempMp3Name = "temp.mp3"

// Processor drives one run of the pipeline: read the checkpoint, discover new
// recordings, convert and transcribe each one, write the transcript notes,
// then advance the checkpoint.
type Processor struct {
	transcriber api.Transcriber
	db          repository.HistoryDAO
	store       *checkpoint.Store
	notes       *note.Writer
	workDir     string
	now         func() time.Time

	// conversion collaborators, swappable in tests
	convert       func(inputPath, mp3Path string) error
	probeDuration func(mp3Path string) (int, error)
}

func NewProcessor(transcriber api.Transcriber, historyDAO repository.HistoryDAO,
	store *checkpoint.Store, notes *note.Writer) *Processor {
	return &Processor{
		transcriber:   transcriber,
		db:            historyDAO,
		store:         store,
		notes:         notes,
		now:           time.Now,
		convert:       audio.ConvertToMp3,
		probeDuration: audio.GetAudioDuration,
	}
}

func (p *Processor) Close() error {
	return p.db.Close()
}

// SetWorkDir places the temporary MP3 under dir instead of the current
// working directory.
func (p *Processor) SetWorkDir(dir string) {
	p.workDir = dir
}

// SetClock is used by tests that need controlled timestamps.
func (p *Processor) SetClock(now func() time.Time) {
	p.now = now
}

// Run executes one pass over recordingsDir. limit <= 0 means no cap. The
// first failing candidate aborts the run and the checkpoint stays put, so the
// failed and all later recordings are retried on the next invocation.
func (p *Processor) Run(recordingsDir string, limit int) error {
	after, hasAfter, err := p.store.Read()
	if err != nil {
		return err
	}

	fileInfos, err := discovery.Find(recordingsDir, after, hasAfter)
	if err != nil {
		return err
	}

	if limit > 0 && len(fileInfos) > limit {
		fileInfos = fileInfos[:limit]
	}

	for _, file := range fileInfos {
		if err := p.processOne(file); err != nil {
			return err
		}
	}

	// Stamp wall-clock now, not the newest processed file time. Files that
	// land between discovery and this write are skipped until they are older
	// than the next run's boundary; that trade-off is long-standing behavior.
	if err := p.store.Write(p.now().Unix()); err != nil {
		return err
	}

	if len(fileInfos) == 0 {
		log.Printf("no new recordings in %s\n", recordingsDir)
	}
	return nil
}

func (p *Processor) processOne(file model.FileInfo) error {
	fmt.Printf("Processing file '%s'\n", file.Name)

	// The checkpoint is the only filter; a file can come around again when it
	// was touched after the last stamp. Surface that instead of guessing.
	if id, err := p.db.CheckIfFileProcessed(file.Name); err == nil {
		log.Printf("'%s' was already transcribed as record %d, transcribing again\n", file.Name, id)
	}

	mp3FilePath := filepath.Join(p.workDir, TempMp3Name)

	err := p.convert(file.FullPath, mp3FilePath)
	if err != nil {
		p.db.RecordToDB(file.FullPath, file.Name, TempMp3Name, 0, "", "",
			p.now(), 1, fmt.Sprintf("conversion error: %v", err))
		return err
	}

	duration, err := p.probeDuration(mp3FilePath)
	if err != nil {
		// Duration only feeds the history record; a probe failure should not
		// kill an otherwise transcribable recording.
		log.Printf("failed to get audio duration for '%s': %v\n", file.Name, err)
		duration = 0
	}

	transcription, err := p.transcriber.Transcript(mp3FilePath)
	if err != nil {
		p.db.RecordToDB(file.FullPath, file.Name, TempMp3Name, duration, "", "",
			p.now(), 1, fmt.Sprintf("transcription error: %v", err))
		return err
	}

	notePath, err := p.notes.Write(transcription)
	if err != nil {
		p.db.RecordToDB(file.FullPath, file.Name, TempMp3Name, duration, transcription, "",
			p.now(), 1, fmt.Sprintf("note write error: %v", err))
		return err
	}

	p.db.RecordToDB(file.FullPath, file.Name, TempMp3Name, duration, transcription, notePath,
		p.now(), 0, "")

	fmt.Printf("Transcription completed for file '%s':\n%s\n", file.Name, transcription)
	return nil
}
