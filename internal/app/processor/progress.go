package processor

import (
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"memo-whisper/internal/app/discovery"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &ProgressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
		),
	)

	return &ProgressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *ProgressBar) Complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

// ProgressAwareProcessor renders an mpb bar over the candidate loop. The
// underlying run semantics are unchanged: sequential, halt on first error,
// checkpoint advanced only after a clean pass.
type ProgressAwareProcessor struct {
	*Processor
	progressManager *ProgressManager
}

func NewProgressAwareProcessor(p *Processor, config ProgressConfig) *ProgressAwareProcessor {
	return &ProgressAwareProcessor{
		Processor:       p,
		progressManager: NewProgressManager(config),
	}
}

func (pap *ProgressAwareProcessor) Close() error {
	if pap.progressManager != nil {
		pap.progressManager.Shutdown()
	}
	return pap.Processor.Close()
}

// RunWithProgress mirrors Processor.Run with a bar across the candidates.
func (pap *ProgressAwareProcessor) RunWithProgress(recordingsDir string, limit int) error {
	after, hasAfter, err := pap.store.Read()
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

	if len(fileInfos) == 0 {
		log.Printf("no new recordings in %s\n", recordingsDir)
		return pap.store.Write(pap.now().Unix())
	}

	bar := pap.progressManager.CreateBar(len(fileInfos), "Transcribing memos")
	defer pap.progressManager.Wait()

	for _, file := range fileInfos {
		if err := pap.processOne(file); err != nil {
			bar.Complete()
			return err
		}
		bar.Increment()
	}

	return pap.store.Write(pap.now().Unix())
}
