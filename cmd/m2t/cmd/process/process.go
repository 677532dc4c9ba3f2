package process

import (
	"os"

	"github.com/spf13/cobra"

	"memo-whisper/internal/app"
	"memo-whisper/internal/app/processor"
	"memo-whisper/internal/config"
)

var recordingsDir string
var outputDir string
var limit int
var showProgress bool

func init() {
	Cmd.Flags().StringVarP(&recordingsDir, "recordingsDir", "d", "",
		"recordingsDir overrides the Voice Memos folder to scan for new m4a/qta files")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "",
		"outputDir overrides the folder the transcript notes are written to")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0,
		"maximum number of recordings to process in this run, 0 means all")
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false,
		"render a progress bar over the recordings")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Transcribe the voice memos recorded since the last run",
	Long: `Transcribe the voice memos recorded since the last run

- Reads the last-run timestamp from last_timestamp.txt (absent file means process everything)
- Lists m4a/qta recordings newer than that timestamp, newest first
- Converts each to mp3 and transcribes it, writing one <timestamp>.md note per memo
- Stamps last_timestamp.txt with the current time after a clean pass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Flag overrides feed the same env keys the config resolver reads.
		if recordingsDir != "" {
			os.Setenv("M2T_RECORDINGS_DIR", recordingsDir)
		}
		if outputDir != "" {
			os.Setenv("M2T_OUTPUT_DIR", outputDir)
		}

		settings := config.GetSettings()

		if showProgress {
			p := app.InitializeProgressAwareProcessor(processor.ProgressConfig{Enabled: true})
			defer p.Close()
			return p.RunWithProgress(settings.RecordingsDir, limit)
		}

		p := app.InitializeProcessor()
		defer p.Close()
		return p.Run(settings.RecordingsDir, limit)
	},
}
