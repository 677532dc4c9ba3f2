package list

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"memo-whisper/internal/app/checkpoint"
	"memo-whisper/internal/app/discovery"
	"memo-whisper/internal/config"
)

var recordingsDir string
var all bool

func init() {
	Cmd.Flags().StringVarP(&recordingsDir, "recordingsDir", "d", "",
		"recordingsDir overrides the Voice Memos folder to scan")
	Cmd.Flags().BoolVarP(&all, "all", "a", false,
		"list every matching recording, ignoring the last-run timestamp")
}

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "Show the recordings the next process run would pick up",
	RunE: func(cmd *cobra.Command, args []string) error {
		if recordingsDir != "" {
			os.Setenv("M2T_RECORDINGS_DIR", recordingsDir)
		}
		settings := config.GetSettings()

		after, hasAfter := int64(0), false
		if !all {
			var err error
			after, hasAfter, err = checkpoint.NewStore(checkpoint.DefaultFileName).Read()
			if err != nil {
				return err
			}
		}

		fileInfos, err := discovery.Find(settings.RecordingsDir, after, hasAfter)
		if err != nil {
			return err
		}

		if len(fileInfos) == 0 {
			fmt.Println("No pending recordings.")
			return nil
		}
		for _, f := range fileInfos {
			fmt.Printf("%s  %s\n", f.ModTime.Format(time.RFC3339), f.Name)
		}
		return nil
	},
}
