package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"memo-whisper/cmd/m2t/cmd/export"
	"memo-whisper/cmd/m2t/cmd/list"
	"memo-whisper/cmd/m2t/cmd/process"
	"memo-whisper/cmd/m2t/cmd/version"
	appconfig "memo-whisper/internal/app/config"
)

var Verbose bool
var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m2t",
	Short: "An application that turns new voice memos into transcript notes",
	Long: `An application that turns new voice memos into transcript notes.
- Watches the Voice Memos recordings folder for files newer than the last run
- Converts each recording to mp3 and transcribes it with whisper
- Writes the transcript as a markdown note into the audio inbox
- The processed records are saved to sqlite.`,
	TraverseChildren: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return nil
		}
		cfg, err := appconfig.LoadPipelineConfig(configFile)
		if err != nil {
			return err
		}
		cfg.ApplyToEnv()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"optional YAML config file, values yield to environment variables")
}
