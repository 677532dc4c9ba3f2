package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"memo-whisper/internal/app"
	"memo-whisper/internal/app/export"
)

var outputFile string

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "memos.xlsx",
		"path of the xlsx workbook to write")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the processing history to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		dao := app.InitializeHistoryDAO()
		defer dao.Close()

		memos, err := dao.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(memos, outputFile); err != nil {
			return err
		}
		fmt.Printf("Exported %d records to %s\n", len(memos), outputFile)
		return nil
	},
}
