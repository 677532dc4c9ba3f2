package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"memo-whisper/internal/app/model"
)

// ToExcel writes the processing history to an xlsx workbook at outputFilePath.
func ToExcel(memos []model.Memo, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Memos")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Processed At"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Note Path"
	headerRow.AddCell().Value = "Error Message"

	for _, m := range memos {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(m.ID)
		row.AddCell().Value = m.FileName
		row.AddCell().Value = m.ProcessedAt.Format(time.RFC3339)
		row.AddCell().Value = fmt.Sprintf("%d", m.AudioDuration)
		row.AddCell().Value = m.Transcription
		row.AddCell().Value = m.NotePath
		row.AddCell().Value = m.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %q: %w", outputFilePath, err)
	}
	return nil
}
