package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetDelta/internal/excel"
)

const workbookSheet = "Deltas"

// Workbook writes the report rows into a new .xlsx file
type Workbook struct {
	Dir string
}

func (Workbook) Name() string { return "xlsx" }

func (w Workbook) Dispatch(msg Message) (string, error) {
	editor := excel.CreateNewFile()
	defer editor.Close()

	if err := editor.RenameSheet("Sheet1", workbookSheet); err != nil {
		return "", fmt.Errorf("failed to name delta sheet: %w", err)
	}
	if err := fillWorkbook(editor, msg); err != nil {
		return "", err
	}

	path := outputPath(w.Dir, msg.Source, ".xlsx")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := editor.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

func fillWorkbook(editor *excel.Editor, msg Message) error {
	if err := editor.SetCellValue(workbookSheet, "A1", msg.Subject); err != nil {
		return err
	}

	body := msg.Body
	if body.Empty {
		return editor.SetCellValue(workbookSheet, "A3", body.Message)
	}

	const headerRow = 3
	if err := editor.SetRow(workbookSheet, headerRow, toRow(body.Header)); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	if err := editor.BoldRow(workbookSheet, headerRow, len(body.Header)); err != nil {
		return err
	}
	for i, row := range body.Rows {
		if err := editor.SetRow(workbookSheet, headerRow+1+i, toRow(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}

// toRow leaves empty strings as blank cells
func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		if c != "" {
			row[i] = c
		}
	}
	return row
}
