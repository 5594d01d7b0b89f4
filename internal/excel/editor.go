package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Editor struct {
	file *excelize.File
}

// OpenFile opens an existing Excel file
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Editor{file: file}, nil
}

// CreateNewFile creates a new Excel file in memory
func CreateNewFile() *Editor {
	return &Editor{file: excelize.NewFile()}
}

// ActiveSheet returns the name of the sheet the workbook opens on
func (e *Editor) ActiveSheet() string {
	if name := e.file.GetSheetName(e.file.GetActiveSheetIndex()); name != "" {
		return name
	}
	if sheets := e.file.GetSheetList(); len(sheets) > 0 {
		return sheets[0]
	}
	return ""
}

// RenameSheet changes a sheet name
func (e *Editor) RenameSheet(from, to string) error {
	return e.file.SetSheetName(from, to)
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// SetRow writes values left to right starting at column A of the given row
func (e *Editor) SetRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return e.file.SetSheetRow(sheet, cell, &values)
}

// GetCellDataType returns the stored type of a cell
func (e *Editor) GetCellDataType(sheet, cell string) (excelize.CellType, error) {
	return e.file.GetCellType(sheet, cell)
}

// GetAllRows returns all rows from a sheet with unformatted cell values
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// Dimension returns the used range declared by the sheet, as column and
// row counts. ok is false when the sheet declares none.
func (e *Editor) Dimension(sheet string) (cols, rows int, ok bool) {
	ref, err := e.file.GetSheetDimension(sheet)
	if err != nil || ref == "" {
		return 0, 0, false
	}
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		ref = ref[i+1:]
	}
	cols, rows, err = excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}

// BoldRow applies a bold font to the first n cells of a row
func (e *Editor) BoldRow(sheet string, row, n int) error {
	if n < 1 {
		return nil
	}
	style, err := e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(n, row)
	if err != nil {
		return err
	}
	if err := e.file.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to apply header style: %w", err)
	}
	return nil
}

// SaveAs saves the Excel file with a new name
func (e *Editor) SaveAs(filepath string) error {
	return e.file.SaveAs(filepath)
}

// Close closes the Excel file
func (e *Editor) Close() error {
	return e.file.Close()
}

// ColumnNumber converts a column letter such as "T" to its 1-based number
func ColumnNumber(name string) (int, error) {
	return excelize.ColumnNameToNumber(strings.TrimSpace(name))
}

// ColumnName converts a 1-based column number to its letter
func ColumnName(n int) (string, error) {
	return excelize.ColumnNumberToName(n)
}
