package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheetDelta/internal/sheet"
)

// LoadFile opens a workbook and loads its active sheet
func LoadFile(path string) (*sheet.Grid, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer editor.Close()

	return editor.LoadActiveSheet()
}

// LoadActiveSheet loads the sheet the workbook opens on
func (e *Editor) LoadActiveSheet() (*sheet.Grid, error) {
	name := e.ActiveSheet()
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return e.LoadSheet(name)
}

// LoadSheet reads a whole sheet into memory. The sheet name becomes the grid
// title; cell types are kept so that a number never compares equal to text.
func (e *Editor) LoadSheet(name string) (*sheet.Grid, error) {
	rows, err := e.GetAllRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}

	maxCol := 0
	for _, row := range rows {
		maxCol = max(maxCol, len(row))
	}
	maxRow := len(rows)
	if cols, rowCount, ok := e.Dimension(name); ok {
		maxCol = max(maxCol, cols)
		maxRow = max(maxRow, rowCount)
	}

	grid := sheet.NewGrid(name, maxCol, maxRow)
	for r, row := range rows {
		// empty strings are dropped from rows, so every column is checked
		// for a stored empty text cell
		for c := 0; c < maxCol; c++ {
			raw := ""
			if c < len(row) {
				raw = row[c]
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := e.GetCellDataType(name, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read type of %s!%s: %w", name, cell, err)
			}
			if raw == "" && !isTextType(typ) {
				continue
			}
			grid.Set(c+1, r+1, cellValue(typ, raw))
		}
	}
	return grid, nil
}

func isTextType(typ excelize.CellType) bool {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return true
	}
	return false
}

// cellValue converts a raw cell string and its stored type into a typed
// value. Untyped cells hold numbers.
func cellValue(typ excelize.CellType, raw string) sheet.Value {
	switch typ {
	case excelize.CellTypeBool:
		return sheet.Bool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return sheet.Number(n)
		}
	}
	return sheet.Text(raw)
}
