// Package picker supplies the workbook path a comparison runs on.
package picker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"sheetDelta/internal/excel"
)

// ErrCancelled is returned when the user closes the picker or submits
// nothing.
var ErrCancelled = errors.New("no file selected")

// Picker synchronously returns a workbook path
type Picker interface {
	Pick() (string, error)
}

// Static always picks the same path
type Static string

func (s Static) Pick() (string, error) {
	path := strings.TrimSpace(string(s))
	if path == "" {
		return "", ErrCancelled
	}
	if !excel.IsWorkbook(path) {
		return "", fmt.Errorf("%s is not an .xlsx or .xlsm workbook", path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	return path, nil
}
