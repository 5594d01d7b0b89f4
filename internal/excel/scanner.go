package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/logger"
)

// Candidate describes one workbook found by ScanDirectory
type Candidate struct {
	Path      string
	Title     string
	MaxRow    int
	MaxColumn int
	// Reasons lists shape problems against the scan spec; empty means the
	// workbook can be compared.
	Reasons []string
	Err     error
}

// Ready reports whether the workbook loaded and passed shape validation
func (c Candidate) Ready() bool {
	return c.Err == nil && len(c.Reasons) == 0
}

// IsWorkbook reports whether a path has a spreadsheet extension we can read
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// ListWorkbooks returns all .xlsx and .xlsm files under dir, sorted by path.
// Lock files left behind by an open workbook ("~$name.xlsx") are skipped.
func ListWorkbooks(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && IsWorkbook(path) && !strings.HasPrefix(info.Name(), "~$") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ScanDirectory loads the active sheet of every workbook under dir and checks
// it against spec. A workbook that cannot be read is reported with its error
// instead of failing the scan.
func ScanDirectory(dir string, spec delta.Spec) ([]Candidate, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}

	files, err := ListWorkbooks(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list workbooks: %w", err)
	}

	candidates := make([]Candidate, 0, len(files))
	for _, path := range files {
		candidates = append(candidates, scanWorkbook(path, spec))
	}
	return candidates, nil
}

func scanWorkbook(path string, spec delta.Spec) Candidate {
	c := Candidate{Path: path}

	grid, err := LoadFile(path)
	if err != nil {
		logger.Warn("Failed to scan workbook", "file", filepath.Base(path), "error", err)
		c.Err = err
		return c
	}

	c.Title = grid.Title()
	c.MaxRow = grid.MaxRow()
	c.MaxColumn = grid.MaxColumn()
	c.Reasons = delta.Validate(grid, spec)
	if _, err := delta.ParseLabel(grid.Title()); err != nil {
		c.Err = err
	}

	logger.Debug("Scanned workbook",
		"file", filepath.Base(path),
		"title", c.Title,
		"max_row", c.MaxRow,
		"max_column", c.MaxColumn,
		"reasons", len(c.Reasons))
	return c
}
