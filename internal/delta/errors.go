package delta

import (
	"fmt"
	"strings"
)

// Shape reasons reported by Validate
const (
	ReasonMissingColumns   = "missing required columns"
	ReasonInsufficientRows = "insufficient row count"
)

// ShapeError reports every shape problem found on a sheet
type ShapeError struct {
	Reasons []string
}

func (e *ShapeError) Error() string {
	return "sheet shape validation failed: " + strings.Join(e.Reasons, "; ")
}

// MalformedLabelError is returned when a sheet title does not split into
// exactly two entity identifiers.
type MalformedLabelError struct {
	Title string
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("sheet title %q must name exactly two entities separated by whitespace", e.Title)
}
