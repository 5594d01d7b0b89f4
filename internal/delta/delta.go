// Package delta compares the primary and secondary column blocks of a plan
// sheet and collects the rows where the key field disagrees.
//
// The pipeline is Validate, then Extract; Compare runs both. Everything here
// is a pure function of the sheet and the Spec.
package delta

import (
	"strings"

	"sheetDelta/internal/sheet"
)

// EntityPair holds the two compared identifiers taken from the sheet title
type EntityPair struct {
	Primary   string
	Secondary string
}

// Complete reports whether both identifiers are set
func (p EntityPair) Complete() bool {
	return p.Primary != "" && p.Secondary != ""
}

// FieldValue is the ordered values of one field's columns on one side
type FieldValue []sheet.Value

// String joins the column values with a single space; null values render
// as empty strings.
func (fv FieldValue) String() string {
	parts := make([]string, len(fv))
	for i, v := range fv {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Record is one row whose key values differ
type Record struct {
	Row       int
	Primary   []FieldValue
	Secondary []FieldValue
}

// Report is the result of one comparison run
type Report struct {
	Pair    EntityPair
	Records []Record
	Spec    Spec
}

// HasDeltas reports whether any row differs
func (r *Report) HasDeltas() bool {
	return len(r.Records) > 0
}

// ParseLabel splits a sheet title into its two entity identifiers
func ParseLabel(title string) (EntityPair, error) {
	tokens := strings.Fields(title)
	if len(tokens) != 2 {
		return EntityPair{}, &MalformedLabelError{Title: title}
	}
	return EntityPair{Primary: tokens[0], Secondary: tokens[1]}, nil
}

// Validate checks the sheet has the shape the spec needs. It returns every
// applicable reason; an empty result means the sheet is valid.
func Validate(s sheet.Sheet, spec Spec) []string {
	var reasons []string
	if s.MaxColumn() < spec.MinColumns {
		reasons = append(reasons, ReasonMissingColumns)
	}
	if s.MaxRow() < spec.MinRows {
		reasons = append(reasons, ReasonInsufficientRows)
	}
	return reasons
}

// Extract parses the entity pair and scans rows FirstRow..MaxRow, emitting a
// Record for every row where the key values are not equal. Records come back
// in ascending row order.
func Extract(s sheet.Sheet, spec Spec) (EntityPair, []Record, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return EntityPair{}, nil, err
	}
	pair, err := ParseLabel(s.Title())
	if err != nil {
		return EntityPair{}, nil, err
	}

	key := spec.KeyField()
	var records []Record
	for row := spec.FirstRow; row <= s.MaxRow(); row++ {
		if s.Cell(key.Primary[0], row).Equal(s.Cell(key.Secondary[0], row)) {
			continue
		}
		records = append(records, readRecord(s, spec, row))
	}
	return pair, records, nil
}

func readRecord(s sheet.Sheet, spec Spec, row int) Record {
	rec := Record{
		Row:       row,
		Primary:   make([]FieldValue, len(spec.Fields)),
		Secondary: make([]FieldValue, len(spec.Fields)),
	}
	for i, f := range spec.Fields {
		rec.Primary[i] = readColumns(s, f.Primary, row)
		rec.Secondary[i] = readColumns(s, f.Secondary, row)
	}
	return rec
}

func readColumns(s sheet.Sheet, cols []int, row int) FieldValue {
	fv := make(FieldValue, len(cols))
	for i, col := range cols {
		fv[i] = s.Cell(col, row)
	}
	return fv
}

// Compare validates the sheet and extracts its deltas. Shape problems are
// returned as a *ShapeError and extraction is skipped; a bad title is
// returned as a *MalformedLabelError.
func Compare(s sheet.Sheet, spec Spec) (*Report, error) {
	spec, err := spec.Normalize()
	if err != nil {
		return nil, err
	}
	if reasons := Validate(s, spec); len(reasons) > 0 {
		return nil, &ShapeError{Reasons: reasons}
	}

	pair, records, err := Extract(s, spec)
	if err != nil {
		return nil, err
	}
	return &Report{Pair: pair, Records: records, Spec: spec}, nil
}
