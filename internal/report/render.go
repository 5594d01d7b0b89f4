// Package report turns delta records into a report body and formats that
// body for mail, markdown, terminal and TOON consumers.
package report

import (
	"errors"
	"fmt"
	"strconv"

	"sheetDelta/internal/delta"
)

// ErrMissingPair is returned when records are rendered without the two
// entity identifiers they belong to.
var ErrMissingPair = errors.New("report: entity pair is required to render deltas")

// RowHeader labels the row number column when a spec surfaces it
const RowHeader = "Row"

// Body is a rendered report. Exactly one of the two forms is populated:
// Empty with Message, or Header with Rows.
type Body struct {
	Pair    delta.EntityPair
	Empty   bool
	Message string
	Header  []string
	Rows    [][]string
}

// Renderer renders records captured with one spec
type Renderer struct {
	spec delta.Spec
}

func NewRenderer(spec delta.Spec) *Renderer {
	return &Renderer{spec: spec}
}

// NoDifferencesMessage is the fixed text rendered when no row differs
func NoDifferencesMessage(pair delta.EntityPair) string {
	return fmt.Sprintf("No differences found between %s and %s.", pair.Primary, pair.Secondary)
}

// Render builds the body for the given pair and records. Output depends only
// on its inputs.
func (r *Renderer) Render(pair delta.EntityPair, records []delta.Record) (Body, error) {
	if len(records) == 0 {
		return Body{
			Pair:    pair,
			Empty:   true,
			Message: NoDifferencesMessage(pair),
		}, nil
	}
	if !pair.Complete() {
		return Body{}, ErrMissingPair
	}

	body := Body{
		Pair:   pair,
		Header: r.header(pair),
		Rows:   make([][]string, 0, len(records)),
	}
	for _, rec := range records {
		body.Rows = append(body.Rows, r.row(rec))
	}
	return body, nil
}

// RenderReport renders a full comparison result
func (r *Renderer) RenderReport(rep *delta.Report) (Body, error) {
	return r.Render(rep.Pair, rep.Records)
}

func (r *Renderer) header(pair delta.EntityPair) []string {
	labels := r.spec.Labels()
	header := make([]string, 0, 2*len(labels)+1)
	if r.spec.ShowRow {
		header = append(header, RowHeader)
	}
	for _, l := range labels {
		header = append(header, pair.Primary+" "+l)
	}
	for _, l := range labels {
		header = append(header, pair.Secondary+" "+l)
	}
	return header
}

func (r *Renderer) row(rec delta.Record) []string {
	cells := make([]string, 0, len(rec.Primary)+len(rec.Secondary)+1)
	if r.spec.ShowRow {
		cells = append(cells, strconv.Itoa(rec.Row))
	}
	for _, fv := range rec.Primary {
		cells = append(cells, fv.String())
	}
	for _, fv := range rec.Secondary {
		cells = append(cells, fv.String())
	}
	return cells
}
