// Package run wires the workbook loader, the delta engine, the renderer and
// the dispatchers into one comparison run.
package run

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/dispatch"
	"sheetDelta/internal/excel"
	"sheetDelta/internal/logger"
	"sheetDelta/internal/report"
)

// Options configures a single run
type Options struct {
	Spec          delta.Spec
	SubjectPrefix string
	Recipient     string
	Dispatchers   []dispatch.Dispatcher
}

// Result describes what a run produced
type Result struct {
	ID      string
	Report  *delta.Report
	Body    report.Body
	Outputs []string
}

// Compare loads the active sheet of the workbook at path, compares it and
// hands the rendered body to every dispatcher. Dispatching stops at the
// first failing dispatcher.
func Compare(path string, opts Options) (*Result, error) {
	res := &Result{ID: uuid.NewString()}
	log := logger.With("run_id", res.ID, "file", filepath.Base(path), "variant", opts.Spec.Name)
	start := time.Now()

	log.Info("Starting compare")

	grid, err := excel.LoadFile(path)
	if err != nil {
		log.Error("Failed to load workbook", "error", err)
		return nil, fmt.Errorf("failed to load workbook: %w", err)
	}
	log.Debug("Loaded sheet", "title", grid.Title(), "max_row", grid.MaxRow(), "max_column", grid.MaxColumn())

	rep, err := delta.Compare(grid, opts.Spec)
	if err != nil {
		log.Error("Compare failed", "error", err)
		return nil, err
	}
	res.Report = rep

	body, err := report.NewRenderer(rep.Spec).RenderReport(rep)
	if err != nil {
		log.Error("Failed to render report", "error", err)
		return nil, err
	}
	res.Body = body
	log.Info("Compared sheet",
		"primary", rep.Pair.Primary,
		"secondary", rep.Pair.Secondary,
		"deltas", len(rep.Records),
		"duration", time.Since(start))

	msg := dispatch.NewMessage(opts.SubjectPrefix, opts.Recipient, path, body)
	msg.ID = res.ID
	msg.Date = start
	for _, d := range opts.Dispatchers {
		where, err := d.Dispatch(msg)
		if err != nil {
			log.Error("Dispatch failed", "dispatcher", d.Name(), "error", err)
			return res, fmt.Errorf("%s dispatch failed: %w", d.Name(), err)
		}
		log.Info("Dispatched report", "dispatcher", d.Name(), "output", where)
		res.Outputs = append(res.Outputs, where)
	}

	return res, nil
}
