// Package dispatch hands a rendered delta report to the places a user reviews
// it: a mail draft, a workbook, report files or the terminal.
package dispatch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sheetDelta/internal/report"
)

// Message is a composed report ready to be handed off
type Message struct {
	// To may be empty; the user fills it in before sending.
	To      string
	Subject string
	// Source is the path of the compared workbook
	Source string
	Body   report.Body
	// ID and Date identify the run that produced the message. Zero values
	// leave them to the mail writer.
	ID   string
	Date time.Time
}

// NewMessage composes a message with the conventional
// "<prefix>: <file name>" subject.
func NewMessage(prefix, to, source string, body report.Body) Message {
	return Message{
		To:      strings.TrimSpace(to),
		Subject: fmt.Sprintf("%s: %s", prefix, filepath.Base(source)),
		Source:  source,
		Body:    body,
	}
}

// Dispatcher delivers a message and reports where it went
type Dispatcher interface {
	Name() string
	Dispatch(msg Message) (string, error)
}

// New builds the dispatchers named in the report configuration
func New(names []string, outputDir string, stdout io.Writer) ([]Dispatcher, error) {
	dispatchers := make([]Dispatcher, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "eml":
			dispatchers = append(dispatchers, EMLDraft{Dir: outputDir})
		case "xlsx":
			dispatchers = append(dispatchers, Workbook{Dir: outputDir})
		case "terminal":
			dispatchers = append(dispatchers, Terminal{Out: stdout})
		case "html":
			dispatchers = append(dispatchers, File{Dir: outputDir, Format: report.FormatHTML})
		case "markdown", "md":
			dispatchers = append(dispatchers, File{Dir: outputDir, Format: report.FormatMarkdown})
		case "toon":
			dispatchers = append(dispatchers, File{Dir: outputDir, Format: report.FormatTOON})
		default:
			return nil, fmt.Errorf("unknown dispatch target %q", name)
		}
	}
	return dispatchers, nil
}

// outputPath names the artifact written for a source workbook
func outputPath(dir, source, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"-deltas"+ext)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Terminal prints the report as a table
type Terminal struct {
	Out io.Writer
}

func (Terminal) Name() string { return "terminal" }

func (t Terminal) Dispatch(msg Message) (string, error) {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintf(out, "%s\n\n%s", msg.Subject, report.Terminal(msg.Body)); err != nil {
		return "", fmt.Errorf("failed to print report: %w", err)
	}
	return "terminal", nil
}

// File writes the report in one text format next to the other outputs
type File struct {
	Dir    string
	Format report.Format
}

func (f File) Name() string { return string(f.Format) }

func (f File) Dispatch(msg Message) (string, error) {
	text, err := report.Encode(f.Format, msg.Body)
	if err != nil {
		return "", err
	}
	path := outputPath(f.Dir, msg.Source, f.Format.Ext())
	if err := writeFile(path, []byte(text)); err != nil {
		return "", err
	}
	return path, nil
}
