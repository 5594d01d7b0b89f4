package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	toon "github.com/mateuszkardas/toon-go"
)

var emptyHTML = template.Must(template.New("empty").Parse(
	`<p style="font-family:Calibri,Arial,sans-serif;font-size:11pt">No differences found between <b>{{.Pair.Primary}}</b> and <b>{{.Pair.Secondary}}</b>.</p>
`))

var tableHTML = template.Must(template.New("table").Parse(
	`<p style="font-family:Calibri,Arial,sans-serif;font-size:11pt">Deltas between <b>{{.Pair.Primary}}</b> and <b>{{.Pair.Secondary}}</b>: {{len .Rows}} row(s).</p>
<table style="border-collapse:collapse;font-family:Calibri,Arial,sans-serif;font-size:10pt">
<thead><tr>{{range .Header}}<th style="border:1px solid #999;padding:2px 6px;background:#ddebf7">{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td style="border:1px solid #999;padding:2px 6px">{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
`))

// HTML renders the body as an HTML fragment suitable for a mail message
func HTML(b Body) (string, error) {
	tmpl := tableHTML
	if b.Empty {
		tmpl = emptyHTML
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, b); err != nil {
		return "", fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.String(), nil
}

var markdownCell = lipgloss.NewStyle().Padding(0, 1)

// Markdown renders the body as a markdown table, or the plain message when
// nothing differs.
func Markdown(b Body) string {
	if b.Empty {
		return b.Message + "\n"
	}

	rows := make([][]string, len(b.Rows))
	for i, row := range b.Rows {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			rows[i][j] = escapeMarkdownCell(c)
		}
	}

	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style { return markdownCell }).
		Headers(b.Header...).
		Rows(rows...)

	return fmt.Sprintf("# Deltas: %s vs %s\n\n%s\n", b.Pair.Primary, b.Pair.Secondary, t.String())
}

func escapeMarkdownCell(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

var (
	terminalBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	terminalTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// Terminal renders the body as a bordered table for a terminal preview
func Terminal(b Body) string {
	if b.Empty {
		return b.Message + "\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(terminalBorder).
		Headers(b.Header...).
		Rows(b.Rows...)

	title := terminalTitle.Render(fmt.Sprintf("Deltas: %s vs %s (%d rows)", b.Pair.Primary, b.Pair.Secondary, len(b.Rows)))
	return title + "\n" + t.String() + "\n"
}

// TOON renders the body in Token-Oriented Object Notation. The encoder
// walks objects in map order, so the body is passed as nested arrays: the
// entity pair, then either the message or the header followed by the rows.
func TOON(b Body) (string, error) {
	doc := []any{[]any{b.Pair.Primary, b.Pair.Secondary}}
	if b.Empty {
		doc = append(doc, []any{b.Message})
	} else {
		doc = append(doc, toonRow(b.Header))
		for _, row := range b.Rows {
			doc = append(doc, toonRow(row))
		}
	}

	out, err := toon.Encode(doc, nil)
	if err != nil {
		return "", fmt.Errorf("failed to encode toon report: %w", err)
	}
	return out, nil
}

func toonRow(cells []string) []any {
	row := make([]any, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// Format names one of the text encodings of a Body
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatTerminal Format = "terminal"
	FormatTOON     Format = "toon"
)

// Ext returns the file extension used when a format is written to disk
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	case FormatTOON:
		return ".toon"
	}
	return ".txt"
}

// Encode renders the body in the given format
func Encode(f Format, b Body) (string, error) {
	switch f {
	case FormatHTML:
		return HTML(b)
	case FormatMarkdown:
		return Markdown(b), nil
	case FormatTerminal:
		return Terminal(b), nil
	case FormatTOON:
		return TOON(b)
	}
	return "", fmt.Errorf("unknown report format %q", f)
}
