package dispatch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetDelta/internal/delta"
	"sheetDelta/internal/excel"
	"sheetDelta/internal/report"
)

var lots = delta.EntityPair{Primary: "LOTA", Secondary: "LOTB"}

func tableBody() report.Body {
	return report.Body{
		Pair:   lots,
		Header: []string{"LOTA Operation", "LOTB Operation"},
		Rows:   [][]string{{"OP20", "OP30"}, {"OP40", ""}},
	}
}

func emptyBody() report.Body {
	return report.Body{Pair: lots, Empty: true, Message: report.NoDifferencesMessage(lots)}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("Deltas found in", "  ", filepath.Join("data", "input", "plan.xlsx"), emptyBody())
	assert.Equal(t, "Deltas found in: plan.xlsx", msg.Subject)
	assert.Empty(t, msg.To)
}

func TestNew(t *testing.T) {
	ds, err := New([]string{"eml", "XLSX", "terminal", "html", "md", "toon"}, "out", &bytes.Buffer{})
	require.NoError(t, err)

	var names []string
	for _, d := range ds {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"eml", "xlsx", "terminal", "html", "markdown", "toon"}, names)

	_, err = New([]string{"outlook"}, "out", nil)
	assert.ErrorContains(t, err, "unknown dispatch target")
}

func TestEMLDraft(t *testing.T) {
	dir := t.TempDir()
	msg := NewMessage("Deltas found in", "planning@example.com", "plan.xlsx", tableBody())
	msg.ID = "run-1"

	path, err := EMLDraft{Dir: dir}.Dispatch(msg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan-deltas.eml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	eml := string(data)

	assert.Contains(t, eml, "To: <planning@example.com>\r\n")
	assert.Contains(t, eml, "Subject: Deltas found in: plan.xlsx\r\n")
	assert.Contains(t, eml, "X-Unsent: 1\r\n")
	assert.Contains(t, eml, "Message-ID: <run-1@sheetdelta>\r\n")
	assert.Contains(t, eml, "multipart/alternative")
	assert.Contains(t, eml, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, eml, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, eml, "--"+emlBoundary+"--")
}

func TestEMLDraft_Deterministic(t *testing.T) {
	msg := NewMessage("Deltas found in", "", "plan.xlsx", tableBody())
	msg.ID = "run-1"
	msg.Date = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	a, err := composeEML(msg)
	require.NoError(t, err)
	b, err := composeEML(msg)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), "Date: Fri, 01 Mar 2024 09:30:00 +0000\r\n")
	assert.NotContains(t, string(a), "To: <")
}

func TestEMLDraft_RejectsBadRecipient(t *testing.T) {
	for _, to := range []string{
		"planning@example.com\r\nBcc: spy@example.com",
		"not an address",
	} {
		msg := NewMessage("Deltas found in", to, "plan.xlsx", tableBody())
		_, err := EMLDraft{Dir: t.TempDir()}.Dispatch(msg)
		assert.ErrorContains(t, err, "invalid recipient")
		assert.Error(t, CheckRecipients(to))
	}
}

func TestCheckRecipients(t *testing.T) {
	assert.NoError(t, CheckRecipients(""))
	assert.NoError(t, CheckRecipients("a@example.com, Planning <b@example.com>"))
}

func TestWorkbook(t *testing.T) {
	dir := t.TempDir()
	msg := NewMessage("Deltas found in", "", "plan.xlsm", tableBody())

	path, err := Workbook{Dir: dir}.Dispatch(msg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan-deltas.xlsx"), path)

	grid, err := excel.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, workbookSheet, grid.Title())
	assert.Equal(t, "Deltas found in: plan.xlsm", grid.Cell(1, 1).String())
	assert.Equal(t, "LOTA Operation", grid.Cell(1, 3).String())
	assert.Equal(t, "OP30", grid.Cell(2, 4).String())
	assert.Equal(t, "OP40", grid.Cell(1, 5).String())
	assert.True(t, grid.Cell(2, 5).IsNull())
}

func TestWorkbook_Empty(t *testing.T) {
	dir := t.TempDir()
	path, err := Workbook{Dir: dir}.Dispatch(NewMessage("Deltas found in", "", "plan.xlsx", emptyBody()))
	require.NoError(t, err)

	grid, err := excel.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "No differences found between LOTA and LOTB.", grid.Cell(1, 3).String())
}

func TestTerminal(t *testing.T) {
	var out bytes.Buffer
	where, err := Terminal{Out: &out}.Dispatch(NewMessage("Deltas found in", "", "plan.xlsx", emptyBody()))
	require.NoError(t, err)
	assert.Equal(t, "terminal", where)
	assert.Equal(t, "Deltas found in: plan.xlsx\n\nNo differences found between LOTA and LOTB.\n", out.String())
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	msg := NewMessage("Deltas found in", "", "plan.xlsx", tableBody())

	path, err := File{Dir: dir, Format: report.FormatMarkdown}.Dispatch(msg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "plan-deltas.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report.Markdown(msg.Body), string(data))
}
