package dispatch

import (
	"bytes"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"sheetDelta/internal/report"
)

const (
	emlBoundary  = "sheetdelta-report-boundary"
	headerUnsent = mail.Header("X-Unsent")
)

// EMLDraft writes the report as an unsent mail message. Mail clients open
// a file carrying "X-Unsent: 1" as a draft, so the user can add recipients,
// review and send it.
type EMLDraft struct {
	Dir string
}

func (EMLDraft) Name() string { return "eml" }

func (d EMLDraft) Dispatch(msg Message) (string, error) {
	data, err := composeEML(msg)
	if err != nil {
		return "", err
	}
	path := outputPath(d.Dir, msg.Source, ".eml")
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// CheckRecipients validates a comma separated recipient list. A blank list
// is valid.
func CheckRecipients(to string) error {
	if err := mail.NewMsg().ToFromString(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	return nil
}

// composeEML builds a multipart/alternative message with a plain text and
// an HTML part
func composeEML(msg Message) ([]byte, error) {
	htmlBody, err := report.HTML(msg.Body)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg(mail.WithBoundary(emlBoundary), mail.WithNoDefaultUserAgent())
	if err := m.ToFromString(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetGenHeader(headerUnsent, "1")
	if msg.ID != "" {
		m.SetMessageIDWithValue(msg.ID + "@sheetdelta")
	}
	if !msg.Date.IsZero() {
		m.SetDateWithValue(msg.Date)
	}

	m.SetBodyString(mail.TypeTextPlain, report.Markdown(msg.Body))
	m.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}
	return buf.Bytes(), nil
}
