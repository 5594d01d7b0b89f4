package picker

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sheetDelta/internal/excel"
	"sheetDelta/internal/logger"
)

type model struct {
	files []string
	dir   string

	cursor  int
	page    int
	perPage int

	chosen    string
	cancelled bool

	width  int
	height int

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
}

func initialModel(dir string, files []string) model {
	return model{
		files:   files,
		dir:     dir,
		perPage: 15,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// keep the highlighted file selected across the new page size
		idx := min(m.page*m.perPage+m.cursor, max(len(m.files)-1, 0))
		m.perPage = max(m.height-6, 5)
		m.page = idx / m.perPage
		m.cursor = idx % m.perPage
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else if m.page > 0 {
			m.page--
			m.cursor = m.perPage - 1
		}

	case "down", "j":
		if m.cursor < m.maxCursor() {
			m.cursor++
		} else if m.hasNextPage() {
			m.page++
			m.cursor = 0
		}

	case "left", "h":
		if m.page > 0 {
			m.page--
		}

	case "right", "l":
		if m.hasNextPage() {
			m.page++
			m.cursor = min(m.cursor, m.maxCursor())
		}

	case "enter":
		idx := m.page*m.perPage + m.cursor
		if idx < len(m.files) {
			m.chosen = m.files[idx]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) hasNextPage() bool {
	return (m.page+1)*m.perPage < len(m.files)
}

func (m model) maxCursor() int {
	itemsOnPage := len(m.files) - m.page*m.perPage
	if itemsOnPage > m.perPage {
		return m.perPage - 1
	}
	return max(itemsOnPage-1, 0)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Select a plan compare workbook to show its delta summary"))
	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("Folder: " + m.dir))
	b.WriteString("\n\n")

	if len(m.files) == 0 {
		b.WriteString(m.normalStyle.Render("No .xlsx or .xlsm files found."))
		b.WriteString("\n\n")
		b.WriteString(m.helpStyle.Render("q: quit"))
		return b.String()
	}

	totalPages := int(math.Ceil(float64(len(m.files)) / float64(m.perPage)))
	b.WriteString(m.helpStyle.Render(fmt.Sprintf("Page %d/%d", m.page+1, totalPages)))
	b.WriteString("\n\n")

	start := m.page * m.perPage
	end := min(start+m.perPage, len(m.files))
	for i := start; i < end; i++ {
		name, err := filepath.Rel(m.dir, m.files[i])
		if err != nil {
			name = m.files[i]
		}
		if i-start == m.cursor {
			b.WriteString(m.selectedStyle.Render("> " + name))
		} else {
			b.WriteString(m.normalStyle.Render("  " + name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("↑↓: navigate | ←→: prev/next page | Enter: select | Esc/q: cancel"))

	return b.String()
}

// TUI lets the user choose a workbook from a directory in the terminal
type TUI struct {
	Dir string
}

func (p TUI) Pick() (string, error) {
	files, err := excel.ListWorkbooks(p.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to list workbooks in %s: %w", p.Dir, err)
	}
	logger.Info("Opening file picker", "directory", p.Dir, "workbooks", len(files))

	final, err := tea.NewProgram(initialModel(p.Dir, files), tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("error running file picker: %w", err)
	}

	return result(final.(model))
}

func result(m model) (string, error) {
	if m.cancelled || m.chosen == "" {
		return "", ErrCancelled
	}
	return m.chosen, nil
}
