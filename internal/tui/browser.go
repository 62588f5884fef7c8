// Package tui implements the interactive report browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Report is one rendered entry in the browser.
type Report struct {
	Title string
	Body  string
}

type browserModel struct {
	reports   []Report
	selected  int
	vp        viewport.Model
	width     int
	height    int
	listWidth int
}

// NewBrowser returns a Bubble Tea model with the report list on the left
// and the selected report in a viewport on the right. Selecting a report
// resets its scroll position.
func NewBrowser(reports []Report) tea.Model {
	m := &browserModel{
		reports: reports,
		vp:      viewport.New(80, 22),
	}
	m.setSize(80, 24)
	m.setContent()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			m.move(-1)
			return m, nil
		case "j", "down":
			m.move(1)
			return m, nil
		case "u", "pgup":
			m.vp.HalfViewUp()
			return m, nil
		case "d", "pgdown":
			m.vp.HalfViewDown()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			m.setSize(msg.Width, msg.Height)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	if len(m.reports) == 0 {
		return "no reports loaded\n"
	}

	title := fmt.Sprintf("%s (%d/%d)", m.reports[m.selected].Title, m.selected+1, len(m.reports))

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(title, m.width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), " ", m.vp.View()))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("j/k: select report  u/d: scroll  q: quit"))
	return b.String()
}

// listView renders the selection pane, one fixed-width line per report.
func (m *browserModel) listView() string {
	itemWidth := m.listWidth - 2
	lines := make([]string, 0, len(m.reports))
	for i, r := range m.reports {
		marker, style := "  ", itemStyle
		if i == m.selected {
			marker, style = "> ", selectedStyle
		}
		item := runewidth.FillRight(truncate(r.Title, itemWidth), itemWidth)
		lines = append(lines, style.Render(marker+item))
	}
	return strings.Join(lines, "\n")
}

func (m *browserModel) setSize(width, height int) {
	m.width = width
	m.height = height

	lw := width / 4
	if lw < 16 {
		lw = 16
	}
	if lw > 32 {
		lw = 32
	}
	m.listWidth = lw

	vpWidth := width - lw - 1
	if vpWidth < 1 {
		vpWidth = 1
	}
	m.vp.Width = vpWidth
	// One line each for the title and the key hints.
	vpHeight := height - 2
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.vp.Height = vpHeight
}

func (m *browserModel) move(delta int) {
	if len(m.reports) < 2 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = len(m.reports) - 1
	}
	if next >= len(m.reports) {
		next = 0
	}
	m.selected = next
	m.setContent()
}

func (m *browserModel) setContent() {
	if len(m.reports) == 0 {
		return
	}
	m.vp.SetContent(m.reports[m.selected].Body)
	m.vp.GotoTop()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
