package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"moonwalk/ast"
	"moonwalk/source"
)

// Run opens a scrollable outline viewer for a parsed chunk and blocks
// until the user quits.
func Run(path string, tree *ast.Ast, lm *source.LineMap) error {
	m := newOutlineModel(path, Outline(tree), lm)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type outlineModel struct {
	path  string
	lines []Line
	lm    *source.LineMap
	vp    viewport.Model
	width int
	ready bool
}

func newOutlineModel(path string, lines []Line, lm *source.LineMap) *outlineModel {
	return &outlineModel{path: path, lines: lines, lm: lm, width: 80}
}

func (m *outlineModel) Init() tea.Cmd {
	return nil
}

func (m *outlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Header and footer each take one line plus a blank spacer.
		body := msg.Height - 4
		if body < 1 {
			body = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, body)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = body
		}
		m.width = msg.Width
		m.vp.SetContent(m.renderLines())
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *outlineModel) View() string {
	if !m.ready {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	helpStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d statements)", m.path, len(m.lines))))
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down scroll - q quit"))
	return b.String()
}

func (m *outlineModel) renderLines() string {
	if len(m.lines) == 0 {
		return "(empty chunk)"
	}
	posStyle := lipgloss.NewStyle().Faint(true)
	labelWidth := m.width - 10
	if labelWidth < 20 {
		labelWidth = 20
	}

	var b strings.Builder
	for _, line := range m.lines {
		pos := posStyle.Render(fmt.Sprintf("%8s", m.lm.Resolve(line.Span.Start).String()))
		label := truncateLabel(strings.Repeat("  ", line.Depth)+line.Label, labelWidth)
		fmt.Fprintf(&b, "%s  %s\n", pos, label)
	}
	return b.String()
}

func truncateLabel(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
