package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// FixtureListModel is the bubbletea model for interactive fixture
// selection in the demo command.
type FixtureListModel struct {
	Fixtures []fixture
	Cursor   int
	Selected *fixture
}

// NewFixtureListModel creates a new fixture list model.
func NewFixtureListModel(fixtures []fixture) FixtureListModel {
	return FixtureListModel{Fixtures: fixtures}
}

func (m FixtureListModel) Init() tea.Cmd {
	return nil
}

func (m FixtureListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Fixtures)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Fixtures[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FixtureListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Fixture"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, f := range m.Fixtures {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-10s  %s", cursor, f.Name,
			listDimStyle.Render(fmt.Sprintf("%s (%d points)", f.Description, len(f.Points))))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickFixture runs the interactive fixture picker and returns the
// selection, or nil when the user quits without choosing.
func pickFixture() (*fixture, error) {
	model, err := tea.NewProgram(NewFixtureListModel(fixtures)).Run()
	if err != nil {
		return nil, fmt.Errorf("fixture picker: %w", err)
	}
	final, ok := model.(FixtureListModel)
	if !ok {
		return nil, nil
	}
	return final.Selected, nil
}
