package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a one-shot y/N prompt, styled like the Delete mode prompt
// inside the main program. Only an explicit "y" accepts; n, enter, esc, and
// ctrl+c decline, anything else is ignored.
type confirmModel struct {
	theme    Theme
	prompt   string
	answered bool
	yes      bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.yes = true
	case "n", "enter", "esc", "ctrl+c":
		m.yes = false
	default:
		return m, nil
	}
	m.answered = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return m.theme.TitleStyle().Render(m.prompt) + " " + m.theme.DangerStyle().Render("[y/N]") + " "
}

// Confirm blocks on a y/N prompt and reports whether the user accepted.
func Confirm(prompt string, theme Theme) (bool, error) {
	out, err := tea.NewProgram(confirmModel{theme: theme, prompt: prompt}).Run()
	if err != nil {
		return false, err
	}
	m, _ := out.(confirmModel)
	return m.yes, nil
}
