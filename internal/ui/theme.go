package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		MarkdownStyle: "dark",
	},
}

// ResolveTheme returns the named preset, falling back to default-dark.
func ResolveTheme(name string) Theme {
	if t, ok := presets[name]; ok {
		return t
	}
	return presets["default-dark"]
}

// TitleStyle renders screen titles.
func (t Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

// SelectedStyle highlights the selected list row.
func (t Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(lipgloss.Color("237"))
}

// MutedStyle renders secondary metadata.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// DangerStyle renders destructive prompts and overdue markers.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Danger)
}

// ErrorStyle renders inline validation errors.
func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger)
}

// HelpStyle renders the keybinding footer.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary)
}
