package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) contentWidth() int {
	w := m.width
	if m.cfg.MaxWidth > 0 && w > m.cfg.MaxWidth {
		w = m.cfg.MaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m appModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case ModeList:
		body = m.viewList()
	case ModeAdd:
		body = m.viewForm("New Reminder")
	case ModeEdit:
		body = m.viewForm("Edit Reminder")
	case ModeDelete:
		body = m.viewDelete()
	}

	footer := m.viewFooter()
	return body + "\n" + footer
}

func (m appModel) viewList() string {
	theme := m.cfg.Theme
	var b strings.Builder

	b.WriteString(theme.TitleStyle().Render("Reminders"))
	b.WriteString("\n\n")

	if len(m.reminders) == 0 {
		b.WriteString(theme.MutedStyle().Render("No reminders yet. Press a to add one."))
		b.WriteString("\n")
		return b.String()
	}

	now := time.Now()
	for i, r := range m.reminders {
		marker := " "
		switch {
		case r.Notified:
			marker = "✓"
		case r.DueAt.Before(now):
			marker = "!"
		}

		line := fmt.Sprintf("%s %s  %s", marker, r.DueAt.Local().Format("2006-01-02 15:04"), r.Title)
		if preview := r.Preview(40); preview != "" {
			line += theme.MutedStyle().Render("  " + preview)
		}

		if i == m.selected {
			b.WriteString(theme.SelectedStyle().Render(line))
		} else if marker == "!" {
			b.WriteString(theme.DangerStyle().Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	// Detail pane for the selected reminder.
	if m.selected < len(m.reminders) {
		r := m.reminders[m.selected]
		if strings.TrimSpace(r.Description) != "" {
			b.WriteString("\n")
			b.WriteString(theme.MutedStyle().Render(strings.Repeat("─", m.contentWidth())))
			b.WriteString("\n")
			b.WriteString(RenderMarkdownWithStyle(r.Description, m.contentWidth(), theme.MarkdownStyle))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m appModel) viewForm(title string) string {
	theme := m.cfg.Theme
	var b strings.Builder

	b.WriteString(theme.TitleStyle().Render(title))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == m.form.focus {
			b.WriteString(theme.TitleStyle().Render("> " + label))
		} else {
			b.WriteString(theme.MutedStyle().Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if m.form.errors[i] != "" {
			b.WriteString("  ")
			b.WriteString(theme.ErrorStyle().Render(m.form.errors[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m appModel) viewDelete() string {
	theme := m.cfg.Theme
	var b strings.Builder

	b.WriteString(theme.TitleStyle().Render("Delete Reminder"))
	b.WriteString("\n\n")

	title := m.deleteID
	for _, r := range m.reminders {
		if r.ID == m.deleteID {
			title = fmt.Sprintf("%s (due %s)", r.Title, r.DueAt.Local().Format("2006-01-02 15:04"))
			break
		}
	}

	prompt := fmt.Sprintf("Delete %q? This cannot be undone.", title)
	b.WriteString(prompt)
	b.WriteString(" ")
	b.WriteString(theme.DangerStyle().Render("[y/N]"))
	b.WriteString("\n")

	return b.String()
}

func (m appModel) viewFooter() string {
	theme := m.cfg.Theme
	var help string
	switch m.mode {
	case ModeList:
		help = "↑/↓ navigate · a add · e edit · d delete · q quit"
	case ModeAdd, ModeEdit:
		help = "tab next field · enter save · ctrl+e edit description · esc cancel"
	case ModeDelete:
		help = "y confirm · n/esc cancel"
	}

	footer := theme.HelpStyle().Render(help)
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, theme.DangerStyle().Render(m.status), footer)
	}
	return footer
}
