package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"remindctl/internal/reminder"
	"remindctl/internal/scanner"
	"remindctl/internal/storage"
)

// Mode is the interaction state machine's current state. Exactly one mode is
// active at a time; a draft form exists iff the mode is Add or Edit.
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
	ModeEdit
	ModeDelete
)

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	Theme        Theme
	Editor       string        // resolved editor command for ctrl+e
	PollInterval time.Duration // due-scanner cadence
	MaxWidth     int           // maximum content width (0 = no limit)
}

// Messages flowing through the event loop.
type (
	sweepTickMsg struct{}

	sweepDoneMsg struct {
		fired int
		err   error
	}

	remindersLoadedMsg struct {
		reminders []reminder.Reminder
		err       error
	}

	editorFinishedMsg struct {
		content string
		err     error
	}
)

// appModel is the Bubble Tea model: the application state plus the handles
// it needs to dispatch work. The reminder slice is a cache of the store,
// owned exclusively by this model; the scanner only ever touches the store.
type appModel struct {
	store storage.Storage
	sweep *scanner.Scanner
	cfg   TUIConfig

	mode      Mode
	reminders []reminder.Reminder
	selected  int
	form      reminderForm
	editID    string // Edit target; set iff mode is ModeEdit
	deleteID  string // Delete target; set iff mode is ModeDelete

	status string
	err    error

	width  int
	height int
	ready  bool
}

func newAppModel(store storage.Storage, sweep *scanner.Scanner, cfg TUIConfig) appModel {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = scanner.DefaultInterval
	}
	return appModel{store: store, sweep: sweep, cfg: cfg, mode: ModeList}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadReminders, m.scheduleSweep())
}

// loadReminders refreshes the in-memory cache from the store.
func (m appModel) loadReminders() tea.Msg {
	rs, err := m.store.List(storage.ListOptions{})
	return remindersLoadedMsg{reminders: rs, err: err}
}

// scheduleSweep arms the next scanner tick.
func (m appModel) scheduleSweep() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval, func(time.Time) tea.Msg { return sweepTickMsg{} })
}

// runSweep executes one due-scanner pass off the update loop.
func (m appModel) runSweep() tea.Msg {
	fired, err := m.sweep.Sweep(context.Background(), time.Now())
	return sweepDoneMsg{fired: fired, err: err}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sweepTickMsg:
		return m, m.runSweep

	case sweepDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("scanner: %v", msg.err)
		}
		// The sweep only mutates the store; refresh the cache so the
		// next render reflects fired reminders, then re-arm the tick.
		return m, tea.Batch(m.loadReminders, m.scheduleSweep())

	case remindersLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("loading reminders: %v", msg.err)
			return m, nil
		}
		m.reminders = msg.reminders
		m.clampSelection()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("editor: %v", msg.err)
			return m, nil
		}
		if m.mode == ModeAdd || m.mode == ModeEdit {
			m.form.setDescription(msg.content)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeList:
			return m.updateList(msg)
		case ModeAdd, ModeEdit:
			return m.updateForm(msg)
		case ModeDelete:
			return m.updateDelete(msg)
		}
	}
	return m, nil
}

// updateList handles key events in List mode.
func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if len(m.reminders) > 0 && m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if len(m.reminders) > 0 && m.selected < len(m.reminders)-1 {
			m.selected++
		}
		return m, nil

	case "a":
		m.mode = ModeAdd
		m.form = newReminderForm(m.cfg.Theme)
		m.status = ""
		return m, nil

	case "e":
		if len(m.reminders) == 0 {
			return m, nil
		}
		target := m.reminders[m.selected]
		m.mode = ModeEdit
		m.editID = target.ID
		m.form = prefilledForm(m.cfg.Theme, target)
		m.status = ""
		return m, nil

	case "d":
		if len(m.reminders) == 0 {
			return m, nil
		}
		m.mode = ModeDelete
		m.deleteID = m.reminders[m.selected].ID
		m.status = ""
		return m, nil
	}
	return m, nil
}

// updateForm handles key events in Add and Edit mode.
func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.toList(), nil

	case "tab", "down":
		m.form.focusNext()
		return m, nil

	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil

	case "ctrl+e":
		return m.openDescriptionEditor()

	case "enter":
		return m.submitForm()
	}

	cmd := m.form.update(msg)
	return m, cmd
}

// submitForm validates the draft and persists it. Validation failure keeps
// the mode and the draft; only field errors change. Store failures keep the
// prior state and surface a status message.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.validate(time.Now()) {
		return m, nil
	}

	switch m.mode {
	case ModeAdd:
		r, err := reminder.New(m.form.title(), m.form.description(), m.form.dueAt)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if err := m.store.Create(r); err != nil {
			m.status = fmt.Sprintf("saving reminder: %v", err)
			return m, nil
		}

	case ModeEdit:
		title := strings.TrimSpace(m.form.title())
		desc := m.form.description()
		due := m.form.dueAt
		_, err := m.store.Update(m.editID, storage.UpdateFields{
			Title:       &title,
			Description: &desc,
			DueAt:       &due,
		})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Deleted underneath us; reconcile with the store.
				m.status = "reminder no longer exists"
				return m.toList(), m.loadReminders
			}
			m.status = fmt.Sprintf("saving reminder: %v", err)
			return m, nil
		}
	}

	return m.toList(), m.loadReminders
}

// updateDelete handles key events in Delete confirmation mode.
func (m appModel) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		if err := m.store.Delete(m.deleteID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			m.status = fmt.Sprintf("deleting reminder: %v", err)
			return m, nil
		}
		return m.toList(), m.loadReminders

	case "n", "esc":
		return m.toList(), nil
	}
	return m, nil
}

// toList returns to List mode, discarding any draft or pending target.
func (m appModel) toList() appModel {
	m.mode = ModeList
	m.editID = ""
	m.deleteID = ""
	m.form = reminderForm{}
	m.clampSelection()
	return m
}

func (m *appModel) clampSelection() {
	if len(m.reminders) == 0 {
		m.selected = 0
		return
	}
	if m.selected >= len(m.reminders) {
		m.selected = len(m.reminders) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// openDescriptionEditor launches $EDITOR on the draft description.
func (m appModel) openDescriptionEditor() (tea.Model, tea.Cmd) {
	if m.cfg.Editor == "" {
		m.status = "no editor configured"
		return m, nil
	}

	tmp, err := os.CreateTemp("", "remindctl-*.md")
	if err != nil {
		m.status = fmt.Sprintf("editor: %v", err)
		return m, nil
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(m.form.description()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		m.status = fmt.Sprintf("editor: %v", err)
		return m, nil
	}
	tmp.Close()

	parts := strings.Fields(m.cfg.Editor)
	cmdArgs := append(parts[1:], tmpName)
	c := exec.Command(parts[0], cmdArgs...)
	return m, tea.ExecProcess(c, func(err error) tea.Msg {
		defer os.Remove(tmpName)
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		data, err := os.ReadFile(tmpName)
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		return editorFinishedMsg{content: strings.TrimRight(string(data), "\n")}
	})
}

// RunTUI launches the interactive reminder manager starting in List mode.
func RunTUI(store storage.Storage, sweep *scanner.Scanner, cfg TUIConfig) error {
	m := newAppModel(store, sweep, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return err
	}
	if am, ok := result.(appModel); ok && am.err != nil {
		return am.err
	}
	return nil
}
