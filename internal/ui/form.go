package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"remindctl/internal/reminder"
)

// Form field indices.
const (
	fieldTitle = iota
	fieldDescription
	fieldDue
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Due"}

// reminderForm is the transient draft for Add/Edit mode: three text inputs
// plus the focused-field index and per-field validation errors. It is owned
// by the state machine and discarded on escape or successful save.
type reminderForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	errors  [fieldCount]string
	dueAt   time.Time // set by validate on success
}

// newReminderForm builds an empty draft.
func newReminderForm(theme Theme) reminderForm {
	var f reminderForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Cursor.Style = theme.TitleStyle()
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Placeholder = "What to remember"
	f.inputs[fieldDescription].Placeholder = "Details (optional, markdown ok)"
	f.inputs[fieldDue].Placeholder = "HH:MM or YYYY-MM-DD HH:MM"
	f.inputs[fieldTitle].Focus()
	return f
}

// prefilledForm builds a draft from an existing reminder for Edit mode.
func prefilledForm(theme Theme, r reminder.Reminder) reminderForm {
	f := newReminderForm(theme)
	f.inputs[fieldTitle].SetValue(r.Title)
	f.inputs[fieldDescription].SetValue(r.Description)
	f.inputs[fieldDue].SetValue(r.DueAt.Local().Format("2006-01-02 15:04"))
	return f
}

// focusNext moves focus cyclically to the next field.
func (f *reminderForm) focusNext() {
	f.setFocus((f.focus + 1) % fieldCount)
}

// focusPrev moves focus cyclically to the previous field.
func (f *reminderForm) focusPrev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *reminderForm) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

// update routes a message to the focused input.
func (f *reminderForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// title returns the draft title.
func (f *reminderForm) title() string { return f.inputs[fieldTitle].Value() }

// description returns the draft description.
func (f *reminderForm) description() string { return f.inputs[fieldDescription].Value() }

// setDescription replaces the description field (external editor flow).
func (f *reminderForm) setDescription(s string) { f.inputs[fieldDescription].SetValue(s) }

// validate checks the draft and records per-field errors. On success the
// parsed due instant is stored in f.dueAt and validate returns true.
func (f *reminderForm) validate(now time.Time) bool {
	f.errors = [fieldCount]string{}
	ok := true

	if err := reminder.ValidateTitle(f.title()); err != nil {
		f.errors[fieldTitle] = "title must not be empty"
		ok = false
	}

	due, err := reminder.ParseDueAt(f.inputs[fieldDue].Value(), now)
	if err != nil {
		f.errors[fieldDue] = err.Error()
		ok = false
	} else {
		f.dueAt = due
	}

	return ok
}
