package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"remindctl/internal/notify"
	"remindctl/internal/reminder"
	"remindctl/internal/scanner"
	"remindctl/internal/storage"
)

// mockStorage implements storage.Storage for state machine tests.
type mockStorage struct {
	reminders []reminder.Reminder
	creates   int
	updates   int
	deletes   int
	updateErr error
	deleteErr error
}

func (m *mockStorage) Create(r reminder.Reminder) error {
	m.creates++
	m.reminders = append(m.reminders, r)
	return nil
}

func (m *mockStorage) Get(id string) (reminder.Reminder, error) {
	for _, r := range m.reminders {
		if r.ID == id {
			return r, nil
		}
	}
	return reminder.Reminder{}, storage.ErrNotFound
}

func (m *mockStorage) List(opts storage.ListOptions) ([]reminder.Reminder, error) {
	out := make([]reminder.Reminder, len(m.reminders))
	copy(out, m.reminders)
	return out, nil
}

func (m *mockStorage) Update(id string, fields storage.UpdateFields) (reminder.Reminder, error) {
	m.updates++
	if m.updateErr != nil {
		return reminder.Reminder{}, m.updateErr
	}
	for i, r := range m.reminders {
		if r.ID == id {
			if fields.Title != nil {
				r.Title = *fields.Title
			}
			if fields.Description != nil {
				r.Description = *fields.Description
			}
			if fields.DueAt != nil {
				r.DueAt = *fields.DueAt
			}
			m.reminders[i] = r
			return r, nil
		}
	}
	return reminder.Reminder{}, storage.ErrNotFound
}

func (m *mockStorage) Delete(id string) error {
	m.deletes++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, r := range m.reminders {
		if r.ID == id {
			m.reminders = append(m.reminders[:i], m.reminders[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *mockStorage) MarkNotified(id string) error { return nil }
func (m *mockStorage) Close() error                 { return nil }

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testModel(store *mockStorage) appModel {
	sc := scanner.New(store, notify.Discard{}, nil)
	m := newAppModel(store, sc, TUIConfig{Theme: ResolveTheme(""), PollInterval: time.Hour})
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = sized.(appModel)
	loaded, _ := m.Update(m.loadReminders())
	return loaded.(appModel)
}

func seededStore(titles ...string) *mockStorage {
	store := &mockStorage{}
	base := time.Now().Add(time.Hour)
	for i, title := range titles {
		store.reminders = append(store.reminders, reminder.Reminder{
			ID:        string(rune('a'+i)) + "aaa1111",
			Title:     title,
			DueAt:     base.Add(time.Duration(i) * time.Minute),
			CreatedAt: time.Now(),
		})
	}
	return store
}

func TestListNavigationClamps(t *testing.T) {
	m := testModel(seededStore("one", "two", "three"))

	// Up at the top is a no-op.
	next, _ := m.Update(key("up"))
	m = next.(appModel)
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}

	for i := 0; i < 5; i++ {
		next, _ = m.Update(key("down"))
		m = next.(appModel)
	}
	if m.selected != 2 {
		t.Errorf("selected = %d, want clamp at 2", m.selected)
	}
}

func TestEmptyListEditDeleteAreNoOps(t *testing.T) {
	m := testModel(&mockStorage{})

	for _, k := range []string{"e", "d", "up", "down"} {
		next, _ := m.Update(key(k))
		m = next.(appModel)
		if m.mode != ModeList {
			t.Errorf("key %q on empty list moved to mode %d", k, m.mode)
		}
	}
	if m.status != "" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestAddFlow(t *testing.T) {
	store := &mockStorage{}
	m := testModel(store)

	next, _ := m.Update(key("a"))
	m = next.(appModel)
	if m.mode != ModeAdd {
		t.Fatalf("mode = %d, want ModeAdd", m.mode)
	}

	m.form.inputs[fieldTitle].SetValue("Pay rent")
	m.form.inputs[fieldDue].SetValue("2026-04-01 09:00")

	next, cmd := m.Update(key("enter"))
	m = next.(appModel)
	if m.mode != ModeList {
		t.Errorf("mode = %d, want ModeList after save", m.mode)
	}
	if store.creates != 1 {
		t.Errorf("creates = %d, want 1", store.creates)
	}
	if cmd == nil {
		t.Error("expected a refresh command after save")
	}
}

func TestAddValidationFailureStaysPut(t *testing.T) {
	store := &mockStorage{}
	m := testModel(store)

	next, _ := m.Update(key("a"))
	m = next.(appModel)

	m.form.inputs[fieldTitle].SetValue("")
	m.form.inputs[fieldDue].SetValue("not-a-date")

	next, _ = m.Update(key("enter"))
	m = next.(appModel)
	if m.mode != ModeAdd {
		t.Errorf("mode = %d, want ModeAdd preserved", m.mode)
	}
	if m.form.errors[fieldTitle] == "" {
		t.Error("expected title field error")
	}
	if m.form.errors[fieldDue] == "" {
		t.Error("expected due field error")
	}
	if store.creates != 0 {
		t.Errorf("creates = %d, want 0 (no store call on validation failure)", store.creates)
	}
}

func TestAddEscapeDiscardsDraft(t *testing.T) {
	store := &mockStorage{}
	m := testModel(store)

	next, _ := m.Update(key("a"))
	m = next.(appModel)
	m.form.inputs[fieldTitle].SetValue("half-typed")

	next, _ = m.Update(key("esc"))
	m = next.(appModel)
	if m.mode != ModeList {
		t.Errorf("mode = %d, want ModeList", m.mode)
	}
	if store.creates != 0 {
		t.Error("escape must not persist the draft")
	}
}

func TestFormFocusCycles(t *testing.T) {
	m := testModel(&mockStorage{})
	next, _ := m.Update(key("a"))
	m = next.(appModel)

	if m.form.focus != fieldTitle {
		t.Fatalf("initial focus = %d", m.form.focus)
	}
	for i, want := range []int{fieldDescription, fieldDue, fieldTitle} {
		next, _ = m.Update(key("tab"))
		m = next.(appModel)
		if m.form.focus != want {
			t.Errorf("after %d tabs focus = %d, want %d", i+1, m.form.focus, want)
		}
	}
	next, _ = m.Update(key("shift+tab"))
	m = next.(appModel)
	if m.form.focus != fieldDue {
		t.Errorf("shift+tab focus = %d, want %d", m.form.focus, fieldDue)
	}
}

func TestEditPrefillsDraft(t *testing.T) {
	store := seededStore("water plants")
	store.reminders[0].Description = "the ficus too"
	m := testModel(store)

	next, _ := m.Update(key("e"))
	m = next.(appModel)
	if m.mode != ModeEdit {
		t.Fatalf("mode = %d, want ModeEdit", m.mode)
	}
	if m.editID != store.reminders[0].ID {
		t.Errorf("editID = %q", m.editID)
	}
	if m.form.title() != "water plants" {
		t.Errorf("prefilled title = %q", m.form.title())
	}
	if m.form.description() != "the ficus too" {
		t.Errorf("prefilled description = %q", m.form.description())
	}
}

func TestEditEmptyTitleKeepsRecord(t *testing.T) {
	store := seededStore("keep me")
	m := testModel(store)

	next, _ := m.Update(key("e"))
	m = next.(appModel)
	m.form.inputs[fieldTitle].SetValue("   ")

	next, _ = m.Update(key("enter"))
	m = next.(appModel)
	if m.mode != ModeEdit {
		t.Errorf("mode = %d, want ModeEdit preserved", m.mode)
	}
	if m.form.errors[fieldTitle] == "" {
		t.Error("expected title field error")
	}
	if store.updates != 0 {
		t.Errorf("updates = %d, want 0", store.updates)
	}
	if store.reminders[0].Title != "keep me" {
		t.Errorf("record mutated: %q", store.reminders[0].Title)
	}
}

func TestEditVanishedReminderReturnsToList(t *testing.T) {
	store := seededStore("ghost")
	m := testModel(store)

	next, _ := m.Update(key("e"))
	m = next.(appModel)

	// Deleted concurrently while the form was open.
	store.reminders = nil

	m.form.inputs[fieldTitle].SetValue("new title")
	next, _ = m.Update(key("enter"))
	m = next.(appModel)
	if m.mode != ModeList {
		t.Errorf("mode = %d, want ModeList after not-found", m.mode)
	}
	if m.status == "" {
		t.Error("expected a status message for the vanished reminder")
	}
}

func TestDeleteConfirmYes(t *testing.T) {
	store := seededStore("one", "two", "three")
	m := testModel(store)

	// Select the last reminder, then delete it.
	next, _ := m.Update(key("down"))
	m = next.(appModel)
	next, _ = m.Update(key("down"))
	m = next.(appModel)
	next, _ = m.Update(key("d"))
	m = next.(appModel)
	if m.mode != ModeDelete {
		t.Fatalf("mode = %d, want ModeDelete", m.mode)
	}

	next, _ = m.Update(key("y"))
	m = next.(appModel)
	if m.mode != ModeList {
		t.Errorf("mode = %d, want ModeList", m.mode)
	}
	if store.deletes != 1 || len(store.reminders) != 2 {
		t.Errorf("deletes = %d, remaining = %d", store.deletes, len(store.reminders))
	}

	// Refresh and check the selection clamps to the new length.
	loaded, _ := m.Update(m.loadReminders())
	m = loaded.(appModel)
	if m.selected != 1 {
		t.Errorf("selected = %d, want clamp to 1", m.selected)
	}
}

func TestDeleteConfirmNoLeavesStoreUntouched(t *testing.T) {
	store := seededStore("survivor")
	m := testModel(store)

	next, _ := m.Update(key("d"))
	m = next.(appModel)
	next, _ = m.Update(key("n"))
	m = next.(appModel)
	if m.mode != ModeList {
		t.Errorf("mode = %d, want ModeList", m.mode)
	}
	if store.deletes != 0 || len(store.reminders) != 1 {
		t.Errorf("store mutated: deletes=%d len=%d", store.deletes, len(store.reminders))
	}

	// Escape cancels the same way.
	next, _ = m.Update(key("d"))
	m = next.(appModel)
	next, _ = m.Update(key("esc"))
	m = next.(appModel)
	if m.mode != ModeList || store.deletes != 0 {
		t.Error("escape should cancel without deleting")
	}
}

func TestSweepDoneRefreshesCache(t *testing.T) {
	store := seededStore("due soon")
	m := testModel(store)

	// Scanner marked the reminder in the store behind the UI's back.
	store.reminders[0].Notified = true

	next, cmd := m.Update(sweepDoneMsg{fired: 1})
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("sweepDoneMsg must schedule a cache refresh")
	}

	loaded, _ := m.Update(m.loadReminders())
	m = loaded.(appModel)
	if !m.reminders[0].Notified {
		t.Error("cache not refreshed from store after sweep")
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(seededStore("x"))

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit from List mode")
	}

	// q inside the Add form types the letter instead of quitting.
	next, _ := m.Update(key("a"))
	am := next.(appModel)
	next, cmd = am.Update(key("q"))
	am = next.(appModel)
	if am.mode != ModeAdd {
		t.Errorf("mode = %d, want ModeAdd", am.mode)
	}
	if got := am.form.title(); got != "q" {
		t.Errorf("title = %q, want typed q", got)
	}
}
