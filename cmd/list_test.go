package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"remindctl/internal/reminder"
)

func createTestReminder(t *testing.T, title string, due time.Time) reminder.Reminder {
	t.Helper()
	r, err := reminder.New(title, "", due)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Create(r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return r
}

func TestListOrdersByDue(t *testing.T) {
	setupTestEnv(t)

	now := time.Now()
	createTestReminder(t, "second", now.Add(2*time.Hour))
	createTestReminder(t, "first", now.Add(time.Hour))

	var buf bytes.Buffer
	if err := listRun(&buf); err != nil {
		t.Fatalf("listRun: %v", err)
	}

	out := buf.String()
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	if first == -1 || second == -1 {
		t.Fatalf("missing titles in output:\n%s", out)
	}
	if first > second {
		t.Errorf("reminders not in due order:\n%s", out)
	}
}

func TestListIDOnly(t *testing.T) {
	setupTestEnv(t)
	listIDOnly = true

	r := createTestReminder(t, "only ids", time.Now().Add(time.Hour))

	var buf bytes.Buffer
	if err := listRun(&buf); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != r.ID {
		t.Errorf("output = %q, want bare ID %q", got, r.ID)
	}
}

func TestListPendingFilters(t *testing.T) {
	setupTestEnv(t)
	listPending = true

	fired := createTestReminder(t, "already fired", time.Now().Add(-time.Hour))
	if err := store.MarkNotified(fired.ID); err != nil {
		t.Fatalf("MarkNotified: %v", err)
	}
	createTestReminder(t, "still pending", time.Now().Add(time.Hour))

	var buf bytes.Buffer
	if err := listRun(&buf); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "already fired") {
		t.Errorf("notified reminder leaked into --pending output:\n%s", out)
	}
	if !strings.Contains(out, "still pending") {
		t.Errorf("pending reminder missing:\n%s", out)
	}
}

func TestListEmpty(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := listRun(&buf); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	if !strings.Contains(buf.String(), "No reminders") {
		t.Errorf("unexpected empty-list output: %q", buf.String())
	}
}
