package mcptools_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"remindctl/internal/mcptools"
	"remindctl/internal/reminder"
	"remindctl/internal/storage/markdown"
)

func connect(t *testing.T, store *markdown.Store) *mcp.ClientSession {
	t.Helper()
	_, clientTransport := mcptools.NewReminderMCPServer(store)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	return session
}

func decodeResult(t *testing.T, result *mcp.CallToolResult, out interface{}) {
	t.Helper()
	if result.StructuredContent == nil {
		t.Fatal("expected structured content in tool result")
	}
	data, _ := json.Marshal(result.StructuredContent)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to unmarshal structured content: %v", err)
	}
}

func TestMCPServer_CreateReminder(t *testing.T) {
	store, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer store.Close()

	session := connect(t, store)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "create_reminder",
		Arguments: mcptools.CreateReminderInput{
			Title: "Pay rent",
			DueAt: "2026-09-01 09:00",
		},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.CreateReminderOutput
	decodeResult(t, result, &output)
	if output.ID == "" {
		t.Error("expected a generated reminder ID")
	}
	if output.Title != "Pay rent" {
		t.Errorf("title = %q", output.Title)
	}

	got, err := store.Get(output.ID)
	if err != nil {
		t.Fatalf("reminder not persisted: %v", err)
	}
	if got.Title != "Pay rent" {
		t.Errorf("persisted title = %q", got.Title)
	}
}

func TestMCPServer_CreateReminderRejectsBadDue(t *testing.T) {
	store, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer store.Close()

	session := connect(t, store)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "create_reminder",
		Arguments: mcptools.CreateReminderInput{
			Title: "Broken",
			DueAt: "not-a-date",
		},
	})
	if err == nil && (result == nil || !result.IsError) {
		t.Fatal("expected tool error for unparseable due time")
	}
}

func TestMCPServer_ListReminders(t *testing.T) {
	store, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer store.Close()

	now := time.Now()
	later := reminder.Reminder{ID: "bbbb2222", Title: "later", DueAt: now.Add(2 * time.Hour), CreatedAt: now}
	soon := reminder.Reminder{ID: "aaaa1111", Title: "soon", DueAt: now.Add(time.Hour), CreatedAt: now}
	for _, r := range []reminder.Reminder{later, soon} {
		if err := store.Create(r); err != nil {
			t.Fatalf("failed to create reminder: %v", err)
		}
	}

	session := connect(t, store)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_reminders",
		Arguments: mcptools.ListRemindersInput{},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.ListRemindersOutput
	decodeResult(t, result, &output)
	if len(output.Reminders) != 2 {
		t.Fatalf("got %d reminders, want 2", len(output.Reminders))
	}
	if output.Reminders[0].Title != "soon" || output.Reminders[1].Title != "later" {
		t.Errorf("reminders out of due order: %+v", output.Reminders)
	}
}

func TestMCPServer_DeleteReminder(t *testing.T) {
	store, err := markdown.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer store.Close()

	r := reminder.Reminder{ID: "aaaa1111", Title: "gone", DueAt: time.Now().Add(time.Hour), CreatedAt: time.Now()}
	if err := store.Create(r); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	session := connect(t, store)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_reminder",
		Arguments: mcptools.DeleteReminderInput{ID: "aaaa1111"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}

	var output mcptools.DeleteReminderOutput
	decodeResult(t, result, &output)
	if !output.Deleted {
		t.Error("expected deleted=true")
	}
	if _, err := store.Get("aaaa1111"); err == nil {
		t.Error("reminder still present after delete")
	}
}
