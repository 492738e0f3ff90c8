package notify

import (
	"context"
	"strings"
	"testing"
)

func TestNewCommandDefaultsToNotifySend(t *testing.T) {
	n := NewCommand("")
	if n.Command != "notify-send" {
		t.Errorf("Command = %q, want notify-send", n.Command)
	}
	n = NewCommand("notify-send -u critical")
	if n.Command != "notify-send -u critical" {
		t.Errorf("Command = %q", n.Command)
	}
}

func TestCommandNotifierRuns(t *testing.T) {
	// /bin/true accepts and ignores the appended title/body arguments.
	n := NewCommand("true")
	if err := n.Notify(context.Background(), "title", "body"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
}

func TestCommandNotifierReportsFailure(t *testing.T) {
	n := NewCommand("false")
	if err := n.Notify(context.Background(), "title", "body"); err == nil {
		t.Fatal("expected error from failing command")
	}
}

func TestCommandNotifierMissingBinary(t *testing.T) {
	n := NewCommand("remindctl-no-such-binary")
	err := n.Notify(context.Background(), "title", "body")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "remindctl-no-such-binary") {
		t.Errorf("error should name the command: %v", err)
	}
}

func TestDiscard(t *testing.T) {
	if err := (Discard{}).Notify(context.Background(), "t", "b"); err != nil {
		t.Fatalf("Discard.Notify: %v", err)
	}
}
