package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Notifier delivers a desktop notification. Fire-and-forget: there is no
// acknowledgment that the user saw it.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// CommandNotifier shells out to a desktop notification command such as
// notify-send, appending title and body as the final arguments.
type CommandNotifier struct {
	Command string        // e.g. "notify-send" or "notify-send -u critical"
	Timeout time.Duration // per-invocation limit; zero means 5s
}

// NewCommand builds a CommandNotifier, defaulting to notify-send.
func NewCommand(command string) *CommandNotifier {
	if strings.TrimSpace(command) == "" {
		command = "notify-send"
	}
	return &CommandNotifier{Command: command}
}

// Notify runs the configured command with title and body appended.
func (n *CommandNotifier) Notify(ctx context.Context, title, body string) error {
	parts := strings.Fields(n.Command)
	if len(parts) == 0 {
		return fmt.Errorf("empty notify command")
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(parts[1:], title, body)
	cmd := exec.CommandContext(ctx, parts[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running %s: %v: %s", parts[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Discard is a Notifier that drops every notification. Used in tests and
// quiet mode.
type Discard struct{}

func (Discard) Notify(ctx context.Context, title, body string) error { return nil }
