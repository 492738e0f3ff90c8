package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"remindctl/internal/notify"
	"remindctl/internal/storage"
)

// DefaultInterval is the sweep cadence used when none is configured.
const DefaultInterval = 2 * time.Second

// Scanner periodically fires notifications for due reminders. It talks only
// to the store; it never touches the UI's in-memory state.
type Scanner struct {
	store    storage.Storage
	notifier notify.Notifier
	logger   *log.Logger
}

// New creates a scanner. A nil logger discards diagnostics.
func New(store storage.Storage, notifier notify.Notifier, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scanner{store: store, notifier: notifier, logger: logger}
}

// Sweep fires one compare-and-notify pass: every reminder with a due time at
// or before now that has not been notified gets one notification, in due
// order, and is then marked. Each notify+mark pair is independent; one
// reminder failing never blocks the rest. Returns how many notifications
// were delivered.
func (s *Scanner) Sweep(ctx context.Context, now time.Time) (int, error) {
	due, err := s.store.List(storage.ListOptions{DueBefore: &now, OnlyPending: true})
	if err != nil {
		return 0, fmt.Errorf("listing due reminders: %w", err)
	}

	fired := 0
	for _, r := range due {
		if ctx.Err() != nil {
			// Abandoning mid-sweep is safe: unmarked reminders are
			// retried on the next pass.
			return fired, ctx.Err()
		}

		if err := s.notifier.Notify(ctx, r.Title, r.Description); err != nil {
			// Not marked, so the next sweep retries this reminder.
			s.logger.Printf("notify failed for reminder %s: %v", r.ID, err)
			continue
		}
		fired++

		if err := s.store.MarkNotified(r.ID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Deleted while the notification was in flight;
				// nothing left to mark.
				continue
			}
			// Notification went out but the flag did not stick:
			// the reminder may fire again next sweep.
			s.logger.Printf("mark-notified failed for reminder %s (may re-fire): %v", r.ID, err)
		}
	}
	return fired, nil
}

// Run sweeps at the given interval until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			if _, err := s.Sweep(ctx, t); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Printf("sweep failed: %v", err)
			}
		}
	}
}
