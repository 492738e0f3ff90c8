package storage

import (
	"errors"
	"time"

	"remindctl/internal/reminder"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("reminder not found")
	ErrConflict   = errors.New("reminder already exists")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// ListOptions controls filtering for List operations. Results are always
// ordered by due time ascending, ties broken by ID ascending.
type ListOptions struct {
	DueBefore   *time.Time // only reminders with DueAt <= this instant (nil = all)
	OnlyPending bool       // only reminders not yet notified
	Limit       int        // 0 = no limit
	Offset      int        // pagination offset
}

// UpdateFields holds the mutable reminder fields for Update.
// Nil fields are left unchanged.
type UpdateFields struct {
	Title       *string
	Description *string
	DueAt       *time.Time
}

// Storage defines the interface for reminder persistence.
// Every operation is atomic end-to-end: a concurrent reader never observes
// a partial write, which is what lets the due scanner and the interactive
// loop share a store without further coordination.
type Storage interface {
	// Create persists a new reminder. The caller assigns ID and CreatedAt.
	Create(r reminder.Reminder) error

	// Get retrieves a reminder by ID.
	Get(id string) (reminder.Reminder, error)

	// List returns a snapshot of reminders matching opts, ordered by
	// due time ascending (ties by ID). The snapshot is recomputed on
	// each call, never a live view.
	List(opts ListOptions) ([]reminder.Reminder, error)

	// Update applies the non-nil fields to the reminder atomically.
	// Moving DueAt to a future instant resets the notified flag so the
	// reminder fires again at its new time.
	Update(id string, fields UpdateFields) (reminder.Reminder, error)

	// Delete removes a reminder permanently.
	Delete(id string) error

	// MarkNotified records that a notification fired for the reminder's
	// current due time.
	MarkNotified(id string) error

	// Close releases any resources held by the backend.
	Close() error
}
