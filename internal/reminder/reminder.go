package reminder

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Reminder represents a single scheduled reminder.
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueAt       time.Time `json:"due_at"`
	CreatedAt   time.Time `json:"created_at"`
	Notified    bool      `json:"notified"`
}

// New builds a reminder with a fresh ID and CreatedAt set to now.
func New(title, description string, dueAt time.Time) (Reminder, error) {
	if err := ValidateTitle(title); err != nil {
		return Reminder{}, err
	}
	if dueAt.IsZero() {
		return Reminder{}, fmt.Errorf("reminder due time must be set")
	}
	id, err := NewID()
	if err != nil {
		return Reminder{}, fmt.Errorf("generating reminder ID: %w", err)
	}
	return Reminder{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: description,
		DueAt:       dueAt,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// NewID generates a new nanoid for a reminder.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid reminder ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// ValidateTitle checks whether a title is non-empty.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("reminder title must not be empty")
	}
	return nil
}

// dueLayouts are the accepted absolute date/time input formats, tried in order.
var dueLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseDueAt parses user input into an absolute due instant.
// A bare HH:MM means that wall-clock time today, in the local timezone.
func ParseDueAt(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("due time must not be empty")
	}

	if t, err := time.ParseInLocation("15:04", s, time.Local); err == nil {
		y, m, d := now.Local().Date()
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}

	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized due time %q (use HH:MM, YYYY-MM-DD HH:MM, or RFC3339)", s)
}

// Due reports whether the reminder is due at the given instant and has not
// yet been notified.
func (r Reminder) Due(now time.Time) bool {
	return !r.Notified && !r.DueAt.After(now)
}

// Preview returns a single-line truncated preview of the description.
func (r Reminder) Preview(maxLen int) string {
	desc := strings.ReplaceAll(r.Description, "\n", " ")
	if len(desc) <= maxLen {
		return desc
	}
	return desc[:maxLen-3] + "..."
}
