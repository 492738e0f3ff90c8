package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"remindctl/internal/reminder"
	"remindctl/internal/storage"

	"github.com/adrg/frontmatter"
)

// Store implements storage.Storage using Markdown files with YAML front-matter.
// One file per reminder; the description is the file body.
type Store struct {
	baseDir  string // e.g. ~/.remindctl/reminders/
	lockPath string
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	remindersDir := filepath.Join(dataDir, "reminders")
	if err := os.MkdirAll(remindersDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating reminders directory: %v", storage.ErrStorage, err)
	}
	return &Store{
		baseDir:  remindersDir,
		lockPath: filepath.Join(remindersDir, ".lock"),
	}, nil
}

// lock takes the store-wide exclusive lock. Every mutation holds it for its
// full read-modify-write cycle so the scanner's MarkNotified and a foreground
// Update can never interleave into a half-applied record.
func (s *Store) lock() (*os.File, error) {
	f, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: opening lock file: %v", storage.ErrStorage, err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}
	return f, nil
}

func (s *Store) unlock(f *os.File) {
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	f.Close()
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.baseDir, id+".md")
}

func marshal(r reminder.Reminder) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %s\n", r.ID)
	fmt.Fprintf(&b, "title: %q\n", r.Title)
	fmt.Fprintf(&b, "due_at: %s\n", r.DueAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "created_at: %s\n", r.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "notified: %t\n", r.Notified)
	b.WriteString("---\n\n")
	b.WriteString(r.Description)
	return []byte(b.String())
}

type frontMatter struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	DueAt     string `yaml:"due_at"`
	CreatedAt string `yaml:"created_at"`
	Notified  bool   `yaml:"notified"`
}

func unmarshal(data []byte) (reminder.Reminder, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}

	dueAt, err := time.Parse(time.RFC3339, fm.DueAt)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: parsing due_at: %v", storage.ErrStorage, err)
	}
	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}

	return reminder.Reminder{
		ID:          fm.ID,
		Title:       fm.Title,
		// marshal puts exactly one blank line between the front-matter and
		// the description, so only that separator comes off here.
		Description: strings.TrimPrefix(string(body), "\n"),
		DueAt:       dueAt,
		CreatedAt:   createdAt,
		Notified:    fm.Notified,
	}, nil
}

// atomicWrite writes data to a temp file then renames it to the target path,
// so readers only ever see complete files. Callers that first read the record
// must hold the store lock across the whole cycle.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Create persists a new reminder as a Markdown file.
func (s *Store) Create(r reminder.Reminder) error {
	if err := reminder.ValidateTitle(r.Title); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	if r.DueAt.IsZero() {
		return fmt.Errorf("%w: due time must be set", storage.ErrValidation)
	}

	lk, err := s.lock()
	if err != nil {
		return err
	}
	defer s.unlock(lk)

	path := s.path(r.ID)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: reminder %s", storage.ErrConflict, r.ID)
	}

	return s.atomicWrite(path, marshal(r))
}

// Get retrieves a reminder by ID.
func (s *Store) Get(id string) (reminder.Reminder, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return reminder.Reminder{}, storage.ErrNotFound
		}
		return reminder.Reminder{}, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}
	return unmarshal(data)
}

// List returns reminders matching the given options, due-ascending.
func (s *Store) List(opts storage.ListOptions) ([]reminder.Reminder, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading reminders directory: %v", storage.ErrStorage, err)
	}

	var reminders []reminder.Reminder
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
		}
		r, err := unmarshal(data)
		if err != nil {
			return nil, err
		}
		if opts.DueBefore != nil && r.DueAt.After(*opts.DueBefore) {
			continue
		}
		if opts.OnlyPending && r.Notified {
			continue
		}
		reminders = append(reminders, r)
	}

	sort.Slice(reminders, func(i, j int) bool {
		if !reminders[i].DueAt.Equal(reminders[j].DueAt) {
			return reminders[i].DueAt.Before(reminders[j].DueAt)
		}
		return reminders[i].ID < reminders[j].ID
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(reminders) {
			return nil, nil
		}
		reminders = reminders[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(reminders) {
		reminders = reminders[:opts.Limit]
	}
	return reminders, nil
}

// Update applies the non-nil fields to an existing reminder.
func (s *Store) Update(id string, fields storage.UpdateFields) (reminder.Reminder, error) {
	lk, err := s.lock()
	if err != nil {
		return reminder.Reminder{}, err
	}
	defer s.unlock(lk)

	current, err := s.Get(id)
	if err != nil {
		return reminder.Reminder{}, err
	}

	if fields.Title != nil {
		if err := reminder.ValidateTitle(*fields.Title); err != nil {
			return reminder.Reminder{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}
		current.Title = *fields.Title
	}
	if fields.Description != nil {
		current.Description = *fields.Description
	}
	if fields.DueAt != nil {
		// A due time moved into the future re-arms the reminder.
		if !fields.DueAt.Equal(current.DueAt) && fields.DueAt.After(time.Now()) {
			current.Notified = false
		}
		current.DueAt = *fields.DueAt
	}

	if err := s.atomicWrite(s.path(id), marshal(current)); err != nil {
		return reminder.Reminder{}, err
	}
	return current, nil
}

// Delete removes a reminder file.
func (s *Store) Delete(id string) error {
	lk, err := s.lock()
	if err != nil {
		return err
	}
	defer s.unlock(lk)

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("%w: removing file: %v", storage.ErrStorage, err)
	}
	return nil
}

// MarkNotified flags a reminder as having fired for its current due time.
func (s *Store) MarkNotified(id string) error {
	lk, err := s.lock()
	if err != nil {
		return err
	}
	defer s.unlock(lk)

	current, err := s.Get(id)
	if err != nil {
		return err
	}
	current.Notified = true
	return s.atomicWrite(s.path(id), marshal(current))
}
