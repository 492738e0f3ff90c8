package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"remindctl/internal/reminder"
	"remindctl/internal/storage"

	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend rooted at dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "remindctl.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The libsql driver's Exec rejects statements that
	// return rows, and PRAGMA does, so these go through QueryRow instead.
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&journalMode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}
	// Wait out the other writer instead of failing with SQLITE_BUSY
	var busyTimeout int
	if err := db.QueryRow("PRAGMA busy_timeout=5000").Scan(&busyTimeout); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: setting busy timeout: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS reminders (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL CHECK(length(trim(title)) > 0),
			description TEXT NOT NULL DEFAULT '',
			due_at      TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			notified    INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_reminders_due_at ON reminders(due_at, id);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create persists a new reminder.
func (s *Store) Create(r reminder.Reminder) error {
	if err := reminder.ValidateTitle(r.Title); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	if r.DueAt.IsZero() {
		return fmt.Errorf("%w: due time must be set", storage.ErrValidation)
	}

	var exists int
	if err := s.db.QueryRow("SELECT count(*) FROM reminders WHERE id = ?", r.ID).Scan(&exists); err == nil && exists > 0 {
		return fmt.Errorf("%w: reminder %s", storage.ErrConflict, r.ID)
	}

	_, err := s.db.Exec(
		"INSERT INTO reminders (id, title, description, due_at, created_at, notified) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID,
		r.Title,
		r.Description,
		r.DueAt.UTC().Format(time.RFC3339),
		r.CreatedAt.UTC().Format(time.RFC3339),
		boolToInt(r.Notified),
	)
	if err != nil {
		return fmt.Errorf("%w: inserting reminder: %v", storage.ErrStorage, err)
	}
	return nil
}

// Get retrieves a reminder by ID.
func (s *Store) Get(id string) (reminder.Reminder, error) {
	row := s.db.QueryRow(
		"SELECT id, title, description, due_at, created_at, notified FROM reminders WHERE id = ?", id,
	)
	return scanReminder(row)
}

// List returns reminders matching the given options, due-ascending.
func (s *Store) List(opts storage.ListOptions) ([]reminder.Reminder, error) {
	query := "SELECT id, title, description, due_at, created_at, notified FROM reminders"
	var args []interface{}
	var where []string

	if opts.DueBefore != nil {
		where = append(where, "due_at <= ?")
		args = append(args, opts.DueBefore.UTC().Format(time.RFC3339))
	}
	if opts.OnlyPending {
		where = append(where, "notified = 0")
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY due_at ASC, id ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing reminders: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	var reminders []reminder.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating rows: %v", storage.ErrStorage, err)
	}
	return reminders, nil
}

// Update applies the non-nil fields to an existing reminder. It runs as a
// single UPDATE so a concurrent MarkNotified from the scanner can never be
// overwritten by a stale read-modify-write. RFC3339 UTC timestamps compare
// lexically, which lets the re-arm decision (due time moved into the future)
// run against the row's current due_at inside the statement.
func (s *Store) Update(id string, fields storage.UpdateFields) (reminder.Reminder, error) {
	if fields.Title != nil {
		if err := reminder.ValidateTitle(*fields.Title); err != nil {
			return reminder.Reminder{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}
	}

	var due *string
	if fields.DueAt != nil {
		v := fields.DueAt.UTC().Format(time.RFC3339)
		due = &v
	}
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.Exec(
		`UPDATE reminders SET
			notified    = CASE WHEN ? IS NOT NULL AND ? <> due_at AND ? > ? THEN 0 ELSE notified END,
			title       = COALESCE(?, title),
			description = COALESCE(?, description),
			due_at      = COALESCE(?, due_at)
		WHERE id = ?`,
		due, due, due, now,
		fields.Title,
		fields.Description,
		due,
		id,
	)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: updating reminder: %v", storage.ErrStorage, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return reminder.Reminder{}, storage.ErrNotFound
	}
	return s.Get(id)
}

// Delete removes a reminder by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: deleting reminder: %v", storage.ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking delete result: %v", storage.ErrStorage, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MarkNotified flags a reminder as having fired for its current due time.
func (s *Store) MarkNotified(id string) error {
	res, err := s.db.Exec("UPDATE reminders SET notified = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: marking reminder notified: %v", storage.ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking update result: %v", storage.ErrStorage, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (reminder.Reminder, error) {
	var r reminder.Reminder
	var dueStr, createdStr string
	var notified int
	if err := row.Scan(&r.ID, &r.Title, &r.Description, &dueStr, &createdStr, &notified); err != nil {
		if err == sql.ErrNoRows {
			return reminder.Reminder{}, storage.ErrNotFound
		}
		return reminder.Reminder{}, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
	}

	var err error
	r.DueAt, err = time.Parse(time.RFC3339, dueStr)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: parsing due_at: %v", storage.ErrStorage, err)
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return reminder.Reminder{}, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
	}
	r.Notified = notified != 0
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
