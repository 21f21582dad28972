// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite FOR AN ADDRESS BOOK?
// ───────────────────────────────
// SQLite stores everything in a single file, needs no server process,
// and the driver is the only installation step. For the assistant it is
// an alternative to the JSON file that other tools (sqlite3 CLI, GUI
// browsers) can query directly.
//
// The persistence semantics stay WHOLE-OBJECT even though the data is
// relational underneath: Save replaces the entire contents inside one
// transaction, Load reconstructs the entire book. There is no row-level
// CRUD surface — the Book in memory is the source of truth between
// saves.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
	"github.com/aanand-mishra/contacts-assistant/internal/storage"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite implementation of storage.Storage.
// It holds a *sql.DB, the connection pool managed by database/sql.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at path and ensures the
// schema exists.
//
// Schema:
//
//	contacts — one row per record; name is the primary key, mirroring
//	           the Book's name-keyed map. birthday is the DD.MM.YYYY
//	           string, NULL when unset.
//	phones   — one row per phone; position preserves insertion order
//	           (duplicate numbers per contact are allowed, so the value
//	           alone cannot be a key).
func New(path string) (*Store, error) {
	// sql.Open does NOT connect yet — it only validates the driver
	// name. The first real connection happens on the first statement.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			name     TEXT PRIMARY KEY,
			birthday TEXT
		);
		CREATE TABLE IF NOT EXISTS phones (
			contact_name TEXT    NOT NULL REFERENCES contacts(name),
			position     INTEGER NOT NULL,
			value        TEXT    NOT NULL,
			PRIMARY KEY (contact_name, position)
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

// Save replaces the entire stored book with the given one.
//
// Everything runs inside a single transaction: either the new book is
// fully written or the old contents survive untouched. The deferred
// Rollback is a no-op after a successful Commit.
func (s *Store) Save(book *contact.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.Save: begin tx: %w", err)
	}
	defer tx.Rollback()

	// Whole-object semantics: wipe, then rewrite.
	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("sqlite.Save: clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("sqlite.Save: clear contacts: %w", err)
	}

	insertContact, err := tx.Prepare(
		"INSERT INTO contacts (name, birthday) VALUES (?, ?)",
	)
	if err != nil {
		return fmt.Errorf("sqlite.Save: prepare contact insert: %w", err)
	}
	defer insertContact.Close()

	insertPhone, err := tx.Prepare(
		"INSERT INTO phones (contact_name, position, value) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("sqlite.Save: prepare phone insert: %w", err)
	}
	defer insertPhone.Close()

	for _, r := range book.Records() {
		name := r.Name().String()

		// sql.NullString maps "no birthday" to SQL NULL.
		var birthday sql.NullString
		if bd, ok := r.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}

		if _, err := insertContact.Exec(name, birthday); err != nil {
			return fmt.Errorf("sqlite.Save: insert contact %q: %w", name, err)
		}
		for i, p := range r.Phones() {
			if _, err := insertPhone.Exec(name, i, p.String()); err != nil {
				return fmt.Errorf("sqlite.Save: insert phone for %q: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.Save: commit: %w", err)
	}
	return nil
}

// Load reconstructs the book from the database.
// An empty database is simply an empty book. Rows that no longer pass
// field validation mean the stored data was tampered with or written by
// something else — that is corruption, reported via storage.ErrCorrupt.
func (s *Store) Load() (*contact.Book, error) {
	book := contact.NewBook()

	rows, err := s.db.Query("SELECT name, birthday FROM contacts")
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: query contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name     string
			birthday sql.NullString
		)
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("sqlite.Load: scan contact: %w", err)
		}

		record, err := contact.NewRecord(name)
		if err != nil {
			return nil, fmt.Errorf("sqlite.Load: %w: contact %q: %w",
				storage.ErrCorrupt, name, err)
		}
		if birthday.Valid {
			if err := record.SetBirthday(birthday.String); err != nil {
				return nil, fmt.Errorf("sqlite.Load: %w: contact %q: %w",
					storage.ErrCorrupt, name, err)
			}
		}
		book.Add(record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Load: contacts iteration: %w", err)
	}

	// Second pass: attach phones in stored order.
	phoneRows, err := s.db.Query(
		"SELECT contact_name, value FROM phones ORDER BY contact_name, position",
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: query phones: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var contactName, value string
		if err := phoneRows.Scan(&contactName, &value); err != nil {
			return nil, fmt.Errorf("sqlite.Load: scan phone: %w", err)
		}

		record, ok := book.Find(contactName)
		if !ok {
			// A phone row pointing at no contact means the two tables
			// disagree — corruption, not a loadable state.
			return nil, fmt.Errorf("sqlite.Load: %w: phone row for unknown contact %q",
				storage.ErrCorrupt, contactName)
		}
		if err := record.AddPhone(value); err != nil {
			return nil, fmt.Errorf("sqlite.Load: %w: contact %q: %w",
				storage.ErrCorrupt, contactName, err)
		}
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Load: phones iteration: %w", err)
	}

	return book, nil
}
