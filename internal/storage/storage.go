// Package storage defines the persistence contract for the contact Book.
//
// WHY AN INTERFACE?
// ─────────────────
// The assistant does not care WHERE the book lives — a JSON file, a
// SQLite database, or something else entirely. main.go picks a backend
// from configuration and the rest of the program only ever sees this
// interface. Tests can pass an in-memory fake the same way.
//
// Persistence is whole-object: every Save serializes the COMPLETE Book
// and every Load reconstructs a complete Book. There is no incremental
// or per-record persistence — the book is small, and whole-object saves
// keep the on-disk state trivially consistent.
package storage

import (
	"errors"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
)

// ErrCorrupt is wrapped into any Load error caused by an existing but
// unreadable blob: malformed encoding, unsupported version, or field
// values that no longer pass validation. Check with errors.Is.
//
// A MISSING blob is deliberately NOT an error — the first run of the
// assistant has nothing on disk yet, and Load returns an empty Book.
var ErrCorrupt = errors.New("stored address book is corrupt")

// Storage is the persistence contract any backend must satisfy.
type Storage interface {
	// Save serializes the entire book and writes it to the backing
	// target, replacing whatever was stored before. Best-effort: no
	// partial-write protection is promised.
	Save(book *contact.Book) error

	// Load reads and reconstructs the book. A missing target yields a
	// fresh empty Book and a nil error. An existing but unreadable
	// target yields an error wrapping ErrCorrupt — never a silently
	// emptied book.
	Load() (*contact.Book, error)
}
