// Package jsonfile persists the contact Book as a single JSON document
// on disk.
//
// WHY JSON AND NOT AN OPAQUE OBJECT DUMP?
// ───────────────────────────────────────
// The encoding is explicit and versioned so the persisted layout stays
// portable and inspectable: you can open the file in an editor, diff it,
// or fix it by hand. A "version" field at the top lets a future format
// change detect old files instead of misreading them.
//
// Layout (version 1):
//
//	{
//	  "version": 1,
//	  "contacts": [
//	    {
//	      "name": "Ann",
//	      "phones": ["1234567890"],
//	      "birthday": "05.06.1990"
//	    }
//	  ]
//	}
//
// Loading goes back through the contact constructors, so every field is
// re-validated. A file that decodes but fails validation is treated as
// corrupt, exactly like malformed JSON.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
	"github.com/aanand-mishra/contacts-assistant/internal/storage"
)

// formatVersion is the encoding version this package writes and the only
// one it accepts back.
const formatVersion = 1

// bookFile is the top-level document. contactEntry is one record;
// birthday is a pointer so an unset birthday is omitted entirely rather
// than written as "".
type bookFile struct {
	Version  int            `json:"version"`
	Contacts []contactEntry `json:"contacts"`
}

type contactEntry struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday,omitempty"`
}

// Store is the JSON-file implementation of storage.Storage.
type Store struct {
	path string
}

// New returns a Store persisting to the given file path.
// The file itself is not touched until the first Save or Load.
func New(path string) *Store {
	return &Store{path: path}
}

// Save serializes the whole book and rewrites the file.
// Records are written in name order so saving the same book twice
// produces byte-identical files — handy for diffing and for tests.
func (s *Store) Save(book *contact.Book) error {
	doc := bookFile{
		Version: formatVersion,
		// Non-nil even when empty, so the file says "contacts": []
		// rather than "contacts": null.
		Contacts: make([]contactEntry, 0, book.Len()),
	}

	for _, r := range book.Records() {
		entry := contactEntry{
			Name:   r.Name().String(),
			Phones: make([]string, 0, len(r.Phones())),
		}
		for _, p := range r.Phones() {
			entry.Phones = append(entry.Phones, p.String())
		}
		if bd, ok := r.Birthday(); ok {
			formatted := bd.String()
			entry.Birthday = &formatted
		}
		doc.Contacts = append(doc.Contacts, entry)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile.Save: marshal: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile.Save: write %s: %w", s.path, err)
	}
	return nil
}

// Load reads the file and reconstructs the book.
//
//   - File absent        → empty Book, nil error (first run).
//   - File unreadable    → error.
//   - Bad JSON / version / field values → error wrapping storage.ErrCorrupt.
func (s *Store) Load() (*contact.Book, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return contact.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile.Load: read %s: %w", s.path, err)
	}

	var doc bookFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonfile.Load: %w: decode: %w", storage.ErrCorrupt, err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("jsonfile.Load: %w: unsupported version %d",
			storage.ErrCorrupt, doc.Version)
	}

	book := contact.NewBook()
	for _, entry := range doc.Contacts {
		record, err := contact.NewRecord(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("jsonfile.Load: %w: contact %q: %w",
				storage.ErrCorrupt, entry.Name, err)
		}
		for _, phone := range entry.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("jsonfile.Load: %w: contact %q: %w",
					storage.ErrCorrupt, entry.Name, err)
			}
		}
		if entry.Birthday != nil {
			if err := record.SetBirthday(*entry.Birthday); err != nil {
				return nil, fmt.Errorf("jsonfile.Load: %w: contact %q: %w",
					storage.ErrCorrupt, entry.Name, err)
			}
		}
		book.Add(record)
	}
	return book, nil
}
