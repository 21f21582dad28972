package contact

import (
	"sort"
	"time"
)

// upcomingWindowDays is the width of the birthday lookahead: a birthday
// is "upcoming" when its projection lands 0 to 6 days (inclusive) after
// the reference date.
const upcomingWindowDays = 6

// Book is the contact directory: a mapping from contact name to Record.
//
// WHY A STRUCT AND NOT A BARE MAP?
// ────────────────────────────────
// The backing map is deliberately unexported and never handed out.
// Exposing it would let callers insert a record under the WRONG key and
// break the one invariant everything else relies on: every Record is
// stored under exactly its own name. All access goes through named
// methods instead.
//
// The Book is single-actor by design — no locking, no concurrent use.
type Book struct {
	records map[string]*Record
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add inserts the record under its own name.
// Adding a name that already exists OVERWRITES the old record entirely —
// no merging. A caller that wants "add a phone to an existing contact"
// must Find the record first and mutate it, not Add a fresh one.
func (b *Book) Add(r *Record) {
	b.records[r.Name().String()] = r
}

// Find looks up a record by exact, case-sensitive name. Comma-ok.
// The returned pointer is the live record: mutating it (AddPhone,
// SetBirthday, ...) mutates the Book's state, which is how the
// dispatcher edits existing contacts.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
// Deleting an absent name is a no-op, so Delete is idempotent.
func (b *Book) Delete(name string) {
	delete(b.records, name)
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records as a snapshot slice, sorted by name so
// that listings are stable. Iteration is always exhaustive.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name().String() < out[j].Name().String()
	})
	return out
}

// Greeting is one entry in the upcoming-birthdays report: who to
// congratulate and on which day.
type Greeting struct {
	// Name is the contact's name.
	Name string
	// Celebration is the day to congratulate on: the birthday projected
	// onto the reference year, rolled off weekends onto Monday.
	Celebration time.Time
}

// UpcomingBirthdays reports every contact whose birthday, projected onto
// ref's year, falls within the next 7 calendar days: offsets 0 through 6
// from ref, both ends inclusive.
//
// PROJECTION AND WEEKEND ROLL:
// ────────────────────────────
//  1. Take the birthday's month and day in ref's year. time.Date
//     normalizes Feb 29 to Mar 1 on non-leap years, which is exactly the
//     policy we want for leap-day birthdays.
//  2. Include the contact if the projection is inside the window. The
//     window test runs on the RAW projection, before any roll.
//  3. If the projection lands on Saturday or Sunday, roll the
//     celebration forward to the following Monday (offset 7-weekday with
//     Monday=0 … Sunday=6). The ROLLED date is what gets reported.
//
// Results are sorted by celebration date, ties broken by name, so the
// report reads chronologically.
func (b *Book) UpcomingBirthdays(ref time.Time) []Greeting {
	// Truncate ref to a bare date so the day arithmetic below never
	// trips over the time-of-day component.
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	end := ref.AddDate(0, 0, upcomingWindowDays)

	var upcoming []Greeting
	for _, r := range b.records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}

		projected := time.Date(
			ref.Year(), bd.Date().Month(), bd.Date().Day(),
			0, 0, 0, 0, time.UTC,
		)
		if projected.Before(ref) || projected.After(end) {
			continue
		}

		celebration := projected
		// Go counts weekdays Sunday=0 … Saturday=6; shift to the
		// Monday=0 convention the roll formula is written in.
		if wd := (int(projected.Weekday()) + 6) % 7; wd >= 5 {
			celebration = projected.AddDate(0, 0, 7-wd)
		}

		upcoming = append(upcoming, Greeting{
			Name:        r.Name().String(),
			Celebration: celebration,
		})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].Celebration.Equal(upcoming[j].Celebration) {
			return upcoming[i].Celebration.Before(upcoming[j].Celebration)
		}
		return upcoming[i].Name < upcoming[j].Name
	})
	return upcoming
}
