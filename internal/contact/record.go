package contact

import "strings"

// Record is one contact's aggregate: a required, immutable Name, an
// ordered list of phone numbers, and an optional birthday.
//
// OWNERSHIP AND MUTATION RULES:
// ─────────────────────────────
//   - The Record exclusively owns its Phone and Birthday values; callers
//     get copies (they are value types), never handles into the slice.
//   - Phones keep insertion order and duplicates ARE allowed — AddPhone
//     never de-duplicates. See DESIGN.md for the open question around
//     duplicate handling.
//   - The Name never changes after creation. Renaming a contact is
//     delete-then-add at the Book level.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record for the given contact name with no phones
// and no birthday. Fails with *ValidationError if the name is empty.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
// A copy, so callers cannot reorder or overwrite the Record's state.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates and appends a phone number.
// Duplicates are permitted; the same number can appear twice.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the FIRST phone whose raw value equals value.
// A missing phone is a silent no-op, not an error — the caller can use
// FindPhone first if it needs to distinguish.
func (r *Record) RemovePhone(value string) {
	for i, p := range r.phones {
		if p.String() == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone validates newValue and, if a phone equal to oldValue exists,
// replaces it with remove-then-append semantics (so the edited number
// moves to the END of the list — relative order is not preserved).
//
// The returned bool reports whether a replacement actually happened.
// A missing oldValue is a no-op (false, nil), NOT an error; callers that
// consider it a failure can act on the bool.
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	// Validate the replacement FIRST — an invalid new number must never
	// leave the record without its old one.
	p, err := NewPhone(newValue)
	if err != nil {
		return false, err
	}
	if _, ok := r.FindPhone(oldValue); !ok {
		return false, nil
	}
	r.RemovePhone(oldValue)
	r.phones = append(r.phones, p)
	return true, nil
}

// FindPhone returns the first phone matching the given raw value.
// Comma-ok result; never mutates.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.String() == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday validates and sets the birthday, unconditionally replacing
// any existing one (a Record holds at most one).
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday, comma-ok.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record for display:
//
//	Contact name: Ann, phones: 1234567890; 5555555555, birthday: 05.06.1990
//
// The birthday part is omitted when none is set. This string is for
// humans only — persistence uses the storage encodings, never this.
func (r *Record) String() string {
	parts := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		parts = append(parts, p.String())
	}
	s := "Contact name: " + r.name.String() + ", phones: " + strings.Join(parts, "; ")
	if r.birthday != nil {
		s += ", birthday: " + r.birthday.String()
	}
	return s
}
