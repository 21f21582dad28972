// Package contact holds the contact-directory data model: validated field
// values (Name, Phone, Birthday), the Record aggregate, and the Book
// collection.
//
// FIELD DESIGN — VALIDATED VALUE TYPES:
// ─────────────────────────────────────
// Every field validates its input exactly ONCE, inside its constructor.
// After that the value is immutable: the raw value lives in an unexported
// struct field with accessor methods and no setters. "Editing" a field
// therefore means constructing a replacement value and swapping it in —
// there is no way to mutate a Phone or Birthday in place.
//
// This gives us a simple guarantee the rest of the program can rely on:
// if you are holding a Phone, it IS ten digits. No code after the
// constructor ever needs to re-check.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the fixed textual pattern birthdays are parsed from
// and formatted to. In Go's reference-time notation "02.01.2006" means
// day.month.year — e.g. "29.03.1998".
const BirthdayLayout = "02.01.2006"

// validate is the shared validator instance for field rules.
// A single instance is the recommended usage: it caches struct/tag
// metadata, and Var calls on it are safe for sequential reuse.
var validate = validator.New()

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError is returned by every field constructor when the input
// violates the field's format rule.
//
// It names the field and the violated rule so the caller (the assistant
// bot, a test, a storage loader) can surface a precise message. The
// underlying cause — a validator error or a time parse error — is kept
// for wrapping but never needed for display.
// ─────────────────────────────────────────────────────────────────────────────
type ValidationError struct {
	Field  string // which field rejected the input, e.g. "phone"
	Reason string // human-readable rule, e.g. "must be exactly 10 digits"
	cause  error  // underlying validator/parse error, may be nil
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is / errors.As traverse to the underlying cause.
func (e *ValidationError) Unwrap() error { return e.cause }

// AsValidation extracts the *ValidationError from err's chain.
// Returns nil if the chain contains none.
func AsValidation(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Name — the contact's name. Required; any non-empty string is accepted.
// The Name is the Record's key in the Book, so it never changes after
// construction: renaming a contact means delete + re-insert.
// ─────────────────────────────────────────────────────────────────────────────
type Name struct {
	value string
}

// NewName validates and wraps a contact name.
// The only rule is "non-empty": blank (all-whitespace) input is rejected
// too, because a key nobody can type back is a key nobody can look up.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, &ValidationError{
			Field:  "name",
			Reason: "must not be empty",
		}
	}
	return Name{value: value}, nil
}

// String returns the raw name.
func (n Name) String() string { return n.value }

// Equal reports value equality on the raw string.
func (n Name) Equal(other Name) bool { return n.value == other.value }

// ─────────────────────────────────────────────────────────────────────────────
// Phone — a phone number. Must be EXACTLY 10 decimal digits.
//
// The rule is expressed as validator tags rather than a hand-written
// loop: "len=10" pins the length and "number" admits digits 0-9 only
// (unlike "numeric", which would also accept signs and decimal points).
// ─────────────────────────────────────────────────────────────────────────────
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number.
// Construction is all-or-nothing: on any rule violation the zero Phone
// and a *ValidationError are returned, never a partially-valid value.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, "required,len=10,number"); err != nil {
		return Phone{}, &ValidationError{
			Field:  "phone",
			Reason: "must be exactly 10 digits",
			cause:  err,
		}
	}
	return Phone{value: value}, nil
}

// String returns the raw 10-digit string.
func (p Phone) String() string { return p.value }

// Equal reports value equality on the raw string.
func (p Phone) Equal(other Phone) bool { return p.value == other.value }

// ─────────────────────────────────────────────────────────────────────────────
// Birthday — a calendar date, parsed from the fixed DD.MM.YYYY pattern.
// Stored as a date value (time.Time at midnight UTC), NOT as the input
// string — so equality and the upcoming-birthdays arithmetic work on the
// decoded date, and formatting always reproduces the canonical form.
// ─────────────────────────────────────────────────────────────────────────────
type Birthday struct {
	date time.Time
}

// NewBirthday parses and wraps a birthday.
func NewBirthday(value string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{
			Field:  "birthday",
			Reason: "invalid date format, use DD.MM.YYYY",
			cause:  err,
		}
	}
	return Birthday{date: date}, nil
}

// Date returns the decoded calendar date.
func (b Birthday) Date() time.Time { return b.date }

// String formats the date back to DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Equal reports value equality on the decoded date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }
