package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
)

// mustRecord builds a record or fails the test, keeping the happy-path
// setup in the tests below readable.
func mustRecord(t *testing.T, name string, phones ...string) *contact.Record {
	t.Helper()
	r, err := contact.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

// mustRecordWithBirthday is mustRecord plus a birthday.
func mustRecordWithBirthday(t *testing.T, name, birthday string) *contact.Record {
	t.Helper()
	r := mustRecord(t, name)
	require.NoError(t, r.SetBirthday(birthday))
	return r
}

func TestBook_AddAndFind(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "John", "1234567890"))

	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, "John", r.Name().String())

	// Lookup is exact and case-sensitive.
	_, ok = book.Find("john")
	assert.False(t, ok)
	_, ok = book.Find("Jane")
	assert.False(t, ok)
}

func TestBook_AddOverwritesExistingName(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "John", "1234567890"))

	// Adding the same name again discards the previous record entirely.
	book.Add(mustRecord(t, "John", "5555555555"))

	r, ok := book.Find("John")
	require.True(t, ok)
	require.Len(t, r.Phones(), 1)
	assert.Equal(t, "5555555555", r.Phones()[0].String())
	assert.Equal(t, 1, book.Len())
}

func TestBook_FindReturnsLiveRecord(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "John"))

	// Mutating the found record mutates the book's state — this is how
	// "add phone to existing contact" works.
	r, ok := book.Find("John")
	require.True(t, ok)
	require.NoError(t, r.AddPhone("1234567890"))

	again, ok := book.Find("John")
	require.True(t, ok)
	assert.Len(t, again.Phones(), 1)
}

func TestBook_Delete_Idempotent(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "Jane", "9876543210"))

	book.Delete("Jane")
	_, ok := book.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, 0, book.Len())

	// Second delete of the same name is a no-op.
	book.Delete("Jane")
	assert.Equal(t, 0, book.Len())
}

func TestBook_Records_SortedByName(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "Charlie"))
	book.Add(mustRecord(t, "Ann"))
	book.Add(mustRecord(t, "Bob"))

	names := make([]string, 0, book.Len())
	for _, r := range book.Records() {
		names = append(names, r.Name().String())
	}
	assert.Equal(t, []string{"Ann", "Bob", "Charlie"}, names)
}

// Reference date for the birthday-window tests: Wednesday, 10.07.2024.
// The surrounding calendar: Sat 13th, Sun 14th, Mon 15th, Tue 16th.
var refWednesday = time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)

func TestUpcomingBirthdays_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		included bool
	}{
		{"on the reference day (offset 0)", "10.07.1990", true},
		{"last day of the window (offset 6)", "16.07.1990", true},
		{"one past the window (offset 7)", "17.07.1990", false},
		{"eight days ahead (offset 8)", "18.07.1990", false},
		{"the day before (offset -1)", "09.07.1990", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := contact.NewBook()
			book.Add(mustRecordWithBirthday(t, "Ann", tt.birthday))

			got := book.UpcomingBirthdays(refWednesday)
			if tt.included {
				require.Len(t, got, 1)
				assert.Equal(t, "Ann", got[0].Name)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestUpcomingBirthdays_WeekendRollsToMonday(t *testing.T) {
	monday := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)

	t.Run("saturday rolls two days", func(t *testing.T) {
		book := contact.NewBook()
		book.Add(mustRecordWithBirthday(t, "Ann", "13.07.1990")) // Sat 13.07.2024

		got := book.UpcomingBirthdays(refWednesday)
		require.Len(t, got, 1)
		assert.True(t, got[0].Celebration.Equal(monday))
	})

	t.Run("sunday rolls one day", func(t *testing.T) {
		book := contact.NewBook()
		book.Add(mustRecordWithBirthday(t, "Bob", "14.07.1990")) // Sun 14.07.2024

		got := book.UpcomingBirthdays(refWednesday)
		require.Len(t, got, 1)
		assert.True(t, got[0].Celebration.Equal(monday))
	})

	t.Run("weekday is not rolled", func(t *testing.T) {
		book := contact.NewBook()
		book.Add(mustRecordWithBirthday(t, "Eve", "11.07.1990")) // Thu 11.07.2024

		got := book.UpcomingBirthdays(refWednesday)
		require.Len(t, got, 1)
		assert.True(t, got[0].Celebration.Equal(
			time.Date(2024, time.July, 11, 0, 0, 0, 0, time.UTC)))
	})
}

// TestUpcomingBirthdays_TodaySameMonthDay covers the "birthday is today"
// scenario: the birth YEAR is long past, only month/day matter.
func TestUpcomingBirthdays_TodaySameMonthDay(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecordWithBirthday(t, "Ann", "10.07.2000"))

	got := book.UpcomingBirthdays(refWednesday)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)
	// 10.07.2024 is a Wednesday, so no roll: celebrate on the day.
	assert.True(t, got[0].Celebration.Equal(refWednesday))
}

func TestUpcomingBirthdays_SkipsRecordsWithoutBirthday(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecord(t, "NoBirthday", "1234567890"))
	book.Add(mustRecordWithBirthday(t, "Ann", "10.07.1990"))

	got := book.UpcomingBirthdays(refWednesday)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)
}

func TestUpcomingBirthdays_SortedByDateThenName(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecordWithBirthday(t, "Zoe", "11.07.1985"))
	book.Add(mustRecordWithBirthday(t, "Ann", "12.07.1990"))
	book.Add(mustRecordWithBirthday(t, "Bob", "11.07.1970"))

	got := book.UpcomingBirthdays(refWednesday)
	require.Len(t, got, 3)

	// 11th before 12th; same-day ties break alphabetically.
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "Zoe", got[1].Name)
	assert.Equal(t, "Ann", got[2].Name)
}

// TestUpcomingBirthdays_LeapDayProjection pins the Feb 29 policy: on a
// non-leap year the projection normalizes to March 1.
func TestUpcomingBirthdays_LeapDayProjection(t *testing.T) {
	book := contact.NewBook()
	book.Add(mustRecordWithBirthday(t, "Leap", "29.02.1996"))

	// Monday 27.02.2023; 2023 is not a leap year.
	ref := time.Date(2023, time.February, 27, 0, 0, 0, 0, time.UTC)

	got := book.UpcomingBirthdays(ref)
	require.Len(t, got, 1)
	// Projected to Wed 01.03.2023 — inside the window, no weekend roll.
	assert.True(t, got[0].Celebration.Equal(
		time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUpcomingBirthdays_EmptyBook(t *testing.T) {
	book := contact.NewBook()
	assert.Empty(t, book.UpcomingBirthdays(refWednesday))
}
