package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
)

// Every handler takes the parsed arguments and the book, and returns the
// message to show the user. Handlers never print and never return Go
// errors — core errors are rendered into friendly strings right here,
// so the loop has exactly one thing to do with a handler result.

// AddContact handles: add [name] [phone]
// Creates the contact if it does not exist, then appends the phone.
// Adding a second phone to an existing contact goes through the SAME
// command — we look the record up and mutate it, we never build a fresh
// Record for an existing name (that would overwrite, not extend).
func AddContact(args []string, book *contact.Book) string {
	if len(args) < 2 {
		return msgNotEnoughArgs
	}
	name, phone := args[0], args[1]

	record, ok := book.Find(name)
	message := "Contact updated."
	if !ok {
		var err error
		record, err = contact.NewRecord(name)
		if err != nil {
			return renderError(err)
		}
		book.Add(record)
		message = "Contact added."
	}

	if err := record.AddPhone(phone); err != nil {
		return renderError(err)
	}
	return message
}

// ChangeContact handles: change [name] [old_phone] [new_phone]
func ChangeContact(args []string, book *contact.Book) string {
	if len(args) < 3 {
		return msgNotEnoughArgs
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := book.Find(name)
	if !ok {
		return fmt.Sprintf("Contact '%s' not found.", name)
	}

	replaced, err := record.EditPhone(oldPhone, newPhone)
	if err != nil {
		return renderError(err)
	}
	if !replaced {
		return fmt.Sprintf("Phone %s not found for %s.", oldPhone, name)
	}
	return fmt.Sprintf("%s's phone updated.", name)
}

// ShowPhone handles: phone [name]
func ShowPhone(args []string, book *contact.Book) string {
	if len(args) < 1 {
		return msgNotEnoughArgs
	}
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		return fmt.Sprintf("Contact '%s' not found.", name)
	}

	phones := make([]string, 0, len(record.Phones()))
	for _, p := range record.Phones() {
		phones = append(phones, p.String())
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(phones, ", "))
}

// ShowAll handles: all
func ShowAll(book *contact.Book) string {
	if book.Len() == 0 {
		return "No contacts found."
	}
	lines := make([]string, 0, book.Len())
	for _, r := range book.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}

// AddBirthday handles: add-birthday [name] [DD.MM.YYYY]
func AddBirthday(args []string, book *contact.Book) string {
	if len(args) < 2 {
		return msgNotEnoughArgs
	}
	name, birthday := args[0], args[1]

	record, ok := book.Find(name)
	if !ok {
		return fmt.Sprintf("Contact '%s' not found.", name)
	}
	if err := record.SetBirthday(birthday); err != nil {
		return renderError(err)
	}
	return fmt.Sprintf("Birthday added for %s.", name)
}

// ShowBirthday handles: show-birthday [name]
func ShowBirthday(args []string, book *contact.Book) string {
	if len(args) < 1 {
		return msgNotEnoughArgs
	}
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		return fmt.Sprintf("Contact '%s' not found.", name)
	}
	birthday, ok := record.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday set for %s.", name)
	}
	return fmt.Sprintf("%s's birthday is %s", name, birthday)
}

// Birthdays handles: birthdays
// The reference date is passed in (the loop passes time.Now()) so tests
// can pin it to a known weekday.
func Birthdays(book *contact.Book, ref time.Time) string {
	greetings := book.UpcomingBirthdays(ref)
	if len(greetings) == 0 {
		return "No birthdays this week."
	}
	lines := make([]string, 0, len(greetings))
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf("%s: %s %s",
			g.Name, g.Celebration.Weekday(), g.Celebration.Format(contact.BirthdayLayout)))
	}
	return strings.Join(lines, "\n")
}
