package bot

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aanand-mishra/contacts-assistant/internal/contact"
)

// Bot runs the assistant's command loop over a contact Book.
//
// The input and output streams are injected rather than hard-wired to
// os.Stdin/os.Stdout, so the whole loop can be driven by a bytes.Buffer
// in tests — a scripted session in, the full transcript out.
type Bot struct {
	book *contact.Book
	log  *slog.Logger
}

// New returns a Bot over the given book.
func New(book *contact.Book, log *slog.Logger) *Bot {
	return &Bot{book: book, log: log}
}

// Run reads commands from in and writes responses to out until the user
// types "close"/"exit" or the input stream ends. The only returned
// errors are I/O failures on the input stream; user mistakes are
// rendered as messages, never as errors.
func (b *Bot) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	fmt.Fprintln(out, "Type 'help' to see available commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			// EOF (e.g. piped input ran out) ends the session the same
			// way "exit" does, just without the farewell.
			break
		}

		command, args := ParseInput(scanner.Text())
		if command == "" {
			continue
		}

		b.log.Debug("dispatching command",
			slog.String("command", command),
			slog.Int("args", len(args)),
		)

		switch command {
		case "close", "exit":
			fmt.Fprintln(out, "Good bye!")
			return nil

		case "hello":
			fmt.Fprintln(out, "How can I help you?")

		case "help":
			printHelp(out)

		case "add":
			fmt.Fprintln(out, AddContact(args, b.book))

		case "change":
			fmt.Fprintln(out, ChangeContact(args, b.book))

		case "phone":
			fmt.Fprintln(out, ShowPhone(args, b.book))

		case "all":
			fmt.Fprintln(out, ShowAll(b.book))

		case "add-birthday":
			fmt.Fprintln(out, AddBirthday(args, b.book))

		case "show-birthday":
			fmt.Fprintln(out, ShowBirthday(args, b.book))

		case "birthdays":
			fmt.Fprintln(out, Birthdays(b.book, time.Now()))

		default:
			fmt.Fprintln(out, "Invalid command. Type 'help' for a list of commands.")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("bot.Run: read input: %w", err)
	}
	return nil
}

// printHelp writes the command table.
// An ordered slice, not a map — help should always print in the same
// order.
func printHelp(out io.Writer) {
	commands := []struct{ usage, desc string }{
		{"add [name] [phone]", "Add a new contact or phone to existing contact"},
		{"change [name] [old] [new]", "Change a phone number"},
		{"phone [name]", "Show phone numbers for a contact"},
		{"all", "Show all contacts"},
		{"add-birthday [name] [DD.MM.YYYY]", "Add birthday to a contact"},
		{"show-birthday [name]", "Show birthday for a contact"},
		{"birthdays", "Show upcoming birthdays in the next 7 days"},
		{"hello", "Get a greeting from the bot"},
		{"close / exit", "Exit the program"},
	}

	fmt.Fprintln(out, "\nAvailable commands:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-35s - %s\n", c.usage, c.desc)
	}
	fmt.Fprintln(out)
}
