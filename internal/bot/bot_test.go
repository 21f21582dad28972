package bot_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/contacts-assistant/internal/bot"
	"github.com/aanand-mishra/contacts-assistant/internal/contact"
)

// runSession drives a full scripted session: the lines go in as if the
// user typed them, the whole transcript comes back out.
func runSession(t *testing.T, book *contact.Book, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	b := bot.New(book, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.Run(in, &out))
	return out.String()
}

func TestBot_ScriptedSession(t *testing.T) {
	book := contact.NewBook()
	transcript := runSession(t, book,
		"hello",
		"add John 1234567890",
		"add-birthday John 05.06.1990",
		"phone John",
		"all",
		"show-birthday John",
		"exit",
	)

	assert.Contains(t, transcript, "Welcome to the assistant bot!")
	assert.Contains(t, transcript, "How can I help you?")
	assert.Contains(t, transcript, "Contact added.")
	assert.Contains(t, transcript, "Birthday added for John.")
	assert.Contains(t, transcript, "John: 1234567890")
	assert.Contains(t, transcript,
		"Contact name: John, phones: 1234567890, birthday: 05.06.1990")
	assert.Contains(t, transcript, "John's birthday is 05.06.1990")
	assert.Contains(t, transcript, "Good bye!")

	// The session's mutations landed in the book the caller handed in.
	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Len(t, r.Phones(), 1)
}

func TestBot_UnknownCommand(t *testing.T) {
	transcript := runSession(t, contact.NewBook(),
		"frobnicate",
		"close",
	)
	assert.Contains(t, transcript,
		"Invalid command. Type 'help' for a list of commands.")
}

func TestBot_BlankLinesAreSkipped(t *testing.T) {
	transcript := runSession(t, contact.NewBook(),
		"",
		"   ",
		"exit",
	)
	// Blank input produces no response line, only fresh prompts.
	assert.NotContains(t, transcript, "Invalid command")
	assert.Contains(t, transcript, "Good bye!")
}

func TestBot_HelpListsCommands(t *testing.T) {
	transcript := runSession(t, contact.NewBook(),
		"help",
		"exit",
	)
	assert.Contains(t, transcript, "Available commands:")
	assert.Contains(t, transcript, "add [name] [phone]")
	assert.Contains(t, transcript, "birthdays")
}

func TestBot_EndOfInputEndsSession(t *testing.T) {
	// No exit command — the input just runs out.
	in := strings.NewReader("hello\n")
	var out bytes.Buffer

	b := bot.New(contact.NewBook(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, b.Run(in, &out))
	assert.Contains(t, out.String(), "How can I help you?")
}
