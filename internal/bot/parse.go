// Package bot is the interactive assistant: a read-eval-print loop that
// parses user commands and drives the contact Book.
//
// BOUNDARY RULE:
// ──────────────
// The core (contact, storage) never prints and never reads a terminal.
// Everything user-facing — prompts, friendly error messages, the help
// table — lives here. Handlers translate core results and errors into
// plain strings; the loop only writes strings out.
package bot

import "strings"

// ParseInput splits a raw input line into a command and its arguments.
//
// The first whitespace-separated token is the command, lowercased so
// "ADD" and "add" behave the same. Everything after it is passed to the
// handler untouched (names stay case-sensitive — they are map keys).
// Blank input yields an empty command, which the loop skips.
func ParseInput(line string) (command string, args []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}
