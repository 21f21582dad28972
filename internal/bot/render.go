package bot

import "github.com/aanand-mishra/contacts-assistant/internal/contact"

// User-facing message constants. Raw string literals scattered through
// the handlers would be easy to typo and hard to assert on in tests.
const (
	msgNotEnoughArgs = "Not enough arguments. Please check your input."
	msgInvalidData   = "Please enter valid data."
)

// renderError translates a core error into a friendly message.
//
// The switch mirrors the per-rule translation we do for validation
// failures everywhere: each field's rule gets its own sentence, and
// anything unrecognised falls back to a generic hint rather than leaking
// an internal error string at the user.
func renderError(err error) string {
	ve := contact.AsValidation(err)
	if ve == nil {
		return msgInvalidData
	}
	switch ve.Field {
	case "phone":
		return "Phone number must be exactly 10 digits."
	case "birthday":
		return "Invalid date format. Use DD.MM.YYYY"
	case "name":
		return "Contact name must not be empty."
	default:
		return msgInvalidData
	}
}
