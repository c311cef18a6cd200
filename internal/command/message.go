package command

import (
	"errors"

	"github.com/smileynet/contactbook/internal/contact"
)

// User-facing response texts.
const (
	MsgGreeting      = "How can I help you?"
	MsgSaved         = "Info saved successfully."
	MsgUnknown       = "Unknown command. Try again."
	MsgFarewell      = "Good bye!"
	MsgMissingParams = "Not enough params"
	MsgNoContact     = "There is no contact such in phone book."
	MsgBadInput      = "Not enough params or wrong phone format"
)

// Message translates a command error into the text shown to the user.
// It is the only place errors become output; no error is ever surfaced raw.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, contact.ErrMissingArgument):
		return MsgMissingParams
	case errors.Is(err, contact.ErrContactNotFound):
		return MsgNoContact
	default:
		// Malformed phones, phones missing from a record, and anything unexpected.
		return MsgBadInput
	}
}
