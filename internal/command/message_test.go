package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/smileynet/contactbook/internal/contact"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"missing argument", contact.ErrMissingArgument, MsgMissingParams},
		{"wrapped missing argument", fmt.Errorf("add: %w", contact.ErrMissingArgument), MsgMissingParams},
		{"contact not found", fmt.Errorf("%w: Bob", contact.ErrContactNotFound), MsgNoContact},
		{"invalid format", fmt.Errorf("add: %w", contact.ErrInvalidFormat), MsgBadInput},
		{"phone not found", contact.ErrPhoneNotFound, MsgBadInput},
		{"unexpected", errors.New("boom"), MsgBadInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
