package command

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/smileynet/contactbook/internal/contact"
)

// session feeds lines to a fresh interpreter and returns the response texts.
func session(t *testing.T, in *Interpreter, lines ...string) []string {
	t.Helper()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = in.Respond(l).Text
	}
	return out
}

func TestInterpreter_Hello(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	if got := in.Respond("Hello").Text; got != MsgGreeting {
		t.Errorf("hello = %q, want %q", got, MsgGreeting)
	}
}

func TestInterpreter_AddOverwrites(t *testing.T) {
	// Given: Alice added twice with different phones
	book := contact.NewBook()
	in := NewInterpreter(book)
	got := session(t, in, "add Alice 1111111111", "add Alice 2222222222")

	// Then: both saves succeed and only the second phone survives
	for _, g := range got {
		if g != MsgSaved {
			t.Fatalf("add response = %q, want %q", g, MsgSaved)
		}
	}
	if book.Len() != 1 {
		t.Fatalf("book has %d records, want 1", book.Len())
	}
	if got := in.Respond("phone alice").Text; got != "Name: Alice, phones: 2222222222" {
		t.Errorf("phone alice = %q", got)
	}
}

func TestInterpreter_AddInvalidPhoneStoresNothing(t *testing.T) {
	book := contact.NewBook()
	in := NewInterpreter(book)

	resp := in.Respond("add Carol 123")

	if resp.Text != MsgBadInput {
		t.Errorf("add Carol 123 = %q, want %q", resp.Text, MsgBadInput)
	}
	if !errors.Is(resp.Err, contact.ErrInvalidFormat) {
		t.Errorf("Err = %v, want ErrInvalidFormat", resp.Err)
	}
	if _, ok := book.Find("Carol"); ok {
		t.Error("failed add should not create a record")
	}
}

func TestInterpreter_AddLaterBadPhoneStoresNothing(t *testing.T) {
	book := contact.NewBook()
	in := NewInterpreter(book)
	in.Respond("add Carol 1111111111")

	resp := in.Respond("add Carol 2222222222 12")

	if resp.Text != MsgBadInput {
		t.Errorf("response = %q, want %q", resp.Text, MsgBadInput)
	}
	rec, _ := book.Find("Carol")
	if got := rec.String(); got != "Name: Carol, phones: 1111111111" {
		t.Errorf("existing record = %q, should be unchanged", got)
	}
}

func TestInterpreter_AddWithoutPhones(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	got := session(t, in, "add Frank", "phone Frank")
	if got[0] != MsgSaved || got[1] != "Name: Frank, phones: " {
		t.Errorf("responses = %q", got)
	}
}

func TestInterpreter_MissingArguments(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	for _, line := range []string{"add", "add ", "change", "phone", "del"} {
		if got := in.Respond(line).Text; got != MsgMissingParams {
			t.Errorf("%q = %q, want %q", line, got, MsgMissingParams)
		}
	}
}

func TestInterpreter_PhoneUnknownContact(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	if got := in.Respond("phone Nobody").Text; got != "There is no contact such in phone book." {
		t.Errorf("phone Nobody = %q", got)
	}
}

func TestInterpreter_Change(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"existing phone", "change Dan 1111111111", MsgSaved},
		{"several phones", "change Dan 2222222222 1111111111", MsgSaved},
		{"name only", "change Dan", MsgSaved},
		{"phone not on record", "change Dan 3333333333", MsgBadInput},
		{"malformed phone", "change Dan 12", MsgBadInput},
		{"unknown contact", "change Nobody 1111111111", MsgNoContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := contact.NewBook()
			in := NewInterpreter(book)
			in.Respond("add Dan 1111111111 2222222222")

			if got := in.Respond(tt.line).Text; got != tt.want {
				t.Errorf("%q = %q, want %q", tt.line, got, tt.want)
			}
			rec, _ := book.Find("Dan")
			if got := rec.String(); got != "Name: Dan, phones: 1111111111, 2222222222" {
				t.Errorf("record after change = %q, want unchanged", got)
			}
		})
	}
}

func TestInterpreter_Delete(t *testing.T) {
	t.Run("absent contact succeeds silently", func(t *testing.T) {
		in := NewInterpreter(contact.NewBook())
		if got := in.Respond("del Bob").Text; got != "User Bob has been deleted from the phone book" {
			t.Errorf("del Bob = %q", got)
		}
	})

	t.Run("present contact is removed", func(t *testing.T) {
		book := contact.NewBook()
		in := NewInterpreter(book)
		in.Respond("add Bob 1111111111")

		in.Respond("del bob")

		if _, ok := book.Find("Bob"); ok {
			t.Error("Bob should be deleted")
		}
	})
}

func TestInterpreter_ShowAll(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	if got := in.Respond("show all").Text; got != "" {
		t.Errorf("show all on empty book = %q, want empty", got)
	}

	in.Respond("add Dan 1111111111 2222222222")
	if got := in.Respond("show all").Text; got != "Name: Dan, phones: 1111111111, 2222222222" {
		t.Errorf("show all = %q", got)
	}
}

func TestInterpreter_Quit(t *testing.T) {
	in := NewInterpreter(contact.NewBook())
	for _, line := range []string{"EXIT", "Close", "good bye", "GOOD BYE"} {
		resp := in.Respond(line)
		if !resp.Quit || resp.Text != MsgFarewell {
			t.Errorf("%q = %+v, want quit with %q", line, resp, MsgFarewell)
		}
	}
}

func TestInterpreter_Unknown(t *testing.T) {
	t.Run("without suggestions", func(t *testing.T) {
		in := NewInterpreter(contact.NewBook())
		resp := in.Respond("ad Bob 1111111111")
		if resp.Text != MsgUnknown || resp.Hint != "" || resp.Quit {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("with suggestions", func(t *testing.T) {
		in := NewInterpreter(contact.NewBook(), WithSuggestions(true))

		resp := in.Respond("ad Bob 1111111111")
		if resp.Text != MsgUnknown {
			t.Errorf("Text = %q, want %q", resp.Text, MsgUnknown)
		}
		if resp.Hint != `Did you mean "add"?` {
			t.Errorf("Hint = %q", resp.Hint)
		}

		if hint := in.Respond("zzzzzz").Hint; hint != "" {
			t.Errorf("Hint for zzzzzz = %q, want none", hint)
		}
	})
}

func TestInterpreter_Help(t *testing.T) {
	in := NewInterpreter(contact.NewBook(), WithBanner("banner text"))
	if got := in.Respond("help").Text; got != "banner text" {
		t.Errorf("help = %q", got)
	}
}

func TestInterpreter_LogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	in := NewInterpreter(contact.NewBook(), WithLogger(logger))

	in.Respond("phone Nobody")

	out := buf.String()
	for _, want := range []string{"command dispatched", "kind=phone", "args=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
