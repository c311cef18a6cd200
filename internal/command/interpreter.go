package command

import (
	"fmt"
	"log/slog"

	"github.com/smileynet/contactbook/internal/contact"
)

// Response is the outcome of one input line, ready for display.
type Response struct {
	Text string // Always set; carries the translated error message on failure.
	Hint string // Optional "did you mean" line for unknown commands.
	Quit bool   // The session should end after showing Text.
	Err  error  // Underlying failure, for logging only.
}

// Interpreter executes commands against a single Book.
type Interpreter struct {
	book    *contact.Book
	banner  string
	suggest bool
	logger  *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// NewInterpreter creates an Interpreter operating on book.
func NewInterpreter(book *contact.Book, opts ...Option) *Interpreter {
	in := &Interpreter{
		book:   book,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// WithBanner sets the text returned by the help command.
func WithBanner(text string) Option {
	return func(in *Interpreter) { in.banner = text }
}

// WithSuggestions enables "did you mean" hints for unknown commands.
func WithSuggestions(enabled bool) Option {
	return func(in *Interpreter) { in.suggest = enabled }
}

// WithLogger sets the logger that records each dispatched command.
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

// Respond parses line, executes it, and translates any failure.
func (in *Interpreter) Respond(line string) Response {
	cmd := Parse(line)
	text, err := in.Execute(cmd)

	resp := Response{Text: text, Quit: cmd.Kind == KindQuit, Err: err}
	if err != nil {
		resp.Text = Message(err)
	}
	if cmd.Kind == KindUnknown && in.suggest {
		if kw := Suggest(line); kw != "" {
			resp.Hint = fmt.Sprintf("Did you mean %q?", kw)
		}
	}

	in.logger.Debug("command dispatched",
		"kind", cmd.Kind.String(),
		"args", len(cmd.Args),
		"contacts", in.book.Len(),
		"error", err,
	)
	return resp
}

// Execute runs cmd against the book and returns its display text.
func (in *Interpreter) Execute(cmd Command) (string, error) {
	switch cmd.Kind {
	case KindHello:
		return MsgGreeting, nil
	case KindAdd:
		return in.add(cmd)
	case KindChange:
		return in.change(cmd)
	case KindPhone:
		return in.phone(cmd)
	case KindShowAll:
		return in.book.String(), nil
	case KindDelete:
		return in.del(cmd)
	case KindHelp:
		return in.banner, nil
	case KindQuit:
		return MsgFarewell, nil
	default:
		return MsgUnknown, nil
	}
}

// add builds the whole record before storing it, so a bad phone leaves the
// book untouched.
func (in *Interpreter) add(cmd Command) (string, error) {
	name, err := cmd.Arg(0)
	if err != nil {
		return "", err
	}
	rec, err := contact.NewRecord(name)
	if err != nil {
		return "", err
	}
	for _, raw := range cmd.Rest(1) {
		if err := rec.AddPhone(raw); err != nil {
			return "", fmt.Errorf("add %s: %w", name, err)
		}
	}
	in.book.Add(rec)
	return MsgSaved, nil
}

// change edits each listed phone to itself: every token must already be on
// the record and well formed, and no value changes.
func (in *Interpreter) change(cmd Command) (string, error) {
	rec, err := in.lookup(cmd)
	if err != nil {
		return "", err
	}
	for _, raw := range cmd.Rest(1) {
		if err := rec.EditPhone(raw, raw); err != nil {
			return "", fmt.Errorf("change %s: %w", rec.Name(), err)
		}
	}
	return MsgSaved, nil
}

func (in *Interpreter) phone(cmd Command) (string, error) {
	rec, err := in.lookup(cmd)
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

func (in *Interpreter) del(cmd Command) (string, error) {
	name, err := cmd.Arg(0)
	if err != nil {
		return "", err
	}
	in.book.Delete(name)
	return fmt.Sprintf("User %s has been deleted from the phone book", name), nil
}

func (in *Interpreter) lookup(cmd Command) (*contact.Record, error) {
	name, err := cmd.Arg(0)
	if err != nil {
		return nil, err
	}
	rec, ok := in.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", contact.ErrContactNotFound, name)
	}
	return rec, nil
}
